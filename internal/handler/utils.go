package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/workflow"
)

var offered = []string{gin.MIMEHTML, gin.MIMEJSON}

// render writes a view as HTML, or as JSON when the client asks for it.
func render(c *gin.Context, status int, view string, data gin.H) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: view,
		Data:     data,
	})
}

func respond(c *gin.Context, out *workflow.Outcome) {
	if out.IsRedirect() {
		c.Redirect(out.Status, out.Redirect)
		return
	}
	render(c, out.Status, out.View, out.Data)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindForm decodes a urlencoded, multipart or JSON body into form.
func bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_REQUEST_BODY",
			"invalid request body",
		)
		return false
	}
	return true
}

// formID parses an id submitted in a form field. Fields are validated as
// UUIDs first, so a failure here yields uuid.Nil and the record's schema
// check rejects it.
func formID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func formIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id := formID(v); id != uuid.Nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func formDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
