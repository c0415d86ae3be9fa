package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: "error.html",
		HTMLData: gin.H{
			"title":   message,
			"code":    code,
			"message": message,
			"status":  status,
		},
		JSONData: validation.ErrorResponse{
			Code:    code,
			Message: message,
			Errors:  nil,
		},
	})
	c.Abort()
}

func writeNotFound(c *gin.Context, name string) {
	writeError(c, http.StatusNotFound,
		errorCode(name, "NOT_FOUND"),
		name+" not found",
	)
}

// fail answers a store failure. Missing records become a 404; everything
// else is recorded on the context for the request logger and shown as a
// generic failure page.
func fail(c *gin.Context, name string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeNotFound(c, name)
		return
	}

	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError,
		errorCode(name, "FAILED"),
		"the server encountered a problem and could not process your request",
	)
}

func errorCode(name, suffix string) string {
	return strings.ToUpper(strings.ReplaceAll(name, " ", "_")) + "_" + suffix
}
