package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/workflow"
)

// formRoutes serves the create, update and delete pages of one entity
// through its workflow.
type formRoutes[F workflow.Form, R any] struct {
	flow    *workflow.Entity[F, R]
	newForm func() F
}

func (h *formRoutes[F, R]) register(g *gin.RouterGroup) {
	g.GET("/create", h.createForm)
	g.POST("/create", h.create)
	g.GET("/:id/update", h.updateForm)
	g.POST("/:id/update", h.update)
	g.GET("/:id/delete", h.deleteForm)
	g.POST("/:id/delete", h.delete)
}

func (h *formRoutes[F, R]) finish(c *gin.Context, out *workflow.Outcome, err error) {
	if err != nil {
		fail(c, h.flow.Name, err)
		return
	}
	respond(c, out)
}

func (h *formRoutes[F, R]) createForm(c *gin.Context) {
	out, err := h.flow.NewForm(c.Request.Context(), h.newForm())
	h.finish(c, out, err)
}

func (h *formRoutes[F, R]) create(c *gin.Context) {
	form := h.newForm()
	if !bindForm(c, form) {
		return
	}
	out, err := h.flow.Create(c.Request.Context(), form)
	h.finish(c, out, err)
}

func (h *formRoutes[F, R]) updateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, h.flow.Name)
		return
	}
	out, err := h.flow.EditForm(c.Request.Context(), id)
	h.finish(c, out, err)
}

func (h *formRoutes[F, R]) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, h.flow.Name)
		return
	}
	form := h.newForm()
	if !bindForm(c, form) {
		return
	}
	out, err := h.flow.Update(c.Request.Context(), id, form)
	h.finish(c, out, err)
}

func (h *formRoutes[F, R]) deleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.ListURL(h.flow.Segment))
		return
	}
	out, err := h.flow.DeleteForm(c.Request.Context(), id)
	h.finish(c, out, err)
}

func (h *formRoutes[F, R]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.ListURL(h.flow.Segment))
		return
	}
	out, err := h.flow.Delete(c.Request.Context(), id)
	h.finish(c, out, err)
}
