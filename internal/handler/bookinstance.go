package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/snnyvrz/locallibrary/internal/workflow"
)

type BookInstanceHandler struct {
	stores *repository.Stores
	forms  *formRoutes[*BookInstanceForm, model.BookInstance]
}

func NewBookInstanceHandler(stores *repository.Stores, v *validation.Validator) *BookInstanceHandler {
	h := &BookInstanceHandler{stores: stores}

	h.forms = &formRoutes[*BookInstanceForm, model.BookInstance]{
		newForm: func() *BookInstanceForm { return &BookInstanceForm{} },
		flow: &workflow.Entity[*BookInstanceForm, model.BookInstance]{
			Segment:    model.SegmentBookInstance,
			Name:       "BookInstance",
			FormView:   "bookinstance_form.html",
			DeleteView: "bookinstance_delete.html",
			Populate:   []string{"Book"},
			Store:      stores.Instances,
			Validator:  v,
			Messages:   bookInstanceMessages,
			Build:      buildBookInstance,
			Fill:       fillBookInstance,
			URL:        model.BookInstanceURL,
			Present:    func(bi model.BookInstance) any { return toBookInstance(bi) },
			References: h.references,
			Options:    h.options,
		},
	}

	return h
}

func (h *BookInstanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/bookinstances", h.ListBookInstances)

	copies := r.Group("/bookinstance")
	{
		h.forms.register(copies)
		copies.GET("/:id", h.GetBookInstanceByID)
	}
}

func (h *BookInstanceHandler) references(ctx context.Context, f *BookInstanceForm) ([]validation.FieldError, error) {
	n, err := h.stores.Books.Count(ctx, repository.Where("id = ?", formID(f.Book)))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []validation.FieldError{{
			Field:   "book",
			Rule:    "exists",
			Message: bookInstanceMessages["book.exists"],
		}}, nil
	}
	return nil, nil
}

func (h *BookInstanceHandler) options(ctx context.Context, f *BookInstanceForm) (map[string]any, error) {
	books, err := h.stores.Books.Find(ctx,
		repository.Project("id", "title"),
		repository.SortBy("title"),
	)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"books":    bookOptions(books, f.Book),
		"statuses": statusOptions(f.Status),
	}, nil
}

// ListBookInstances godoc
// @Summary      List book copies
// @Description  Every copy with the title of its book
// @Tags         bookinstances
// @Produce      html,json
// @Success      200  {array}   BookInstanceView
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstances [get]
func (h *BookInstanceHandler) ListBookInstances(c *gin.Context) {
	copies, err := h.stores.Instances.Find(c.Request.Context(), repository.Populate("Book"))
	if err != nil {
		fail(c, "BookInstance", err)
		return
	}

	render(c, http.StatusOK, "bookinstance_list.html", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": toBookInstances(copies),
	})
}

// GetBookInstanceByID godoc
// @Summary      Get a book copy by ID
// @Tags         bookinstances
// @Produce      html,json
// @Param        id   path      string  true  "BookInstance ID (UUID)"
// @Success      200  {object}  BookInstanceView
// @Failure      404  {object}  validation.ErrorResponse  "BookInstance not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /bookinstance/{id} [get]
func (h *BookInstanceHandler) GetBookInstanceByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, "BookInstance")
		return
	}

	bi, err := h.stores.Instances.FindByID(c.Request.Context(), id, repository.Populate("Book"))
	if err != nil {
		fail(c, "BookInstance", err)
		return
	}

	render(c, http.StatusOK, "bookinstance_detail.html", gin.H{
		"title":        "Copy: " + bi.Book.Title,
		"bookinstance": toBookInstance(*bi),
	})
}
