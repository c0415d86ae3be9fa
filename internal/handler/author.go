package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/parallel"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/snnyvrz/locallibrary/internal/workflow"
)

type AuthorHandler struct {
	stores *repository.Stores
	forms  *formRoutes[*AuthorForm, model.Author]
}

func NewAuthorHandler(stores *repository.Stores, v *validation.Validator) *AuthorHandler {
	h := &AuthorHandler{stores: stores}

	h.forms = &formRoutes[*AuthorForm, model.Author]{
		newForm: func() *AuthorForm { return &AuthorForm{} },
		flow: &workflow.Entity[*AuthorForm, model.Author]{
			Segment:    model.SegmentAuthor,
			Name:       "Author",
			FormView:   "author_form.html",
			DeleteView: "author_delete.html",
			Store:      stores.Authors,
			Validator:  v,
			Messages:   authorMessages,
			Build:      buildAuthor,
			Fill:       fillAuthor,
			URL:        model.AuthorURL,
			Present:    func(a model.Author) any { return toAuthor(a) },
			Dependents: h.dependents,
		},
	}

	return h
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/authors", h.ListAuthors)

	author := r.Group("/author")
	{
		h.forms.register(author)
		author.GET("/:id", h.GetAuthorByID)
	}
}

func (h *AuthorHandler) books(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return h.stores.Books.Find(ctx,
		repository.Where("author_id = ?", authorID),
		repository.Project("id", "title", "summary"),
		repository.SortBy("title"),
	)
}

func (h *AuthorHandler) dependents(ctx context.Context, id uuid.UUID) (workflow.Dependents, error) {
	books, err := h.books(ctx, id)
	if err != nil {
		return workflow.Dependents{}, err
	}
	return workflow.Dependents{
		Key:   "author_books",
		Count: len(books),
		Items: toBookSummaries(books),
	}, nil
}

// ListAuthors godoc
// @Summary      List authors
// @Description  All authors ordered by family name
// @Tags         authors
// @Produce      html,json
// @Success      200  {array}   Author
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.stores.Authors.Find(c.Request.Context(), repository.SortBy("family_name"))
	if err != nil {
		fail(c, "Author", err)
		return
	}

	res := make([]Author, 0, len(authors))
	for _, a := range authors {
		res = append(res, toAuthor(a))
	}

	render(c, http.StatusOK, "author_list.html", gin.H{
		"title":       "Author List",
		"author_list": res,
	})
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Description  An author together with the books they wrote
// @Tags         authors
// @Produce      html,json
// @Param        id   path      string                    true  "Author ID (UUID)"
// @Success      200  {object}  Author
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, "Author")
		return
	}

	var (
		author *model.Author
		books  []model.Book
	)

	err := parallel.Run(c.Request.Context(),
		parallel.Into(&author, func(ctx context.Context) (*model.Author, error) {
			return h.stores.Authors.FindByID(ctx, id)
		}),
		parallel.Into(&books, func(ctx context.Context) ([]model.Book, error) {
			return h.books(ctx, id)
		}),
	)
	if err != nil {
		fail(c, "Author", err)
		return
	}

	render(c, http.StatusOK, "author_detail.html", gin.H{
		"title":        "Author Detail",
		"author":       toAuthor(*author),
		"author_books": toBookSummaries(books),
	})
}
