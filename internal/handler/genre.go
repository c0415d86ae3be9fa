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

type GenreHandler struct {
	stores *repository.Stores
	forms  *formRoutes[*GenreForm, model.Genre]
}

func NewGenreHandler(stores *repository.Stores, v *validation.Validator) *GenreHandler {
	h := &GenreHandler{stores: stores}

	h.forms = &formRoutes[*GenreForm, model.Genre]{
		newForm: func() *GenreForm { return &GenreForm{} },
		flow: &workflow.Entity[*GenreForm, model.Genre]{
			Segment:    model.SegmentGenre,
			Name:       "Genre",
			FormView:   "genre_form.html",
			DeleteView: "genre_delete.html",
			Store:      stores.Genres,
			Validator:  v,
			Messages:   genreMessages,
			Build:      buildGenre,
			Fill:       fillGenre,
			URL:        model.GenreURL,
			Present:    func(g model.Genre) any { return toGenre(g) },
			Duplicate:  h.duplicate,
			Dependents: h.dependents,
		},
	}

	return h
}

func (h *GenreHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/genres", h.ListGenres)

	genre := r.Group("/genre")
	{
		h.forms.register(genre)
		genre.GET("/:id", h.GetGenreByID)
	}
}

// duplicate finds a genre with exactly the submitted name.
func (h *GenreHandler) duplicate(ctx context.Context, f *GenreForm) (*model.Genre, error) {
	return h.stores.Genres.FindOne(ctx, repository.Where("name = ?", f.Name))
}

func (h *GenreHandler) books(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	return h.stores.Books.Find(ctx,
		repository.InGenre(genreID),
		repository.Project("id", "title", "summary"),
		repository.SortBy("title"),
	)
}

func (h *GenreHandler) dependents(ctx context.Context, id uuid.UUID) (workflow.Dependents, error) {
	books, err := h.books(ctx, id)
	if err != nil {
		return workflow.Dependents{}, err
	}
	return workflow.Dependents{
		Key:   "genre_books",
		Count: len(books),
		Items: toBookSummaries(books),
	}, nil
}

// ListGenres godoc
// @Summary      List genres
// @Description  All genres ordered by name
// @Tags         genres
// @Produce      html,json
// @Success      200  {array}   GenreView
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.stores.Genres.Find(c.Request.Context(), repository.SortBy("name"))
	if err != nil {
		fail(c, "Genre", err)
		return
	}

	res := make([]GenreView, 0, len(genres))
	for _, g := range genres {
		res = append(res, toGenre(g))
	}

	render(c, http.StatusOK, "genre_list.html", gin.H{
		"title":      "Genre List",
		"genre_list": res,
	})
}

// GetGenreByID godoc
// @Summary      Get genre by ID
// @Description  A genre with the books filed under it
// @Tags         genres
// @Produce      html,json
// @Param        id   path      string  true  "Genre ID (UUID)"
// @Success      200  {object}  GenreView
// @Failure      404  {object}  validation.ErrorResponse  "Genre not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /genre/{id} [get]
func (h *GenreHandler) GetGenreByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, "Genre")
		return
	}

	var (
		genre *model.Genre
		books []model.Book
	)

	err := parallel.Run(c.Request.Context(),
		parallel.Into(&genre, func(ctx context.Context) (*model.Genre, error) {
			return h.stores.Genres.FindByID(ctx, id)
		}),
		parallel.Into(&books, func(ctx context.Context) ([]model.Book, error) {
			return h.books(ctx, id)
		}),
	)
	if err != nil {
		fail(c, "Genre", err)
		return
	}

	render(c, http.StatusOK, "genre_detail.html", gin.H{
		"title":       "Genre Detail",
		"genre":       toGenre(*genre),
		"genre_books": toBookSummaries(books),
	})
}
