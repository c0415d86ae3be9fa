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

type BookHandler struct {
	stores *repository.Stores
	forms  *formRoutes[*BookForm, model.Book]
}

func NewBookHandler(stores *repository.Stores, v *validation.Validator) *BookHandler {
	h := &BookHandler{stores: stores}

	h.forms = &formRoutes[*BookForm, model.Book]{
		newForm: func() *BookForm { return &BookForm{} },
		flow: &workflow.Entity[*BookForm, model.Book]{
			Segment:    model.SegmentBook,
			Name:       "Book",
			FormView:   "book_form.html",
			DeleteView: "book_delete.html",
			Populate:   []string{"Author", "Genres"},
			Store:      stores.Books,
			Validator:  v,
			Messages:   bookMessages,
			Build:      buildBook,
			Fill:       fillBook,
			URL:        model.BookURL,
			Present:    func(b model.Book) any { return toBook(b) },
			References: h.references,
			Options:    h.options,
			Dependents: h.dependents,
		},
	}

	return h
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/books", h.ListBooks)

	book := r.Group("/book")
	{
		h.forms.register(book)
		book.GET("/:id", h.GetBookByID)
	}
}

// references checks that the chosen author and genres exist.
func (h *BookHandler) references(ctx context.Context, f *BookForm) ([]validation.FieldError, error) {
	genreIDs := formIDs(f.Genre)
	unique := make(map[uuid.UUID]bool, len(genreIDs))
	for _, id := range genreIDs {
		unique[id] = true
	}

	var authors, genres int64
	ops := []parallel.Op{
		parallel.Into(&authors, func(ctx context.Context) (int64, error) {
			return h.stores.Authors.Count(ctx, repository.Where("id = ?", formID(f.Author)))
		}),
	}
	if len(genreIDs) > 0 {
		ops = append(ops, parallel.Into(&genres, func(ctx context.Context) (int64, error) {
			return h.stores.Genres.Count(ctx, repository.Where("id IN ?", genreIDs))
		}))
	}
	if err := parallel.Run(ctx, ops...); err != nil {
		return nil, err
	}

	var errs []validation.FieldError
	if authors == 0 {
		errs = append(errs, validation.FieldError{Field: "author", Rule: "exists", Message: bookMessages["author.exists"]})
	}
	if int(genres) != len(unique) {
		errs = append(errs, validation.FieldError{Field: "genre", Rule: "exists", Message: bookMessages["genre.exists"]})
	}
	return errs, nil
}

// options loads the author and genre choices, marking the submitted ones.
func (h *BookHandler) options(ctx context.Context, f *BookForm) (map[string]any, error) {
	var (
		authors []model.Author
		genres  []model.Genre
	)

	err := parallel.Run(ctx,
		parallel.Into(&authors, func(ctx context.Context) ([]model.Author, error) {
			return h.stores.Authors.Find(ctx, repository.SortBy("family_name"))
		}),
		parallel.Into(&genres, func(ctx context.Context) ([]model.Genre, error) {
			return h.stores.Genres.Find(ctx, repository.SortBy("name"))
		}),
	)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"authors": authorOptions(authors, f.Author),
		"genres":  genreOptions(genres, f.Genre),
	}, nil
}

func (h *BookHandler) instances(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	return h.stores.Instances.Find(ctx, repository.Where("book_id = ?", bookID))
}

func (h *BookHandler) dependents(ctx context.Context, id uuid.UUID) (workflow.Dependents, error) {
	copies, err := h.instances(ctx, id)
	if err != nil {
		return workflow.Dependents{}, err
	}
	return workflow.Dependents{
		Key:   "book_instances",
		Count: len(copies),
		Items: toBookInstances(copies),
	}, nil
}

// ListBooks godoc
// @Summary      List books
// @Description  All books ordered by title, with their author
// @Tags         books
// @Produce      html,json
// @Success      200  {array}   BookListItem
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.stores.Books.Find(c.Request.Context(),
		repository.Project("id", "title", "author_id"),
		repository.SortBy("title"),
		repository.Populate("Author"),
	)
	if err != nil {
		fail(c, "Book", err)
		return
	}

	res := make([]BookListItem, 0, len(books))
	for _, b := range books {
		res = append(res, toBookListItem(b))
	}

	render(c, http.StatusOK, "book_list.html", gin.H{
		"title":     "Book List",
		"book_list": res,
	})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  A book with its author, genres and copies
// @Tags         books
// @Produce      html,json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  Book
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /book/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeNotFound(c, "Book")
		return
	}

	var (
		book   *model.Book
		copies []model.BookInstance
	)

	err := parallel.Run(c.Request.Context(),
		parallel.Into(&book, func(ctx context.Context) (*model.Book, error) {
			return h.stores.Books.FindByID(ctx, id, repository.Populate("Author", "Genres"))
		}),
		parallel.Into(&copies, func(ctx context.Context) ([]model.BookInstance, error) {
			return h.instances(ctx, id)
		}),
	)
	if err != nil {
		fail(c, "Book", err)
		return
	}

	render(c, http.StatusOK, "book_detail.html", gin.H{
		"title":          book.Title,
		"book":           toBook(*book),
		"book_instances": toBookInstances(copies),
	})
}
