package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/web"
)

// fakeStore lets a test replace any store call; unset hooks behave like an
// empty store.
type fakeStore[T any] struct {
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*T, error)
	FindFn        func(ctx context.Context) ([]T, error)
	FindOneFn     func(ctx context.Context) (*T, error)
	CountFn       func(ctx context.Context) (int64, error)
	SaveFn        func(ctx context.Context, rec *T) error
	ReplaceByIDFn func(ctx context.Context, id uuid.UUID, rec *T) error
	RemoveByIDFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeStore[T]) FindByID(ctx context.Context, id uuid.UUID, _ ...repository.Option) (*T, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore[T]) Find(ctx context.Context, _ ...repository.Option) ([]T, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore[T]) FindOne(ctx context.Context, _ ...repository.Option) (*T, error) {
	if f.FindOneFn != nil {
		return f.FindOneFn(ctx)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore[T]) Count(ctx context.Context, _ ...repository.Option) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

func (f *fakeStore[T]) Save(ctx context.Context, rec *T) error {
	if f.SaveFn != nil {
		return f.SaveFn(ctx, rec)
	}
	return nil
}

func (f *fakeStore[T]) ReplaceByID(ctx context.Context, id uuid.UUID, rec *T) error {
	if f.ReplaceByIDFn != nil {
		return f.ReplaceByIDFn(ctx, id, rec)
	}
	return nil
}

func (f *fakeStore[T]) RemoveByID(ctx context.Context, id uuid.UUID) error {
	if f.RemoveByIDFn != nil {
		return f.RemoveByIDFn(ctx, id)
	}
	return nil
}

func setupRouterWithStores(t *testing.T, stores *repository.Stores) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	if err := web.Load(r); err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	Register(r, stores)

	return r
}

func setupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	return setupRouterWithStores(t, repository.NewStores(db))
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("failed to parse html: %v", err)
	}
	return doc
}

func errorMessages(doc *goquery.Document) []string {
	var msgs []string
	doc.Find("ul.errors li").Each(func(_ int, s *goquery.Selection) {
		msgs = append(msgs, strings.TrimSpace(s.Text()))
	})
	return msgs
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func seedAuthor(t *testing.T, db *gorm.DB, first, family string) model.Author {
	t.Helper()

	author := model.Author{FirstName: first, FamilyName: family}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", family, err)
	}
	return author
}

func seedGenre(t *testing.T, db *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

func seedBook(t *testing.T, db *gorm.DB, author model.Author, title string, genres ...model.Genre) model.Book {
	t.Helper()

	book := model.Book{
		Title:    title,
		AuthorID: author.ID,
		Summary:  "Summary of " + title,
		ISBN:     "ISBN-" + title,
	}
	if err := db.Omit(clause.Associations).Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	for _, g := range genres {
		link := model.BookGenre{BookID: book.ID, GenreID: g.ID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("failed to link book %q to genre %q: %v", title, g.Name, err)
		}
	}
	return book
}

func seedCopy(t *testing.T, db *gorm.DB, book model.Book, imprint, status string, dueBack *time.Time) model.BookInstance {
	t.Helper()

	bi := model.BookInstance{
		BookID:  book.ID,
		Imprint: imprint,
		Status:  status,
		DueBack: dueBack,
	}
	if err := db.Omit(clause.Associations).Create(&bi).Error; err != nil {
		t.Fatalf("failed to seed copy %q: %v", imprint, err)
	}
	return bi
}
