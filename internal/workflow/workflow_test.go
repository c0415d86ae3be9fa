package workflow_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/snnyvrz/locallibrary/internal/validation"
	"github.com/snnyvrz/locallibrary/internal/workflow"
)

type genreForm struct {
	Name string `form:"name" validate:"required,min=3,max=100"`
}

func (f *genreForm) Normalize() { f.Name = validation.Trim(f.Name) }
func (f *genreForm) Escape()    { f.Name = validation.Escape(f.Name) }

type fixture struct {
	store   repository.Store[model.Genre]
	entity  *workflow.Entity[*genreForm, model.Genre]
	blocked map[uuid.UUID]int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	f := &fixture{
		store:   repository.NewGormStore[model.Genre](db),
		blocked: map[uuid.UUID]int{},
	}

	f.entity = &workflow.Entity[*genreForm, model.Genre]{
		Segment:    model.SegmentGenre,
		Name:       "Genre",
		FormView:   "genre_form.html",
		DeleteView: "genre_delete.html",
		Store:      f.store,
		Validator:  validation.New(),
		Messages: validation.Messages{
			"name.required": "Genre name must be specified",
			"name.min":      "Genre name must contain at least 3 characters",
			"name.max":      "Genre name must not exceed 100 characters",
		},
		Build: func(form *genreForm, id uuid.UUID) model.Genre {
			return model.Genre{ID: id, Name: form.Name}
		},
		Fill:    func(g model.Genre) *genreForm { return &genreForm{Name: g.Name} },
		URL:     model.GenreURL,
		Present: func(g model.Genre) any { return g },
		Duplicate: func(ctx context.Context, form *genreForm) (*model.Genre, error) {
			return f.store.FindOne(ctx, repository.Where("name = ?", form.Name))
		},
		Dependents: func(ctx context.Context, id uuid.UUID) (workflow.Dependents, error) {
			n := f.blocked[id]
			return workflow.Dependents{Key: "genre_books", Count: n, Items: make([]string, n)}, nil
		},
	}

	return f
}

func (f *fixture) count(t *testing.T) int64 {
	t.Helper()
	n, err := f.store.Count(context.Background())
	if err != nil {
		t.Fatalf("count genres: %v", err)
	}
	return n
}

func TestCreate_RedirectsToNewRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.entity.Create(ctx, &genreForm{Name: "  Science <Fiction>  "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !out.IsRedirect() || out.Status != http.StatusFound {
		t.Fatalf("expected redirect, got %+v", out)
	}

	id, err := uuid.Parse(strings.TrimPrefix(out.Redirect, "/catalog/genre/"))
	if err != nil {
		t.Fatalf("unexpected redirect %q", out.Redirect)
	}

	stored, err := f.store.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Name != "Science &lt;Fiction&gt;" {
		t.Fatalf("expected trimmed and escaped name, got %q", stored.Name)
	}
	if model.GenreURL(*stored) != out.Redirect {
		t.Fatalf("expected url %q, got %q", out.Redirect, model.GenreURL(*stored))
	}
}

func TestCreate_DuplicateNameRedirectsToExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.entity.Create(ctx, &genreForm{Name: "Fantasy"})
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	second, err := f.entity.Create(ctx, &genreForm{Name: " Fantasy "})
	if err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}

	if second.Redirect != first.Redirect {
		t.Fatalf("expected redirect to %q, got %q", first.Redirect, second.Redirect)
	}
	if n := f.count(t); n != 1 {
		t.Fatalf("expected 1 genre, got %d", n)
	}
}

func TestCreate_NameLengthBoundaries(t *testing.T) {
	cases := []struct {
		n  int
		ok bool
	}{
		{2, false},
		{3, true},
		{100, true},
		{101, false},
	}

	for _, tc := range cases {
		f := newFixture(t)
		out, err := f.entity.Create(context.Background(), &genreForm{Name: strings.Repeat("g", tc.n)})
		if err != nil {
			t.Fatalf("len %d: Create returned error: %v", tc.n, err)
		}
		if tc.ok != out.IsRedirect() {
			t.Fatalf("len %d: expected accepted=%v, got %+v", tc.n, tc.ok, out)
		}
		if !tc.ok {
			errs, _ := out.Data["errors"].([]validation.FieldError)
			if len(errs) != 1 || errs[0].Field != "name" {
				t.Fatalf("len %d: expected one name error, got %+v", tc.n, errs)
			}
		}
	}
}

func TestCreate_InvalidRedisplaysWithEcho(t *testing.T) {
	f := newFixture(t)

	out, err := f.entity.Create(context.Background(), &genreForm{Name: " <i "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if out.IsRedirect() {
		t.Fatalf("expected form re-display, got redirect %q", out.Redirect)
	}
	if out.Status != http.StatusBadRequest || out.View != "genre_form.html" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Data["title"] != "Create Genre" {
		t.Fatalf("unexpected title %v", out.Data["title"])
	}

	form := out.Data["form"].(*genreForm)
	if form.Name != "&lt;i" {
		t.Fatalf("expected sanitized echo, got %q", form.Name)
	}

	errs := out.Data["errors"].([]validation.FieldError)
	if errs[0].Message != "Genre name must contain at least 3 characters" {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
	if n := f.count(t); n != 0 {
		t.Fatalf("expected nothing written, got %d", n)
	}
}

func TestUpdate_ReplacesUsingPathID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g := model.Genre{Name: "Horror"}
	if err := f.store.Save(ctx, &g); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	for i := 0; i < 2; i++ {
		out, err := f.entity.Update(ctx, g.ID, &genreForm{Name: "Gothic Horror"})
		if err != nil {
			t.Fatalf("Update #%d returned error: %v", i+1, err)
		}
		if out.Redirect != model.GenreURL(g) {
			t.Fatalf("expected redirect %q, got %q", model.GenreURL(g), out.Redirect)
		}
	}

	stored, err := f.store.FindByID(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Name != "Gothic Horror" {
		t.Fatalf("unexpected name %q", stored.Name)
	}
	if n := f.count(t); n != 1 {
		t.Fatalf("expected update in place, got %d genres", n)
	}
}

func TestUpdate_MissingRecord(t *testing.T) {
	f := newFixture(t)

	_, err := f.entity.Update(context.Background(), uuid.New(), &genreForm{Name: "Western"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditForm_FillsFromRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g := model.Genre{Name: "Mystery"}
	if err := f.store.Save(ctx, &g); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := f.entity.EditForm(ctx, g.ID)
	if err != nil {
		t.Fatalf("EditForm returned error: %v", err)
	}
	if out.Data["title"] != "Update Genre" || out.Data["form"].(*genreForm).Name != "Mystery" {
		t.Fatalf("unexpected edit form %+v", out.Data)
	}

	if _, err := f.entity.EditForm(ctx, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_BlockedByDependents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g := model.Genre{Name: "Romance"}
	if err := f.store.Save(ctx, &g); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	f.blocked[g.ID] = 2

	out, err := f.entity.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if out.IsRedirect() || out.View != "genre_delete.html" || out.Status != http.StatusConflict {
		t.Fatalf("expected confirmation page, got %+v", out)
	}
	if items := out.Data["genre_books"].([]string); len(items) != 2 {
		t.Fatalf("expected 2 dependents listed, got %d", len(items))
	}
	if n := f.count(t); n != 1 {
		t.Fatalf("expected record kept, got %d", n)
	}
}

func TestDelete_RemovesAndRedirectsToList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g := model.Genre{Name: "Satire"}
	if err := f.store.Save(ctx, &g); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := f.entity.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if out.Redirect != "/catalog/genres" {
		t.Fatalf("expected redirect to list, got %+v", out)
	}
	if n := f.count(t); n != 0 {
		t.Fatalf("expected record removed, got %d", n)
	}
}

func TestDelete_MissingRecordRedirects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, run := range []func(context.Context, uuid.UUID) (*workflow.Outcome, error){
		f.entity.DeleteForm,
		f.entity.Delete,
	} {
		out, err := run(ctx, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Redirect != "/catalog/genres" {
			t.Fatalf("expected redirect to list, got %+v", out)
		}
	}
}

type failingStore struct {
	repository.Store[model.Genre]
	err error
}

func (s failingStore) FindOne(ctx context.Context, opts ...repository.Option) (*model.Genre, error) {
	return nil, repository.ErrNotFound
}

func (s failingStore) Save(ctx context.Context, g *model.Genre) error {
	return s.err
}

func TestCreate_StoreErrorAborts(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection reset")
	store := failingStore{err: boom}
	f.entity.Store = store
	f.entity.Duplicate = func(ctx context.Context, form *genreForm) (*model.Genre, error) {
		return store.FindOne(ctx)
	}

	out, err := f.entity.Create(context.Background(), &genreForm{Name: "Drama"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got out=%+v err=%v", out, err)
	}
}

func TestCreate_SchemaRejectionRedisplays(t *testing.T) {
	f := newFixture(t)
	f.entity.Store = failingStore{err: &model.ValidationError{Field: "name", Message: "is required"}}
	f.entity.Duplicate = nil

	out, err := f.entity.Create(context.Background(), &genreForm{Name: "Drama"})
	if err != nil {
		t.Fatalf("expected re-display, got error %v", err)
	}
	if out.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", out.Status)
	}
}
