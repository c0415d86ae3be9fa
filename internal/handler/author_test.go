package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

func TestCreateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := postForm(router, "/catalog/author/create", url.Values{
		"first_name":    {"Isaac"},
		"family_name":   {"Asimov"},
		"date_of_birth": {"1920-01-02"},
		"date_of_death": {"1992-04-06"},
	})

	var stored model.Author
	if err := db.First(&stored, "family_name = ?", "Asimov").Error; err != nil {
		t.Fatalf("expected author in db, got error: %v", err)
	}

	expectRedirect(t, w, "/catalog/author/"+stored.ID.String())

	if stored.FirstName != "Isaac" {
		t.Errorf("expected first name %q, got %q", "Isaac", stored.FirstName)
	}
	if got := model.AuthorLifespan(stored); got != "1920 - 1992" {
		t.Errorf("expected lifespan %q, got %q", "1920 - 1992", got)
	}
}

func TestCreateAuthor_ValidationError_EmptyFirstName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := postForm(router, "/catalog/author/create", url.Values{
		"first_name":  {""},
		"family_name": {"Asimov"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	doc := parseHTML(t, w)

	msgs := errorMessages(doc)
	if len(msgs) != 1 || msgs[0] != "First name must be specified." {
		t.Errorf("unexpected errors: %v", msgs)
	}
	if v, _ := doc.Find("input#family_name").Attr("value"); v != "Asimov" {
		t.Errorf("expected family name to be echoed, got %q", v)
	}
	if title := doc.Find("h1").Text(); title != "Create Author" {
		t.Errorf("expected title %q, got %q", "Create Author", title)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no author stored, got %d", count)
	}
}

func TestCreateAuthor_ValidationError_Order(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := postForm(router, "/catalog/author/create", url.Values{
		"first_name":    {"Is@ac"},
		"family_name":   {""},
		"date_of_birth": {"not a date"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	want := []string{
		"First name has non-alphanumeric characters.",
		"Family name must be specified.",
		"Invalid date of birth",
	}
	if got := errorMessages(parseHTML(t, w)); !slices.Equal(got, want) {
		t.Errorf("expected errors %v, got %v", want, got)
	}
}

func TestAuthorForm_TrimsAndEscapes(t *testing.T) {
	f := &AuthorForm{FirstName: "  Ann  ", FamilyName: "<b>", DateOfBirth: " 2001-02-03 "}

	f.Normalize()
	f.Escape()

	if f.FirstName != "Ann" {
		t.Errorf("expected trimmed first name, got %q", f.FirstName)
	}
	if f.FamilyName != "&lt;b&gt;" {
		t.Errorf("expected escaped family name, got %q", f.FamilyName)
	}
	if f.DateOfBirth != "2001-02-03" {
		t.Errorf("expected trimmed date, got %q", f.DateOfBirth)
	}
}

func TestUpdateAuthorForm_FilledFromRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Ben", "Bova")

	w := get(router, "/catalog/author/"+author.ID.String()+"/update")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	doc := parseHTML(t, w)
	if v, _ := doc.Find("input#first_name").Attr("value"); v != "Ben" {
		t.Errorf("expected first name %q, got %q", "Ben", v)
	}
	if v, _ := doc.Find("input#family_name").Attr("value"); v != "Bova" {
		t.Errorf("expected family name %q, got %q", "Bova", v)
	}
}

func TestUpdateAuthorForm_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := get(router, "/catalog/author/"+uuid.New().String()+"/update")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Ben", "Bova")

	w := postForm(router, "/catalog/author/"+author.ID.String()+"/update", url.Values{
		"first_name":    {"Benjamin"},
		"family_name":   {"Bova"},
		"date_of_birth": {"1932-11-08"},
	})

	expectRedirect(t, w, model.AuthorURL(author))

	var stored model.Author
	if err := db.First(&stored, "id = ?", author.ID).Error; err != nil {
		t.Fatalf("expected author in db: %v", err)
	}
	if stored.FirstName != "Benjamin" {
		t.Errorf("expected first name %q, got %q", "Benjamin", stored.FirstName)
	}
	if stored.DateOfBirth == nil || stored.DateOfBirth.Year() != 1932 {
		t.Errorf("expected date of birth in 1932, got %v", stored.DateOfBirth)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 1 {
		t.Errorf("expected update in place, got %d authors", count)
	}
}

func TestUpdateAuthor_SameValuesTwiceIsStable(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Ben", "Bova")
	values := url.Values{
		"first_name":    {"Benjamin"},
		"family_name":   {"Bova"},
		"date_of_birth": {"1932-11-08"},
		"date_of_death": {"2020-11-29"},
	}
	path := "/catalog/author/" + author.ID.String() + "/update"

	first := postForm(router, path, values)
	expectRedirect(t, first, model.AuthorURL(author))
	var afterFirst model.Author
	db.First(&afterFirst, "id = ?", author.ID)

	second := postForm(router, path, values)
	expectRedirect(t, second, first.Header().Get("Location"))
	var afterSecond model.Author
	db.First(&afterSecond, "id = ?", author.ID)

	if afterFirst.FirstName != afterSecond.FirstName || afterFirst.FamilyName != afterSecond.FamilyName {
		t.Errorf("expected names unchanged, got %+v then %+v", afterFirst, afterSecond)
	}
	if model.FormatISO(afterFirst.DateOfBirth) != model.FormatISO(afterSecond.DateOfBirth) ||
		model.FormatISO(afterFirst.DateOfDeath) != model.FormatISO(afterSecond.DateOfDeath) {
		t.Errorf("expected dates unchanged, got %+v then %+v", afterFirst, afterSecond)
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single author, got %d", count)
	}
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	w := postForm(router, "/catalog/author/"+uuid.New().String()+"/update", url.Values{
		"first_name":  {"Ghost"},
		"family_name": {"Writer"},
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteAuthor_BlockedByBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Patrick", "Rothfuss")
	seedBook(t, db, author, "The Name of the Wind")

	w := postForm(router, "/catalog/author/"+author.ID.String()+"/delete", url.Values{
		"id": {author.ID.String()},
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}

	doc := parseHTML(t, w)
	if n := doc.Find("dl.dependents dt").Length(); n != 1 {
		t.Errorf("expected 1 dependent book listed, got %d", n)
	}
	if doc.Find("form").Length() != 0 {
		t.Errorf("expected no delete form while books exist")
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 1 {
		t.Errorf("expected author to remain, got %d", count)
	}
}

func TestDeleteAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Bob", "Billings")

	w := postForm(router, "/catalog/author/"+author.ID.String()+"/delete", nil)
	expectRedirect(t, w, "/catalog/authors")

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 0 {
		t.Errorf("expected author deleted, got %d", count)
	}
}

func TestDeleteAuthor_MissingRedirectsToList(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	expectRedirect(t, get(router, "/catalog/author/"+uuid.New().String()+"/delete"), "/catalog/authors")
	expectRedirect(t, postForm(router, "/catalog/author/not-a-uuid/delete", nil), "/catalog/authors")
}

func TestDeleteAuthorForm_ShowsConfirmation(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Jim", "Jones")

	w := get(router, "/catalog/author/"+author.ID.String()+"/delete")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	doc := parseHTML(t, w)
	if v, _ := doc.Find("form input[name=id]").Attr("value"); v != author.ID.String() {
		t.Errorf("expected hidden id %q, got %q", author.ID, v)
	}
}

func TestListAuthors_SortedByFamilyName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	seedAuthor(t, db, "Patrick", "Rothfuss")
	seedAuthor(t, db, "Isaac", "Asimov")
	seedAuthor(t, db, "Ben", "Bova")

	w := getJSON(router, "/catalog/authors")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		AuthorList []Author `json:"author_list"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	var names []string
	for _, a := range resp.AuthorList {
		names = append(names, a.Name)
	}
	want := []string{"Asimov, Isaac", "Bova, Ben", "Rothfuss, Patrick"}
	if !slices.Equal(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestGetAuthorByID_WithBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)
	author := seedAuthor(t, db, "Ben", "Bova")
	seedBook(t, db, author, "Death Wave")
	seedBook(t, db, author, "Apes and Angels")

	w := getJSON(router, "/catalog/author/"+author.ID.String())
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Author      Author        `json:"author"`
		AuthorBooks []BookSummary `json:"author_books"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Author.Name != "Bova, Ben" {
		t.Errorf("expected name %q, got %q", "Bova, Ben", resp.Author.Name)
	}
	if len(resp.AuthorBooks) != 2 || resp.AuthorBooks[0].Title != "Apes and Angels" {
		t.Errorf("unexpected books: %+v", resp.AuthorBooks)
	}
}

func TestGetAuthorByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(t, db)

	for _, id := range []string{uuid.New().String(), "not-a-uuid"} {
		w := getJSON(router, "/catalog/author/"+id)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 for %s, got %d", id, w.Code)
		}

		var resp validation.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Code != "AUTHOR_NOT_FOUND" {
			t.Errorf("expected code AUTHOR_NOT_FOUND, got %q", resp.Code)
		}
	}
}

func TestListAuthors_InternalError_Returns500(t *testing.T) {
	stores := &repository.Stores{
		Authors: &fakeStore[model.Author]{
			FindFn: func(ctx context.Context) ([]model.Author, error) {
				return nil, errors.New("db exploded")
			},
		},
		Genres:    &fakeStore[model.Genre]{},
		Books:     &fakeStore[model.Book]{},
		Instances: &fakeStore[model.BookInstance]{},
	}
	router := setupRouterWithStores(t, stores)

	w := get(router, "/catalog/authors")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	doc := parseHTML(t, w)
	if code, _ := doc.Find("p.error").Attr("data-code"); code != "AUTHOR_FAILED" {
		t.Errorf("expected code AUTHOR_FAILED, got %q", code)
	}
	if strings.Contains(w.Body.String(), "db exploded") {
		t.Errorf("store error leaked into the page")
	}
}

func TestCreateAuthor_StoreError_Returns500(t *testing.T) {
	stores := &repository.Stores{
		Authors: &fakeStore[model.Author]{
			SaveFn: func(ctx context.Context, a *model.Author) error {
				return errors.New("disk full")
			},
		},
		Genres:    &fakeStore[model.Genre]{},
		Books:     &fakeStore[model.Book]{},
		Instances: &fakeStore[model.BookInstance]{},
	}
	router := setupRouterWithStores(t, stores)

	w := postForm(router, "/catalog/author/create", url.Values{
		"first_name":  {"Ann"},
		"family_name": {"Leckie"},
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}
