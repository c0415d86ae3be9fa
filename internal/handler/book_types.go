package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type BookForm struct {
	Title   string                `form:"title" json:"title" validate:"required"`
	Author  string                `form:"author" json:"author" validate:"required,uuid"`
	Summary string                `form:"summary" json:"summary" validate:"required"`
	ISBN    string                `form:"isbn" json:"isbn" validate:"required"`
	Genre   validation.StringList `form:"genre" json:"genre" validate:"dive,uuid"`
}

// Normalize trims every field. genre may arrive missing, once or many
// times; it always ends up a list.
func (f *BookForm) Normalize() {
	f.Title = validation.Trim(f.Title)
	f.Author = validation.Trim(f.Author)
	f.Summary = validation.Trim(f.Summary)
	f.ISBN = validation.Trim(f.ISBN)
	f.Genre = validation.List(f.Genre)
}

func (f *BookForm) Escape() {
	f.Title = validation.Escape(f.Title)
	f.Summary = validation.Escape(f.Summary)
	f.ISBN = validation.Escape(f.ISBN)
}

var bookMessages = validation.Messages{
	"title.required":   "Title must not be empty.",
	"author.required":  "Author must not be empty.",
	"author.uuid":      "Author must be a valid selection.",
	"author.exists":    "Author does not exist.",
	"summary.required": "Summary must not be empty.",
	"isbn.required":    "ISBN must not be empty",
	"genre.uuid":       "Genre must be a valid selection.",
	"genre.exists":     "Genre does not exist.",
}

type Book struct {
	ID      uuid.UUID     `json:"id"`
	URL     string        `json:"url"`
	Title   string        `json:"title"`
	Author  AuthorSummary `json:"author"`
	Summary string        `json:"summary"`
	ISBN    string        `json:"isbn"`
	Genres  []GenreView   `json:"genres"`
}

type BookSummary struct {
	ID      uuid.UUID `json:"id"`
	URL     string    `json:"url"`
	Title   string    `json:"title"`
	Summary string    `json:"summary,omitempty"`
}

// BookListItem is a row of the book list: title and author only.
type BookListItem struct {
	ID     uuid.UUID     `json:"id"`
	URL    string        `json:"url"`
	Title  string        `json:"title"`
	Author AuthorSummary `json:"author"`
}

// GenreOption is one checkbox of the genre picker on the book form.
type GenreOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// BookOption is one choice of the book select on the copy form.
type BookOption struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

func toBook(b model.Book) Book {
	genres := make([]GenreView, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, toGenre(g))
	}

	return Book{
		ID:      b.ID,
		URL:     model.BookURL(b),
		Title:   b.Title,
		Author:  toAuthorSummary(b.Author),
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genres:  genres,
	}
}

func toBookSummaries(books []model.Book) []BookSummary {
	res := make([]BookSummary, 0, len(books))
	for _, b := range books {
		res = append(res, BookSummary{
			ID:      b.ID,
			URL:     model.BookURL(b),
			Title:   b.Title,
			Summary: b.Summary,
		})
	}
	return res
}

func toBookListItem(b model.Book) BookListItem {
	return BookListItem{
		ID:     b.ID,
		URL:    model.BookURL(b),
		Title:  b.Title,
		Author: toAuthorSummary(b.Author),
	}
}

func buildBook(f *BookForm, id uuid.UUID) model.Book {
	ids := formIDs(f.Genre)
	genres := make([]model.Genre, 0, len(ids))
	for _, gid := range ids {
		genres = append(genres, model.Genre{ID: gid})
	}

	return model.Book{
		ID:       id,
		Title:    f.Title,
		AuthorID: formID(f.Author),
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		Genres:   genres,
	}
}

func fillBook(b model.Book) *BookForm {
	return &BookForm{
		Title:   validation.Unescape(b.Title),
		Author:  b.AuthorID.String(),
		Summary: validation.Unescape(b.Summary),
		ISBN:    validation.Unescape(b.ISBN),
		Genre:   idStrings(b.GenreIDs()),
	}
}

func authorOptions(authors []model.Author, selected string) []AuthorOption {
	res := make([]AuthorOption, 0, len(authors))
	for _, a := range authors {
		id := a.ID.String()
		res = append(res, AuthorOption{
			ID:       id,
			Name:     model.AuthorName(a),
			Selected: id == selected,
		})
	}
	return res
}

// genreOptions marks the genres whose id was submitted.
func genreOptions(genres []model.Genre, checked []string) []GenreOption {
	marked := make(map[string]bool, len(checked))
	for _, id := range checked {
		marked[id] = true
	}

	res := make([]GenreOption, 0, len(genres))
	for _, g := range genres {
		id := g.ID.String()
		res = append(res, GenreOption{
			ID:      id,
			Name:    g.Name,
			Checked: marked[id],
		})
	}
	return res
}
