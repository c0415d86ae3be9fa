package handler

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type BookInstanceForm struct {
	Book    string `form:"book" json:"book" validate:"required,uuid"`
	Imprint string `form:"imprint" json:"imprint" validate:"required"`
	Status  string `form:"status" json:"status" validate:"omitempty,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `form:"due_back" json:"due_back" validate:"omitempty,isodate"`
}

// Normalize trims every field. A copy without a status is under
// maintenance.
func (f *BookInstanceForm) Normalize() {
	f.Book = validation.Trim(f.Book)
	f.Imprint = validation.Trim(f.Imprint)
	f.Status = validation.Trim(f.Status)
	f.DueBack = validation.Trim(f.DueBack)
	if f.Status == "" {
		f.Status = model.StatusMaintenance
	}
}

func (f *BookInstanceForm) Escape() {
	f.Imprint = validation.Escape(f.Imprint)
}

var bookInstanceMessages = validation.Messages{
	"book.required":    "Book must be specified",
	"book.uuid":        "Book must be a valid selection",
	"book.exists":      "Book does not exist",
	"imprint.required": "Imprint must be specified",
	"status.oneof":     "Status must be one of Available, Maintenance, Loaned or Reserved",
	"due_back":         "Invalid date",
}

type BookInstanceView struct {
	ID               uuid.UUID   `json:"id"`
	URL              string      `json:"url"`
	Book             BookSummary `json:"book"`
	Imprint          string      `json:"imprint"`
	Status           string      `json:"status"`
	DueBack          *model.Date `json:"due_back,omitempty" swaggertype:"string" example:"2026-11-01"`
	DueBackFormatted string      `json:"due_back_formatted"`
	DueBackRelative  string      `json:"due_back_relative,omitempty"`
}

// StatusOption is one choice of the status select on the copy form.
type StatusOption struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

func toBookInstance(bi model.BookInstance) BookInstanceView {
	v := BookInstanceView{
		ID:               bi.ID,
		URL:              model.BookInstanceURL(bi),
		Imprint:          bi.Imprint,
		Status:           bi.Status,
		DueBack:          model.NewDate(bi.DueBack),
		DueBackFormatted: model.FormatMedium(bi.DueBack),
	}
	if bi.Book.ID != uuid.Nil {
		v.Book = BookSummary{
			ID:    bi.Book.ID,
			URL:   model.BookURL(bi.Book),
			Title: bi.Book.Title,
		}
	} else {
		v.Book = BookSummary{ID: bi.BookID, URL: model.CatalogURL(model.SegmentBook, bi.BookID)}
	}
	if bi.DueBack != nil && !bi.DueBack.IsZero() {
		v.DueBackRelative = humanize.Time(*bi.DueBack)
	}
	return v
}

func toBookInstances(copies []model.BookInstance) []BookInstanceView {
	res := make([]BookInstanceView, 0, len(copies))
	for _, bi := range copies {
		res = append(res, toBookInstance(bi))
	}
	return res
}

func buildBookInstance(f *BookInstanceForm, id uuid.UUID) model.BookInstance {
	return model.BookInstance{
		ID:      id,
		BookID:  formID(f.Book),
		Imprint: f.Imprint,
		Status:  f.Status,
		DueBack: formDate(f.DueBack),
	}
}

func fillBookInstance(bi model.BookInstance) *BookInstanceForm {
	return &BookInstanceForm{
		Book:    bi.BookID.String(),
		Imprint: validation.Unescape(bi.Imprint),
		Status:  bi.Status,
		DueBack: model.FormatISO(bi.DueBack),
	}
}

func bookOptions(books []model.Book, selected string) []BookOption {
	res := make([]BookOption, 0, len(books))
	for _, b := range books {
		id := b.ID.String()
		res = append(res, BookOption{
			ID:       id,
			Title:    b.Title,
			Selected: id == selected,
		})
	}
	return res
}

func statusOptions(selected string) []StatusOption {
	res := make([]StatusOption, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		res = append(res, StatusOption{Value: s, Selected: s == selected})
	}
	return res
}
