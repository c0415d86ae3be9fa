package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type GenreForm struct {
	Name string `form:"name" json:"name" validate:"required,min=3,max=100"`
}

func (f *GenreForm) Normalize() {
	f.Name = validation.Trim(f.Name)
}

func (f *GenreForm) Escape() {
	f.Name = validation.Escape(f.Name)
}

var genreMessages = validation.Messages{
	"name.required": "Genre name must be specified",
	"name.min":      "Genre name must contain at least 3 characters",
	"name.max":      "Genre name must not exceed 100 characters",
}

type GenreView struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

func toGenre(g model.Genre) GenreView {
	return GenreView{
		ID:   g.ID,
		URL:  model.GenreURL(g),
		Name: g.Name,
	}
}

func buildGenre(f *GenreForm, id uuid.UUID) model.Genre {
	return model.Genre{ID: id, Name: f.Name}
}

func fillGenre(g model.Genre) *GenreForm {
	return &GenreForm{Name: validation.Unescape(g.Name)}
}
