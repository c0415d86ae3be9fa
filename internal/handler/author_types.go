package handler

import (
	"github.com/google/uuid"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/validation"
)

type AuthorForm struct {
	FirstName   string `form:"first_name" json:"first_name" validate:"required,max=100,alphanum"`
	FamilyName  string `form:"family_name" json:"family_name" validate:"required,max=100,alphanum"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth" validate:"omitempty,isodate"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death" validate:"omitempty,isodate"`
}

func (f *AuthorForm) Normalize() {
	f.FirstName = validation.Trim(f.FirstName)
	f.FamilyName = validation.Trim(f.FamilyName)
	f.DateOfBirth = validation.Trim(f.DateOfBirth)
	f.DateOfDeath = validation.Trim(f.DateOfDeath)
}

func (f *AuthorForm) Escape() {
	f.FirstName = validation.Escape(f.FirstName)
	f.FamilyName = validation.Escape(f.FamilyName)
}

var authorMessages = validation.Messages{
	"first_name.required":  "First name must be specified.",
	"first_name.max":       "First name must not exceed 100 characters.",
	"first_name.alphanum":  "First name has non-alphanumeric characters.",
	"family_name.required": "Family name must be specified.",
	"family_name.max":      "Family name must not exceed 100 characters.",
	"family_name.alphanum": "Family name has non-alphanumeric characters.",
	"date_of_birth":        "Invalid date of birth",
	"date_of_death":        "Invalid date of death",
}

type Author struct {
	ID                   uuid.UUID   `json:"id"`
	URL                  string      `json:"url"`
	FirstName            string      `json:"first_name"`
	FamilyName           string      `json:"family_name"`
	Name                 string      `json:"name"`
	Lifespan             string      `json:"lifespan"`
	DateOfBirth          *model.Date `json:"date_of_birth,omitempty" swaggertype:"string" example:"1920-01-02"`
	DateOfDeath          *model.Date `json:"date_of_death,omitempty" swaggertype:"string" example:"1992-04-06"`
	DateOfBirthFormatted string      `json:"date_of_birth_formatted"`
	DateOfDeathFormatted string      `json:"date_of_death_formatted"`
}

type AuthorSummary struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

// AuthorOption is one choice of the author select on the book form.
type AuthorOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

func toAuthor(a model.Author) Author {
	return Author{
		ID:                   a.ID,
		URL:                  model.AuthorURL(a),
		FirstName:            a.FirstName,
		FamilyName:           a.FamilyName,
		Name:                 model.AuthorName(a),
		Lifespan:             model.AuthorLifespan(a),
		DateOfBirth:          model.NewDate(a.DateOfBirth),
		DateOfDeath:          model.NewDate(a.DateOfDeath),
		DateOfBirthFormatted: model.FormatMedium(a.DateOfBirth),
		DateOfDeathFormatted: model.FormatMedium(a.DateOfDeath),
	}
}

func toAuthorSummary(a model.Author) AuthorSummary {
	return AuthorSummary{
		ID:   a.ID,
		URL:  model.AuthorURL(a),
		Name: model.AuthorName(a),
	}
}

func buildAuthor(f *AuthorForm, id uuid.UUID) model.Author {
	return model.Author{
		ID:          id,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: formDate(f.DateOfBirth),
		DateOfDeath: formDate(f.DateOfDeath),
	}
}

func fillAuthor(a model.Author) *AuthorForm {
	return &AuthorForm{
		FirstName:   validation.Unescape(a.FirstName),
		FamilyName:  validation.Unescape(a.FamilyName),
		DateOfBirth: model.FormatISO(a.DateOfBirth),
		DateOfDeath: model.FormatISO(a.DateOfDeath),
	}
}
