package model

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const nameMaxLen = 100

type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"size:100;not null"`
	FamilyName  string    `gorm:"size:100;not null;index"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

func (a Author) Check() error {
	if a.FirstName == "" {
		return invalid("first_name", "is required")
	}
	if utf8.RuneCountInString(a.FirstName) > nameMaxLen {
		return invalid("first_name", "is longer than 100 characters")
	}
	if a.FamilyName == "" {
		return invalid("family_name", "is required")
	}
	if utf8.RuneCountInString(a.FamilyName) > nameMaxLen {
		return invalid("family_name", "is longer than 100 characters")
	}
	return nil
}

// AuthorName is "<family>, <first>", or empty unless both names are set.
func AuthorName(a Author) string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// AuthorLifespan renders "<birth year> - <death year>" with blanks for
// missing dates.
func AuthorLifespan(a Author) string {
	var s string
	if a.DateOfBirth != nil && !a.DateOfBirth.IsZero() {
		s = strconv.Itoa(a.DateOfBirth.Year())
	}
	s += " - "
	if a.DateOfDeath != nil && !a.DateOfDeath.IsZero() {
		s += strconv.Itoa(a.DateOfDeath.Year())
	}
	return s
}

func AuthorURL(a Author) string {
	return CatalogURL(SegmentAuthor, a.ID)
}
