package model

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenreNameMinLen = 3
	GenreNameMaxLen = 100
)

type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *Genre) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

func (g Genre) Check() error {
	n := utf8.RuneCountInString(g.Name)
	if n == 0 {
		return invalid("name", "is required")
	}
	if n < GenreNameMinLen || n > GenreNameMaxLen {
		return invalid("name", "must be between 3 and 100 characters")
	}
	return nil
}

func GenreURL(g Genre) string {
	return CatalogURL(SegmentGenre, g.ID)
}
