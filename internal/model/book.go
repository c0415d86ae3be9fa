package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Author    Author    `gorm:"constraint:OnDelete:RESTRICT"`
	Summary   string    `gorm:"not null"`
	ISBN      string    `gorm:"column:isbn;not null"`
	Genres    []Genre   `gorm:"many2many:book_genres"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookGenre is the join row linking a book to one of its genres.
type BookGenre struct {
	BookID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

func (b Book) Check() error {
	switch {
	case b.Title == "":
		return invalid("title", "is required")
	case b.AuthorID == uuid.Nil:
		return invalid("author", "is required")
	case b.Summary == "":
		return invalid("summary", "is required")
	case b.ISBN == "":
		return invalid("isbn", "is required")
	}
	return nil
}

// GenreIDs lists the ids of the book's genres in order.
func (b Book) GenreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

func BookURL(b Book) string {
	return CatalogURL(SegmentBook, b.ID)
}
