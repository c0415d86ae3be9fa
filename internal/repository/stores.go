package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/snnyvrz/locallibrary/internal/model"
)

// Stores is the handle every handler and workflow shares.
type Stores struct {
	Authors   Store[model.Author]
	Genres    Store[model.Genre]
	Books     Store[model.Book]
	Instances Store[model.BookInstance]
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Authors:   NewGormStore[model.Author](db),
		Genres:    NewGormStore[model.Genre](db),
		Books:     NewBookStore(db),
		Instances: NewGormStore[model.BookInstance](db),
	}
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Book{}, "Genres", &model.BookGenre{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Author{},
		&model.Genre{},
		&model.Book{},
		&model.BookGenre{},
		&model.BookInstance{},
	)
}

// NewBookStore writes a book's genres as explicit join rows so a genre id
// never creates a genre.
func NewBookStore(db *gorm.DB) *GormStore[model.Book] {
	s := NewGormStore[model.Book](db)
	s.afterWrite = func(tx *gorm.DB, id uuid.UUID, b *model.Book) error {
		if id == uuid.Nil {
			id = b.ID
		} else {
			b.ID = id
		}
		if err := tx.Where("book_id = ?", id).Delete(&model.BookGenre{}).Error; err != nil {
			return err
		}
		links := make([]model.BookGenre, 0, len(b.Genres))
		seen := make(map[uuid.UUID]bool, len(b.Genres))
		for _, gid := range b.GenreIDs() {
			if seen[gid] {
				continue
			}
			seen[gid] = true
			links = append(links, model.BookGenre{BookID: id, GenreID: gid})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	}
	s.beforeRemove = func(tx *gorm.DB, id uuid.UUID, _ *model.Book) error {
		return tx.Where("book_id = ?", id).Delete(&model.BookGenre{}).Error
	}
	return s
}
