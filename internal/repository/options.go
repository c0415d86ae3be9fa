package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/snnyvrz/locallibrary/internal/model"
)

func Where(query any, args ...any) Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// SortBy orders results ascending by column.
func SortBy(column string) Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC")
	}
}

// Project limits the loaded columns. Keep the foreign keys a Populate
// option needs.
func Project(columns ...string) Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(columns)
	}
}

// Populate resolves reference fields into embedded records.
func Populate(associations ...string) Option {
	return func(db *gorm.DB) *gorm.DB {
		for _, a := range associations {
			db = db.Preload(a)
		}
		return db
	}
}

// InGenre keeps books linked to genreID.
func InGenre(genreID uuid.UUID) Option {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&model.BookGenre{}).
			Select("book_id").
			Where("genre_id = ?", genreID)
		return db.Where("id IN (?)", sub)
	}
}
