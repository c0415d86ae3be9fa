package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Option narrows or shapes a query. Options are gorm scopes.
type Option func(*gorm.DB) *gorm.DB

type Store[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID, opts ...Option) (*T, error)
	Find(ctx context.Context, opts ...Option) ([]T, error)
	FindOne(ctx context.Context, opts ...Option) (*T, error)
	Count(ctx context.Context, opts ...Option) (int64, error)
	Save(ctx context.Context, rec *T) error
	ReplaceByID(ctx context.Context, id uuid.UUID, rec *T) error
	RemoveByID(ctx context.Context, id uuid.UUID) error
}

type checker interface {
	Check() error
}

// writeHook runs inside the write transaction after the record row itself
// has been written or before it is removed.
type writeHook[T any] func(tx *gorm.DB, id uuid.UUID, rec *T) error

type GormStore[T any] struct {
	db           *gorm.DB
	afterWrite   writeHook[T]
	beforeRemove writeHook[T]
}

func NewGormStore[T any](db *gorm.DB) *GormStore[T] {
	return &GormStore[T]{db: db}
}

func (s *GormStore[T]) FindByID(ctx context.Context, id uuid.UUID, opts ...Option) (*T, error) {
	var rec T
	if err := s.query(ctx, opts).First(&rec, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *GormStore[T]) Find(ctx context.Context, opts ...Option) ([]T, error) {
	var recs []T
	if err := s.query(ctx, opts).Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

func (s *GormStore[T]) FindOne(ctx context.Context, opts ...Option) (*T, error) {
	var rec T
	if err := s.query(ctx, opts).Take(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *GormStore[T]) Count(ctx context.Context, opts ...Option) (int64, error) {
	var n int64
	if err := s.query(ctx, opts).Model(new(T)).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (s *GormStore[T]) Save(ctx context.Context, rec *T) error {
	if err := check(rec); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if s.afterWrite != nil {
			return s.afterWrite(tx, uuid.Nil, rec)
		}
		return nil
	})
	return translate(err)
}

// ReplaceByID overwrites every column of the record stored under id.
func (s *GormStore[T]) ReplaceByID(ctx context.Context, id uuid.UUID, rec *T) error {
	if err := check(rec); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(new(T)).
			Where("id = ?", id).
			Select("*").
			Omit("id", "created_at", clause.Associations).
			Updates(rec)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if s.afterWrite != nil {
			return s.afterWrite(tx, id, rec)
		}
		return nil
	})
	return translate(err)
}

func (s *GormStore[T]) RemoveByID(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.beforeRemove != nil {
			if err := s.beforeRemove(tx, id, nil); err != nil {
				return err
			}
		}
		result := tx.Delete(new(T), "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}

func (s *GormStore[T]) query(ctx context.Context, opts []Option) *gorm.DB {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, len(opts))
	for _, o := range opts {
		scopes = append(scopes, o)
	}
	return s.db.WithContext(ctx).Scopes(scopes...)
}

func check(rec any) error {
	if c, ok := rec.(checker); ok {
		return c.Check()
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidReference):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
	}

	return err
}
