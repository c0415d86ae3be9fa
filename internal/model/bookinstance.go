package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

// Statuses is the set of copy states in display order.
var Statuses = []string{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type BookInstance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Book      Book      `gorm:"constraint:OnDelete:RESTRICT"`
	Imprint   string    `gorm:"not null"`
	Status    string    `gorm:"size:20;not null;index"`
	DueBack   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) (err error) {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return
}

func (bi BookInstance) Check() error {
	switch {
	case bi.BookID == uuid.Nil:
		return invalid("book", "is required")
	case bi.Imprint == "":
		return invalid("imprint", "is required")
	case !IsValidStatus(bi.Status):
		return invalid("status", "is not a known status")
	}
	return nil
}

func BookInstanceURL(bi BookInstance) string {
	return CatalogURL(SegmentBookInstance, bi.ID)
}
