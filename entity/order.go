package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable business snapshot created from an active cart.
// Only its status (and version counter) ever change after creation.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Status     OrderStatus     `gorm:"type:varchar(20);not null;default:NEW;index" json:"status"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	EtaMinutes int             `gorm:"not null" json:"etaMinutes"`

	// Optimistic concurrency counter; every status write is a CAS on it.
	Version int64 `gorm:"not null;default:0" json:"version"`

	Lines    []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
	Payments []Payment   `json:"-"`
}
