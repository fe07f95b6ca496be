package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment records one payment attempt against an order. An order may collect
// several attempts (retries), but at most one per externally supplied
// idempotency key.
type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status PaymentStatus   `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`

	// Client-supplied idempotency key; unique across all payments.
	ExternalID *string `gorm:"size:100;uniqueIndex" json:"externalId,omitempty"`

	Version int64 `gorm:"not null;default:0" json:"version"`
}
