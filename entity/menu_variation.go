package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuVariation is the orderable unit: a concrete configuration of a menu
// item (size etc.) with its own price, cooking time and availability flag.
type MenuVariation struct {
	gorm.Model
	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Label          string          `gorm:"not null" json:"label"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CookingMinutes int             `gorm:"not null;default:10" json:"cookingMinutes"`
	Available      bool            `gorm:"not null" json:"available"`
}
