package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine copies the item name, variation label, price and cooking time at
// order-creation time, so order history is decoupled from later menu edits.
type OrderLine struct {
	gorm.Model
	OrderID uint `gorm:"index;not null" json:"orderId"`

	RestaurantID uint `gorm:"not null" json:"restaurantId"`
	VariationID  uint `json:"variationId"`

	ItemName       string          `gorm:"not null" json:"itemName"`
	VariationLabel string          `gorm:"not null" json:"variationLabel"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	CookingMinutes int             `gorm:"not null" json:"cookingMinutes"`
}

// NewOrderLine snapshots a cart line into an order line.
func NewOrderLine(orderID, restaurantID uint, l *CartLine) *OrderLine {
	return &OrderLine{
		OrderID:        orderID,
		RestaurantID:   restaurantID,
		VariationID:    l.VariationID,
		ItemName:       l.Variation.MenuItem.Name,
		VariationLabel: l.Variation.Label,
		Price:          l.Variation.Price,
		Quantity:       l.Quantity,
		CookingMinutes: l.Variation.CookingMinutes,
	}
}
