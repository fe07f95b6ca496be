package entity

import (
	"time"
)

// CartLine holds one variation with its quantity. No soft delete here: a
// removed line must free the (cart, variation) slot in the unique index.
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CartID uint `gorm:"not null;uniqueIndex:uniq_cart_variation" json:"cartId"`
	Cart   Cart `json:"-"`

	VariationID uint          `gorm:"not null;uniqueIndex:uniq_cart_variation" json:"variationId"`
	Variation   MenuVariation `json:"variation"`

	Quantity int `gorm:"not null" json:"quantity"`
}
