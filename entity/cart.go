package entity

import (
	"gorm.io/gorm"
)

// Cart is the single in-progress cart of a user. The partial unique index
// allows any number of inactive (checked-out) carts per user but at most one
// active one, so concurrent first-time creation serializes on the constraint.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:uniq_active_cart_per_user,where:active = true" json:"userId"`
	User   User `json:"-"`

	// Bound to the restaurant of the first line added; nil while empty.
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Active bool `gorm:"not null;default:true" json:"active"`

	Lines []CartLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}
