package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name   string `gorm:"not null" json:"name"`
	Detail string `json:"detail"`

	Variations []MenuVariation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variations"`
}
