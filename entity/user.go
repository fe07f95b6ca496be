package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash; empty for users created by admins
	Role     string `gorm:"not null;default:customer" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`

	Versions []UserVersion `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Carts    []Cart        `json:"-"`
	Orders   []Order       `json:"-"`
}
