package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	// no default tag: gorm omits zero-valued defaulted fields on insert,
	// so Open=false would not persist
	Open bool `gorm:"not null" json:"open"`

	Items []MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
