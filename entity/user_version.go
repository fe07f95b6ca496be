package entity

import (
	"time"

	"gorm.io/gorm"
)

// UserVersion is a snapshot of a user's profile taken before every change,
// so the profile can be reconstructed as of any point in time.
type UserVersion struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	VersionAt time.Time `gorm:"index;not null" json:"versionAt"`
}

func SnapshotOf(u *User) *UserVersion {
	return &UserVersion{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		VersionAt: time.Now(),
	}
}
