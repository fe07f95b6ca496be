package configs

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/MavMaver/food-delivery/entity"
)

// SeedAdmin creates the initial admin account if ADMIN_EMAIL/ADMIN_PASSWORD
// are set and the account does not exist yet.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Debug().Msg("skip seeding admin: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("seeded admin account")
	return nil
}
