package configs

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}

	// TranslateError so unique-constraint violations surface as
	// gorm.ErrDuplicatedKey regardless of driver.
	database, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{}, &entity.UserVersion{},
		&entity.Restaurant{}, &entity.MenuItem{}, &entity.MenuVariation{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Payment{},
	)
}
