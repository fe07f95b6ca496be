package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBDriver  string // sqlite | postgres
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment")
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "food_delivery.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    ttl,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
