package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MavMaver/food-delivery/configs"
	"github.com/MavMaver/food-delivery/middlewares"
	"github.com/MavMaver/food-delivery/routes"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log.Logger))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
