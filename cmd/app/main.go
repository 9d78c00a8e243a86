package main

import (
	"tasktracker/config"
	"tasktracker/di"
	"tasktracker/helper"
	"tasktracker/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Task Tracker
// @version 1.0
// @description Server-rendered task tracker with a JSON health endpoint.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate || cfg.IsSQLite() {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
