package main

import (
	"os"
	"tasktracker/config"
	"tasktracker/helper"
	"tasktracker/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop or step-up")
	}

	action := os.Args[1]

	switch action {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp:
		if err := helper.Runner(cfg, action); err != nil {
			log.Fatal().Err(err).Str("action", action).Str("driver", cfg.DB.Driver).Msg("Migration failed")
		}
	default:
		log.Fatal().Str("action", action).Msg("Invalid action. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
