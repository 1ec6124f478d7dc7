package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/cli"
	"github.com/robalobadob/wordle/apps/solver/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging()

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
