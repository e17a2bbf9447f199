package main

import (
	"flag"
	"os"

	"github.com/hailam/qchess/internal/app"
	"github.com/hailam/qchess/internal/console"
	"github.com/rs/zerolog/log"
)

func main() {
	a, err := app.New(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	c := console.New(a.Controller, a.Store, os.Stdout, a.Config.MaxAgentAttempts, a.Log)
	runErr := c.Run(os.Stdin)

	if err := a.Close(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("read input")
	}
}
