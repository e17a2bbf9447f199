// QChess - play against a learning agent, built with Ebitengine
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/qchess/internal/app"
	"github.com/hailam/qchess/internal/ui"
	"github.com/rs/zerolog/log"
)

func main() {
	a, err := app.New(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	game := ui.NewGame(a.Controller, a.Store, a.Log)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("QChess")

	runErr := ebiten.RunGame(game)
	game.Close()
	if err := a.Close(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game loop")
	}
}
