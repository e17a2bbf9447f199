// Package app wires configuration, logging, storage and the controller
// together for the binaries.
package app

import (
	"flag"
	"io"

	"github.com/hailam/qchess/internal/agent"
	"github.com/hailam/qchess/internal/board"
	"github.com/hailam/qchess/internal/config"
	"github.com/hailam/qchess/internal/game"
	"github.com/hailam/qchess/internal/storage"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// App is a configured game session.
type App struct {
	Config     *config.Config
	Log        zerolog.Logger
	Store      *storage.Storage
	Controller *game.Controller
}

// New parses args with fs and builds a session. Log output goes to logOut
// (stderr when nil).
func New(fs *flag.FlagSet, args []string, logOut io.Writer) (*App, error) {
	cfg, err := config.Parse(fs, args)
	if err != nil {
		return nil, err
	}
	logger := config.SetupLogging(cfg.Level(), logOut)

	dir, err := storage.GetDatabaseDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	store, err := storage.NewStorage(dir)
	if err != nil {
		return nil, err
	}

	if prefs, err := store.LoadPreferences(); err != nil {
		logger.Warn().Err(err).Msg("failed to load preferences")
	} else {
		applyPreferences(cfg, prefs)
		logger.Debug().Str("user", prefs.Username).Time("last_played", prefs.LastPlayed).Msg("preferences loaded")
	}
	human := cfg.HumanColor()

	a := agent.New(cfg.Agent, agent.WithLogger(logger.With().Str("component", "agent").Logger()))
	ctrl := game.NewController(a,
		game.WithHumanColor(human),
		game.WithLearning(cfg.Reward()),
		game.WithLogger(logger.With().Str("component", "game").Logger()),
	)

	logger.Info().
		Float64("alpha", cfg.Agent.Alpha).
		Float64("gamma", cfg.Agent.Gamma).
		Float64("epsilon", cfg.Agent.Epsilon).
		Str("human", human.String()).
		Bool("learn", cfg.Learn).
		Msg("session ready")

	return &App{
		Config:     cfg,
		Log:        logger,
		Store:      store,
		Controller: ctrl,
	}, nil
}

// applyPreferences fills the side and learning switch from the last
// session unless the config file or a flag chose them.
func applyPreferences(cfg *config.Config, prefs *storage.UserPreferences) {
	if !cfg.IsSet("human") {
		cfg.Human = "white"
		if prefs.PlayerColor == storage.ColorBlack {
			cfg.Human = "black"
		}
	}
	if !cfg.IsSet("learn") {
		cfg.Learn = prefs.Learn
	}
}

// Close saves the current preferences and closes storage, reporting
// every failure.
func (a *App) Close() error {
	var errs error

	prefs, err := a.Store.LoadPreferences()
	if err != nil {
		errs = multierror.Append(errs, err)
	} else {
		prefs.PlayerColor = storage.ColorWhite
		if a.Controller.HumanColor() == board.Black {
			prefs.PlayerColor = storage.ColorBlack
		}
		prefs.Learn = a.Controller.Learning()
		if err := a.Store.SavePreferences(prefs); err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "save preferences"))
		}
	}

	if err := a.Store.Close(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "close storage"))
	}
	return errs
}
