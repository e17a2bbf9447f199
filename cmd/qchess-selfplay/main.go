package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/hailam/qchess/internal/agent"
	"github.com/hailam/qchess/internal/config"
	"github.com/hailam/qchess/internal/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	sessions    = flag.Int("sessions", runtime.NumCPU(), "number of independent self-play sessions")
	plies       = flag.Int("plies", 200, "maximum plies per session")
	concurrency = flag.Int("concurrency", runtime.NumCPU(), "sessions run at once")
)

// ignoredFlags are shared flags that only matter when a human plays.
var ignoredFlags = []string{"human", "learn", "data"}

// checkFlags rejects shared flags that self-play has no use for.
// Sessions always learn, keep nothing on disk, and have no human side.
func checkFlags(fs *flag.FlagSet) error {
	var bad []string
	fs.Visit(func(f *flag.Flag) {
		for _, name := range ignoredFlags {
			if f.Name == name {
				bad = append(bad, "-"+name)
			}
		}
	})
	if len(bad) > 0 {
		return fmt.Errorf("self-play does not use %v", bad)
	}
	return nil
}

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	if err := checkFlags(flag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	logger := config.SetupLogging(cfg.Level(), nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	log.Info().
		Int("sessions", *sessions).
		Int("plies", *plies).
		Float64("epsilon", cfg.Agent.Epsilon).
		Msg("self-play started")
	defer log.Info().Msg("self-play finished")

	start := time.Now()
	seed := cfg.Agent.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*concurrency, 1))

	for i := 0; i < *sessions; i++ {
		i := i // go 1.21 directive: keep per-iteration loop variable semantics
		g.Go(func() error {
			whiteCfg, blackCfg := cfg.Agent, cfg.Agent
			whiteCfg.Seed = seed + uint64(2*i)
			blackCfg.Seed = seed + uint64(2*i+1)
			agentLog := logger.With().Str("component", "agent").Int("session", i).Logger()
			white := agent.New(whiteCfg, agent.WithLogger(agentLog.With().Str("side", "white").Logger()))
			black := agent.New(blackCfg, agent.WithLogger(agentLog.With().Str("side", "black").Logger()))

			res, err := game.SelfPlay(ctx, white, black, game.SelfPlayOptions{
				MaxPlies:    *plies,
				MaxAttempts: cfg.MaxAgentAttempts,
				Reward:      agent.MaterialReward,
			})
			if err != nil {
				return err
			}

			ev := log.Info().
				Int("session", i).
				Int("plies", res.Plies).
				Int("captures", res.Captures).
				Bool("stalled", res.Stalled).
				Int("white_entries", white.Table().Size()).
				Int("black_entries", black.Table().Size())
			if res.KingTaken {
				ev = ev.Stringer("king_lost", res.Loser)
			}
			ev.Msg("session done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("all sessions done")
	return nil
}
