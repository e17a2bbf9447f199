package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// flagKeys maps flags to the top-level config keys they override.
var flagKeys = map[string]string{
	"alpha":     "agent",
	"gamma":     "agent",
	"epsilon":   "agent",
	"seed":      "agent",
	"human":     "human",
	"learn":     "learn",
	"attempts":  "max_agent_attempts",
	"data":      "data_dir",
	"log-level": "log_level",
}

// Parse registers the common flags on fs, parses args, loads the -config
// file and applies every flag that was set explicitly on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var (
		path     = fs.String("config", "", "YAML config file")
		alpha    = fs.Float64("alpha", 0, "learning rate")
		gamma    = fs.Float64("gamma", 0, "discount factor")
		epsilon  = fs.Float64("epsilon", 0, "exploration probability")
		seed     = fs.Uint64("seed", 0, "random seed (0 = clock)")
		human    = fs.String("human", "", "side played by the human: white or black")
		learn    = fs.Bool("learn", false, "update the value table after agent moves")
		attempts = fs.Int("attempts", 0, "agent attempts before waiting for the user")
		dataDir  = fs.String("data", "", `preferences database directory ("default" for the platform data dir)`)
		level    = fs.String("log-level", "", "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alpha":
			cfg.Agent.Alpha = *alpha
		case "gamma":
			cfg.Agent.Gamma = *gamma
		case "epsilon":
			cfg.Agent.Epsilon = *epsilon
		case "seed":
			cfg.Agent.Seed = *seed
		case "human":
			cfg.Human = *human
		case "learn":
			cfg.Learn = *learn
		case "attempts":
			cfg.MaxAgentAttempts = *attempts
		case "data":
			cfg.DataDir = *dataDir
		case "log-level":
			cfg.LogLevel = *level
		}
		if key, ok := flagKeys[f.Name]; ok {
			cfg.markSet(key)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogging points the global zerolog logger at a console writer on w
// (stderr when nil) and returns it.
func SetupLogging(level zerolog.Level, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return log.Logger
}
