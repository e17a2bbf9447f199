// Package config loads the YAML configuration shared by the binaries.
package config

import (
	"fmt"
	"os"

	"github.com/hailam/qchess/internal/agent"
	"github.com/hailam/qchess/internal/board"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero fields in a file keep their defaults.
type Config struct {
	Agent agent.Config `yaml:"agent"`

	// Human is the side played by the human: "white" or "black".
	Human string `yaml:"human"`

	// Learn enables value-table updates after every agent move,
	// rewarded by captured material.
	Learn bool `yaml:"learn"`

	// MaxAgentAttempts is how many times a front end asks the agent for a
	// move before waiting for the user.
	MaxAgentAttempts int `yaml:"max_agent_attempts"`

	// DataDir holds the preferences database. Empty keeps it in memory.
	DataDir string `yaml:"data_dir"`

	LogLevel string `yaml:"log_level"`

	// set holds the top-level keys given by the file or a flag.
	set map[string]bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Agent:            agent.DefaultConfig(),
		Human:            "white",
		MaxAgentAttempts: 600,
		LogLevel:         "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	for key := range keys {
		cfg.markSet(key)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs error
	if err := c.Agent.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, ok := board.ParseColor(c.Human); !ok {
		errs = multierror.Append(errs, fmt.Errorf("human must be white or black, got %q", c.Human))
	}
	if c.MaxAgentAttempts < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max_agent_attempts must be positive, got %d", c.MaxAgentAttempts))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errs
}

// IsSet reports whether the top-level key was given by the config file
// or an explicit flag rather than taken from the defaults.
func (c *Config) IsSet(key string) bool {
	return c.set[key]
}

func (c *Config) markSet(key string) {
	if c.set == nil {
		c.set = make(map[string]bool)
	}
	c.set[key] = true
}

// HumanColor returns the parsed human side, White if unparseable.
func (c *Config) HumanColor() board.Color {
	color, _ := board.ParseColor(c.Human)
	return color
}

// Reward returns the reward function implied by Learn, nil when off.
func (c *Config) Reward() agent.RewardFunc {
	if !c.Learn {
		return nil
	}
	return agent.MaterialReward
}

// Level returns the parsed log level, info if unparseable.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
