// Package config resolves the server's startup parameters from
// environment variables and CLI args, and optionally hot-reloads a
// small JSON overlay file while the process runs.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the resolved startup parameters.
type Config struct {
	BasePort      int
	StartingStack int64
	Seed          int64
	ConfigFile    string
}

const (
	defaultBasePort      = 2201
	defaultStartingStack = 1000
)

// Load resolves Config from environment variables, then applies a
// positional CLI seed override (argv[1], the `server [random_seed]`
// form) if present.
func Load(args []string) (Config, error) {
	cfg := Config{
		BasePort:      defaultBasePort,
		StartingStack: defaultStartingStack,
		Seed:          0,
		ConfigFile:    os.Getenv("POKER_CONFIG_FILE"),
	}

	if v := os.Getenv("POKER_BASE_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: POKER_BASE_PORT: %w", err)
		}
		cfg.BasePort = n
	}
	if v := os.Getenv("POKER_STARTING_STACK"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: POKER_STARTING_STACK: %w", err)
		}
		cfg.StartingStack = n
	}

	if len(args) > 1 {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: random_seed argument: %w", err)
		}
		cfg.Seed = n
	}

	return cfg, nil
}
