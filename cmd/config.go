package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

var defaultPlayers = []string{"Alice", "Bob"}

type config struct {
	Players  []string
	Seed     string // empty means non-reproducible shuffles
	Rounds   int
	LogLevel pterm.LogLevel
}

// loadConfig reads the POKER_* environment variables. Values missing from
// the environment are taken from the given .env files (".env" when none is
// given) if they exist.
func loadConfig(envFiles ...string) (config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg := config{
		Players:  defaultPlayers,
		Seed:     os.Getenv("POKER_SEED"),
		Rounds:   1,
		LogLevel: pterm.LogLevelInfo,
	}

	if v := os.Getenv("POKER_PLAYERS"); v != "" {
		cfg.Players = parsePlayers(v)
		if len(cfg.Players) == 0 {
			return config{}, fmt.Errorf("POKER_PLAYERS has no player names: %q", v)
		}
	}

	if v := os.Getenv("POKER_ROUNDS"); v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil || rounds < 1 {
			return config{}, fmt.Errorf("POKER_ROUNDS must be a positive integer, got %q", v)
		}
		cfg.Rounds = rounds
	}

	if v := os.Getenv("POKER_LOG_LEVEL"); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			return config{}, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func parsePlayers(v string) []string {
	var names []string
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parseLogLevel(v string) (pterm.LogLevel, error) {
	switch strings.ToLower(v) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("unknown POKER_LOG_LEVEL %q", v)
	}
}
