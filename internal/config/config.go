package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"playingcards/internal/game/card"
)

type Config struct {
	BackColor string
	Jokers    bool
	Hands     int
	// Seed of the shuffling source. Zero means seeded from the clock.
	Seed     uint64
	LogLevel slog.Level
}

// Load reads the configuration from the environment. Every invalid variable
// is reported, not only the first.
func Load() (Config, error) {
	c := Config{
		BackColor: envOr("CARDS_BACK_COLOR", card.DefaultBackColor),
		Hands:     4,
	}
	var result *multierror.Error

	if v := os.Getenv("CARDS_JOKERS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid CARDS_JOKERS %q: %w", v, err))
		}
		c.Jokers = b
	}

	if v := os.Getenv("CARDS_HANDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid CARDS_HANDS %q: %w", v, err))
		} else if n < 1 {
			result = multierror.Append(result, fmt.Errorf("CARDS_HANDS must be at least 1, got %d", n))
		} else {
			c.Hands = n
		}
	}

	if v := os.Getenv("CARDS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid CARDS_SEED %q: %w", v, err))
		}
		c.Seed = seed
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		result = multierror.Append(result, err)
	}
	c.LogLevel = level

	if err := result.ErrorOrNil(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
