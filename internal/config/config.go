// Package config reads lexis settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "LEXIS_"

// Config holds all runtime settings.
type Config struct {
	DBPath        string `env:"DB"`
	NewWordsLimit int    `env:"NEW_WORDS_LIMIT"`

	SpeechEnabled bool    `env:"SPEECH_ENABLED"`
	SpeechCommand string  `env:"SPEECH_COMMAND"`
	SpeechRate    float64 `env:"SPEECH_RATE"`

	LogUseCases bool   `env:"LOG_USE_CASES"`
	LogFile     string `env:"LOG_FILE"`

	RemindEvery     time.Duration `env:"REMIND_EVERY"`
	RemindStartHour int           `env:"REMIND_START_HOUR"`
	RemindEndHour   int           `env:"REMIND_END_HOUR"`

	TimeZone string `env:"TZ"`

	location *time.Location
}

// Location is the zone resolved from TimeZone, local time by default.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Default returns the settings used when nothing is configured. DBPath is
// empty until Load resolves the home directory.
func Default() Config {
	return Config{
		NewWordsLimit:   15,
		SpeechEnabled:   true,
		SpeechRate:      0.8,
		RemindEvery:     time.Hour,
		RemindStartHour: 8,
		RemindEndHour:   22,
	}
}

// DefaultDBPath is ~/.lexis/lexis.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".lexis", "lexis.db"), nil
}

// Load merges envFile (ignored when missing) under the process
// environment and parses the result.
func Load(envFile string) (Config, []string, error) {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}
	for k, v := range env.ToMap(os.Environ()) {
		vars[k] = v
	}

	cfg, warnings := Parse(vars)
	if cfg.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return Config{}, warnings, err
		}
		cfg.DBPath = path
	}
	return cfg, warnings, nil
}

// Parse reads settings from vars. Values that fail to parse or fall out
// of range keep their default and produce a warning.
func Parse(vars map[string]string) (Config, []string) {
	cfg := Default()
	var warnings []string

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix, Environment: vars}); err != nil {
		var agg env.AggregateError
		if errors.As(err, &agg) {
			for _, e := range agg.Errors {
				warnings = append(warnings, e.Error())
			}
		} else {
			warnings = append(warnings, err.Error())
		}
	}

	def := Default()
	if cfg.NewWordsLimit <= 0 {
		warnings = append(warnings, fmt.Sprintf("%sNEW_WORDS_LIMIT must be positive, using %d", Prefix, def.NewWordsLimit))
		cfg.NewWordsLimit = def.NewWordsLimit
	}
	if cfg.SpeechRate <= 0 || cfg.SpeechRate > 4 {
		warnings = append(warnings, fmt.Sprintf("%sSPEECH_RATE must be in (0,4], using %.1f", Prefix, def.SpeechRate))
		cfg.SpeechRate = def.SpeechRate
	}
	if cfg.RemindEvery < time.Minute {
		warnings = append(warnings, fmt.Sprintf("%sREMIND_EVERY must be at least 1m, using %s", Prefix, def.RemindEvery))
		cfg.RemindEvery = def.RemindEvery
	}
	if !validHour(cfg.RemindStartHour) || !validHour(cfg.RemindEndHour) || cfg.RemindStartHour > cfg.RemindEndHour {
		warnings = append(warnings, fmt.Sprintf("%sREMIND_START_HOUR/END_HOUR must satisfy 0 <= start <= end <= 23, using %d-%d",
			Prefix, def.RemindStartHour, def.RemindEndHour))
		cfg.RemindStartHour, cfg.RemindEndHour = def.RemindStartHour, def.RemindEndHour
	}
	if cfg.TimeZone != "" {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%sTZ %q unknown, using local time", Prefix, cfg.TimeZone))
			cfg.TimeZone = ""
		} else {
			cfg.location = loc
		}
	}
	return cfg, warnings
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}
