// Package config holds the command-line settings shared by the Tens front ends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed     int64
	Scale    float64
	TPS      int
	Cell     float64
	Gap      float64
	Tick     time.Duration
	Sound    bool
	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:    1,
		TPS:      60,
		Cell:     30,
		Gap:      8,
		Tick:     time.Second,
		Sound:    true,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid generation (0 picks one from the clock)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second for the render loop")
	fs.Float64Var(&c.Cell, "cell", c.Cell, "cell edge length in pixels")
	fs.Float64Var(&c.Gap, "gap", c.Gap, "gap between cells in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "real time per elapsed-time unit")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Cell <= 0 {
		errs = append(errs, fmt.Errorf("cell must be positive, got %v", c.Cell))
	}
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %v", c.Gap))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", c.Tick))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	return errors.Join(errs...)
}

// SeedOrNow returns the configured seed, or one derived from the clock when
// none was given.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger builds the logger described by LogLevel and LogFile. Without a log
// file it writes to fallback. The returned closer releases the file.
func (c *Config) NewLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log-level: %w", err)
	}
	w := fallback
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
