package config

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("tens", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "42", "-cell", "24", "-tick", "500ms", "-sound=false", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 42 || cfg.Cell != 24 || cfg.Tick != 500*time.Millisecond || cfg.Sound || cfg.LogLevel != "debug" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Gap != 8 || cfg.TPS != 60 {
		t.Fatalf("untouched defaults changed: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Cell = 0
	cfg.Tick = -time.Second
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, want := range []string{"cell", "tick", "log-level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestSeedOrNow(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 9
	if cfg.SeedOrNow() != 9 {
		t.Fatal("explicit seed ignored")
	}
	cfg.Seed = 0
	if cfg.SeedOrNow() == 0 {
		t.Fatal("clock seed is zero")
	}
}

func TestNewLoggerWritesToFallback(t *testing.T) {
	cfg := NewConfig()
	var buf bytes.Buffer
	logger, closer, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closer.Close()
	logger.Info("dealt", "generation", 1)
	logger.Debug("hidden")
	out := buf.String()
	if !strings.Contains(out, "dealt") || !strings.Contains(out, "generation=1") {
		t.Fatalf("unexpected log output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatal("debug line written at info level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	cfg := NewConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "tens.log")
	var buf bytes.Buffer
	logger, closer, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("log went to fallback despite log file")
	}
}
