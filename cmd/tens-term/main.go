package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tens/internal/board"
	"tens/internal/config"
	"tens/internal/layout"
	"tens/internal/session"
	"tens/internal/sfx"
	"tens/internal/term"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	// The terminal belongs to the UI; logs only go somewhere when -log-file is set.
	logger, closer, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(logger)

	grid := layout.NewGrid(board.Rows, board.Cols)
	grid.Resize(term.Metrics())

	player := sfx.New(cfg.Sound, logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound unavailable", "err", err)
	}
	defer player.Close()

	seed := cfg.SeedOrNow()
	sess := session.New(grid,
		session.WithSeed(seed),
		session.WithTickInterval(cfg.Tick),
		session.WithLogger(logger),
		session.WithListener(player),
	)

	p := tea.NewProgram(term.New(sess, grid, player), tea.WithAltScreen(), tea.WithMouseCellMotion())
	sess.Subscribe(term.Forward(p))
	sess.Start()
	defer sess.Stop()

	logger.Info("starting", "seed", seed)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	logger.Info("finished", "score", sess.Score(), "elapsed", sess.Elapsed())
	fmt.Printf("Score %d in %ds (seed %d)\n", sess.Score(), sess.Elapsed(), seed)
	return nil
}
