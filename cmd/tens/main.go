//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tens/internal/app"
	"tens/internal/board"
	"tens/internal/config"
	"tens/internal/layout"
	"tens/internal/session"
	"tens/internal/sfx"
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
	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(logger)

	grid := layout.NewGrid(board.Rows, board.Cols)
	grid.Resize(app.Metrics(cfg.Cell, cfg.Gap))

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
	sess.Start()
	defer sess.Stop()

	game := app.New(sess, grid, player, logger)
	w, h := game.Size()

	ebiten.SetWindowTitle("Tens")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))

	logger.Info("starting", "seed", seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("finished", "score", sess.Score(), "elapsed", sess.Elapsed())
	return nil
}
