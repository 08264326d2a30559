package main

import (
	"flag"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tens/internal/board"
	"tens/internal/core"
	"tens/internal/layout"
	"tens/internal/session"
)

type gameResult struct {
	seed      int64
	score     int
	moves     int
	remaining int
}

func main() {
	games := flag.Int("games", 200, "games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	moves := flag.Int("moves", board.Size, "move limit per game")
	verbose := flag.Bool("v", false, "log every game")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	fmt.Printf("Playing %d games (%d workers, first seed %d)\n", *games, *workers, *seed)

	start := time.Now()
	all := sweep(*seed, *games, *workers, *moves)
	elapsed := time.Since(start)

	if len(all) == 0 {
		return
	}
	slices.SortFunc(all, func(a, b gameResult) int { return b.score - a.score })
	total := 0
	for _, res := range all {
		total += res.score
	}
	best, worst := all[0], all[len(all)-1]
	fmt.Printf("Mean score %.2f, best %d (seed %d), worst %d (seed %d)\n",
		float64(total)/float64(len(all)), best.score, best.seed, worst.score, worst.seed)
	fmt.Printf("Finished in %s\n", elapsed.Round(time.Millisecond))
}

// sweep plays games seeded first..first+games-1 across workers goroutines.
func sweep(first int64, games, workers, moves int) []gameResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- play(seed, moves)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < games; i++ {
			jobs <- first + int64(i)
		}
		close(jobs)
	}()

	all := make([]gameResult, 0, games)
	for res := range results {
		log.Debug("game done", "seed", res.seed, "score", res.score, "moves", res.moves, "left", res.remaining)
		all = append(all, res)
	}
	return all
}

// play runs one greedy game by dragging over the best hint until none is left.
func play(seed int64, limit int) gameResult {
	grid := layout.NewGrid(board.Rows, board.Cols)
	grid.Resize(layout.Metrics{Origin: core.Point{X: 16, Y: 16}, CellW: 30, CellH: 30, GapX: 8, GapY: 8})
	sess := session.New(grid, session.WithSeed(seed))

	res := gameResult{seed: seed}
	for res.moves < limit {
		mv, ok := sess.Hint()
		if !ok {
			break
		}
		from, to, ok := sess.DragFor(mv)
		if !ok {
			break
		}
		sess.DragStart(from)
		sess.DragMove(to)
		if out := sess.DragEnd(to); !out.Qualified() {
			break
		}
		res.moves++
	}
	snap := sess.Snapshot()
	res.score = snap.Score
	res.remaining = snap.Active
	return res
}
