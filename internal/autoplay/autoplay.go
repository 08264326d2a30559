// Package autoplay finds rectangular spans of cells that would clear if
// dragged. It backs the hint key and the headless bench.
package autoplay

import (
	"tens/internal/board"
	"tens/internal/core"
)

// Move is a rectangular block of grid cells, inclusive on both corners.
type Move struct {
	Top, Left     int
	Bottom, Right int
	// Cells lists the active cells inside the block.
	Cells board.IDs
}

// Area returns the number of grid slots the block spans.
func (m Move) Area() int { return (m.Bottom - m.Top + 1) * (m.Right - m.Left + 1) }

// prefix holds 2D running totals of values and active-cell counts.
type prefix struct {
	sum   [board.Rows + 1][board.Cols + 1]int
	count [board.Rows + 1][board.Cols + 1]int
}

func buildPrefix(reg *board.Registry) *prefix {
	p := &prefix{}
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			v := 0
			if id, ok := reg.At(r, c); ok {
				if val, ok := reg.Value(id); ok {
					v = int(val)
				}
			}
			n := 0
			if v != 0 {
				n = 1
			}
			p.sum[r+1][c+1] = v + p.sum[r][c+1] + p.sum[r+1][c] - p.sum[r][c]
			p.count[r+1][c+1] = n + p.count[r][c+1] + p.count[r+1][c] - p.count[r][c]
		}
	}
	return p
}

func (p *prefix) block(t *[board.Rows + 1][board.Cols + 1]int, top, left, bottom, right int) int {
	return t[bottom+1][right+1] - t[top][right+1] - t[bottom+1][left] + t[top][left]
}

// Moves lists every block whose active cells sum to the clearing target.
// Blocks with cleared rows or columns on their border are skipped, since the
// tighter block inside them clears the same cells.
func Moves(reg *board.Registry) []Move {
	if reg == nil || reg.Len() != board.Size {
		return nil
	}
	p := buildPrefix(reg)
	var out []Move
	for top := 0; top < board.Rows; top++ {
		for bottom := top; bottom < board.Rows; bottom++ {
			for left := 0; left < board.Cols; left++ {
				for right := left; right < board.Cols; right++ {
					s := p.block(&p.sum, top, left, bottom, right)
					if s > board.Target {
						// Widening only grows the sum.
						break
					}
					if s != board.Target || !p.tight(top, left, bottom, right) {
						continue
					}
					out = append(out, Move{
						Top: top, Left: left, Bottom: bottom, Right: right,
						Cells: cellsIn(reg, top, left, bottom, right),
					})
				}
			}
		}
	}
	return out
}

func (p *prefix) tight(top, left, bottom, right int) bool {
	return p.block(&p.count, top, left, top, right) > 0 &&
		p.block(&p.count, bottom, left, bottom, right) > 0 &&
		p.block(&p.count, top, left, bottom, left) > 0 &&
		p.block(&p.count, top, right, bottom, right) > 0
}

func cellsIn(reg *board.Registry, top, left, bottom, right int) board.IDs {
	var ids board.IDs
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			id, ok := reg.At(r, c)
			if !ok {
				continue
			}
			if v, _ := reg.Value(id); v != 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// FindMove picks the move that clears the most cells, preferring the smaller
// block and then the earliest one in row-major order.
func FindMove(reg *board.Registry) (Move, bool) {
	moves := Moves(reg)
	if len(moves) == 0 {
		return Move{}, false
	}
	best := moves[0]
	for _, m := range moves[1:] {
		switch {
		case len(m.Cells) > len(best.Cells):
			best = m
		case len(m.Cells) == len(best.Cells) && m.Area() < best.Area():
			best = m
		}
	}
	return best, true
}

// Drag returns start and end points that select exactly the move's block
// under layout. Points sit a quarter of a cell inside the corner cells so the
// drag never reaches a neighbour.
func (m Move) Drag(reg *board.Registry, layout board.LayoutProvider) (core.Point, core.Point, bool) {
	first, ok1 := reg.At(m.Top, m.Left)
	last, ok2 := reg.At(m.Bottom, m.Right)
	if !ok1 || !ok2 || layout == nil {
		return core.Point{}, core.Point{}, false
	}
	a, ok1 := layout.Rect(first)
	b, ok2 := layout.Rect(last)
	if !ok1 || !ok2 {
		return core.Point{}, core.Point{}, false
	}
	start := core.Point{X: a.X + a.W/4, Y: a.Y + a.H/4}
	end := core.Point{X: b.X + 3*b.W/4, Y: b.Y + 3*b.H/4}
	return start, end, true
}

// HasMove reports whether any block on the board would clear. It stops at the
// first match.
func HasMove(reg *board.Registry) bool {
	if reg == nil || reg.Len() != board.Size {
		return false
	}
	p := buildPrefix(reg)
	for top := 0; top < board.Rows; top++ {
		for bottom := top; bottom < board.Rows; bottom++ {
			for left := 0; left < board.Cols; left++ {
				for right := left; right < board.Cols; right++ {
					s := p.block(&p.sum, top, left, bottom, right)
					if s > board.Target {
						break
					}
					if s == board.Target {
						return true
					}
				}
			}
		}
	}
	return false
}
