// Package layout places grid cells in a front end's coordinate space and
// answers the per-cell rectangle queries the selection engine makes.
package layout

import (
	"sync"

	"tens/internal/board"
	"tens/internal/core"
)

// Metrics describes where the grid sits and how big each cell is.
type Metrics struct {
	Origin core.Point
	CellW  float64
	CellH  float64
	GapX   float64
	GapY   float64
}

// Grid is a LayoutProvider for a uniform rows x cols grid. It has no
// rectangles until the first Resize, and Invalidate drops them again, so a
// front end can model the window between a size change and the next layout
// pass.
type Grid struct {
	rows, cols int

	mu      sync.RWMutex
	metrics Metrics
	valid   bool
}

// NewGrid returns an unplaced grid layout.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols}
}

// Resize places the grid using m.
func (g *Grid) Resize(m Metrics) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.metrics = m
	g.valid = m.CellW > 0 && m.CellH > 0
}

// Invalidate forgets every rectangle until the next Resize.
func (g *Grid) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.valid = false
}

// Metrics returns the current placement and whether it is valid.
func (g *Grid) Metrics() (Metrics, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.metrics, g.valid
}

// Rect implements board.LayoutProvider.
func (g *Grid) Rect(id board.CellID) (core.Rect, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.valid || id < 0 || int(id) >= g.rows*g.cols {
		return core.Rect{}, false
	}
	row, col := int(id)/g.cols, int(id)%g.cols
	return g.cellRect(row, col), true
}

func (g *Grid) cellRect(row, col int) core.Rect {
	m := g.metrics
	return core.Rect{
		X: m.Origin.X + float64(col)*(m.CellW+m.GapX),
		Y: m.Origin.Y + float64(row)*(m.CellH+m.GapY),
		W: m.CellW,
		H: m.CellH,
	}
}

// Bounds returns the rectangle covering every cell.
func (g *Grid) Bounds() (core.Rect, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.valid || g.rows == 0 || g.cols == 0 {
		return core.Rect{}, false
	}
	first := g.cellRect(0, 0)
	last := g.cellRect(g.rows-1, g.cols-1)
	return core.Rect{X: first.X, Y: first.Y, W: last.MaxX() - first.X, H: last.MaxY() - first.Y}, true
}

// CellAt returns the cell under p, if any. Points in a gap hit nothing.
func (g *Grid) CellAt(p core.Point) (board.CellID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.valid {
		return 0, false
	}
	m := g.metrics
	col := int((p.X - m.Origin.X) / (m.CellW + m.GapX))
	row := int((p.Y - m.Origin.Y) / (m.CellH + m.GapY))
	if p.X < m.Origin.X || p.Y < m.Origin.Y || row >= g.rows || col >= g.cols {
		return 0, false
	}
	if !g.cellRect(row, col).Contains(p) {
		return 0, false
	}
	return board.CellID(row*g.cols + col), true
}
