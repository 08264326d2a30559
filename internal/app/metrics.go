package app

import (
	"tens/internal/core"
	"tens/internal/layout"
	"tens/internal/ui"
)

// Metrics places a board of cell-sized squares separated by gap below the
// HUD panel.
func Metrics(cell, gap float64) layout.Metrics {
	return layout.Metrics{
		Origin: core.Point{X: 2 * gap, Y: ui.HUDHeight + 2*gap},
		CellW:  cell,
		CellH:  cell,
		GapX:   gap,
		GapY:   gap,
	}
}

// ScreenSize returns the logical screen size that fits the HUD and the board
// placed on grid, with the left margin repeated on the right and a two-gap
// margin below. An unplaced grid yields zero.
func ScreenSize(grid *layout.Grid) (int, int) {
	m, ok := grid.Metrics()
	bounds, placed := grid.Bounds()
	if !ok || !placed {
		return 0, 0
	}
	w := bounds.MaxX() + m.Origin.X
	h := bounds.MaxY() + 2*m.GapY
	return int(w + 0.5), int(h + 0.5)
}
