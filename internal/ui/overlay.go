//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tens/internal/board"
	"tens/internal/core"
	"tens/internal/render"
	"tens/internal/session"
)

const (
	selectionStroke = 2
	hintStroke      = 2
	hoverStroke     = 1
)

// Overlay draws the drag rectangle and the hint outline on top of the board.
type Overlay struct {
	layout board.LayoutProvider
}

// NewOverlay constructs an overlay for cells placed by layout.
func NewOverlay(layout board.LayoutProvider) *Overlay {
	return &Overlay{layout: layout}
}

// Draw renders the overlay for snap. hint and hover may be empty.
func (o *Overlay) Draw(screen *ebiten.Image, snap session.Snapshot, hint, hover board.IDs) {
	if bounds, ok := o.bounds(hover); ok {
		render.StrokeRect(screen, bounds.Inset(-2), hoverStroke, render.Text)
	}
	if bounds, ok := o.bounds(hint); ok {
		render.StrokeRect(screen, bounds.Inset(-3), hintStroke, render.Blue)
	}
	if !snap.HasSelection || snap.Selection.Empty() {
		return
	}
	render.FillRect(screen, snap.Selection, render.SelectionFill())
	render.StrokeRect(screen, snap.Selection, selectionStroke, render.Blue)
}

// bounds returns the rectangle spanning every placed cell in ids.
func (o *Overlay) bounds(ids board.IDs) (core.Rect, bool) {
	var (
		lo, hi core.Point
		found  bool
	)
	for _, id := range ids {
		r, ok := o.layout.Rect(id)
		if !ok {
			continue
		}
		if !found {
			lo, hi = core.Point{X: r.X, Y: r.Y}, core.Point{X: r.MaxX(), Y: r.MaxY()}
			found = true
			continue
		}
		lo.X, lo.Y = min(lo.X, r.X), min(lo.Y, r.Y)
		hi.X, hi.Y = max(hi.X, r.MaxX()), max(hi.Y, r.MaxY())
	}
	if !found {
		return core.Rect{}, false
	}
	return core.RectFromPoints(lo, hi), true
}
