//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"tens/internal/session"
)

// HUD renders the score panel above the board.
type HUD struct {
	width int
	reset Button
	face  font.Face
}

// NewHUD constructs a HUD spanning the given width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, reset: ResetButton(width), face: basicfont.Face7x13}
}

// ResetHit reports whether a click at x, y lands on the reset button.
func (h *HUD) ResetHit(x, y int) bool {
	if h == nil {
		return false
	}
	return h.reset.Hit(x, y)
}

// Draw paints the panel for snap.
func (h *HUD) Draw(screen *ebiten.Image, snap session.Snapshot, soundOn bool) {
	if h == nil || h.width <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), HUDHeight, color.RGBA{R: 24, G: 24, B: 30, A: 255}, false)

	first, second := StatusLines(snap, soundOn)
	text.Draw(screen, first, h.face, panelPadding, lineOne, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	if second != "" {
		text.Draw(screen, second, h.face, panelPadding, lineTwo, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	h.drawButton(screen, h.reset)
}

func (h *HUD) drawButton(screen *ebiten.Image, b Button) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{R: 54, G: 56, B: 64, A: 255}, true)
	bounds := text.BoundString(h.face, b.Label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, b.Label, h.face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
