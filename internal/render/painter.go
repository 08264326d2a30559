//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"tens/internal/board"
	"tens/internal/core"
)

const borderWidth = 1

// BoardPainter draws the cells of a board at their laid-out rectangles.
type BoardPainter struct {
	face font.Face
}

// NewBoardPainter returns a painter using the built-in bitmap font.
func NewBoardPainter() *BoardPainter {
	return &BoardPainter{face: basicfont.Face7x13}
}

// Draw paints every visible cell. Cells the layout cannot place are skipped.
func (bp *BoardPainter) Draw(dst *ebiten.Image, cells []board.Cell, layout board.LayoutProvider, highlighted, hinted board.IDs) {
	for _, c := range cells {
		style := CellStyle(c, highlighted.Contains(c.ID), hinted.Contains(c.ID))
		if !style.Visible {
			continue
		}
		r, ok := layout.Rect(c.ID)
		if !ok || r.Empty() {
			continue
		}
		FillRect(dst, r, style.Fill)
		StrokeRect(dst, r, borderWidth, style.Border)
		bp.label(dst, r, style.Label, Text)
	}
}

func (bp *BoardPainter) label(dst *ebiten.Image, r core.Rect, label string, clr color.Color) {
	bounds := text.BoundString(bp.face, label)
	c := r.Center()
	x := int(c.X) - bounds.Dx()/2
	y := int(c.Y) + bounds.Dy()/2
	text.Draw(dst, label, bp.face, x, y, clr)
}

// FillRect fills r on dst.
func FillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

// StrokeRect outlines r on dst.
func StrokeRect(dst *ebiten.Image, r core.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, true)
}
