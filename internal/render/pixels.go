package render

import (
	"image/color"
	"math"
	"strconv"

	"tens/internal/board"
)

var (
	// Yellow is the cell colour; fills use it at reduced alpha.
	Yellow = color.RGBA{R: 241, G: 196, B: 15, A: 255}
	// Blue is the selection and hint colour.
	Blue = color.RGBA{R: 52, G: 152, B: 219, A: 255}
	// Background is the board colour behind the cells.
	Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	// Text is the digit colour.
	Text = color.RGBA{R: 235, G: 235, B: 240, A: 255}
)

const (
	idleAlpha      = 0.2
	highlightAlpha = 0.5
	hintAlpha      = 0.35
	selectionAlpha = 0.3
)

// Style describes how a single cell is painted.
type Style struct {
	Visible bool
	Fill    color.RGBA
	Border  color.RGBA
	Label   string
}

// CellStyle picks the style for c. Cleared cells are not drawn at all.
func CellStyle(c board.Cell, highlighted, hinted bool) Style {
	if !c.Active() {
		return Style{}
	}
	s := Style{
		Visible: true,
		Fill:    Fade(Yellow, idleAlpha),
		Border:  Yellow,
		Label:   strconv.Itoa(int(c.Value)),
	}
	switch {
	case highlighted:
		s.Fill = Fade(Yellow, highlightAlpha)
	case hinted:
		s.Fill = Fade(Blue, hintAlpha)
		s.Border = Blue
	}
	return s
}

// SelectionFill is the translucent fill of the drag rectangle.
func SelectionFill() color.RGBA { return Fade(Blue, selectionAlpha) }

// Fade scales every component of c by alpha, keeping the colour
// alpha-premultiplied as image/color expects.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: scaleComponent(c.R, alpha),
		G: scaleComponent(c.G, alpha),
		B: scaleComponent(c.B, alpha),
		A: scaleComponent(c.A, alpha),
	}
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
