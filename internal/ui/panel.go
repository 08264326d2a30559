package ui

import (
	"fmt"
	"image"

	"tens/internal/session"
)

// Panel geometry in logical pixels.
const (
	HUDHeight    = 40
	panelPadding = 8
	lineOne      = 16
	lineTwo      = 32
	buttonWidth  = 64
	buttonHeight = 24
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect  image.Rectangle
	Label string
}

// Hit reports whether the point lies on the button.
func (b Button) Hit(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// ResetButton places the reset button at the right edge of a panel of the
// given width.
func ResetButton(width int) Button {
	top := (HUDHeight - buttonHeight) / 2
	right := width - panelPadding
	return Button{
		Rect:  image.Rect(right-buttonWidth, top, right, top+buttonHeight),
		Label: "Reset",
	}
}

// StatusLines formats the two HUD text lines for a frame.
func StatusLines(snap session.Snapshot, soundOn bool) (string, string) {
	first := fmt.Sprintf("Score %d   Time %ds", snap.Score, snap.Elapsed)
	switch {
	case snap.State == session.Dragging && len(snap.Highlighted) > 0:
		return first, fmt.Sprintf("Sum %d", snap.SelectionSum)
	case snap.Stuck:
		return first, "No moves left, press R"
	case !soundOn:
		return first, "Sound off"
	default:
		return first, ""
	}
}
