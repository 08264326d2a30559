package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tens/internal/board"
	"tens/internal/layout"
	"tens/internal/session"
)

func newModel(t *testing.T, values map[int]uint8) (*Model, *session.Session) {
	t.Helper()
	grid := layout.NewGrid(board.Rows, board.Cols)
	grid.Resize(Metrics())
	sess := session.New(grid, session.WithSeed(7))
	buf := make([]uint8, board.Size)
	for i := range buf {
		buf[i] = 9
	}
	for i, v := range values {
		buf[i] = v
	}
	sess.Load(buf)
	return New(sess, grid, nil), sess
}

// column returns the first and last terminal column of grid column c.
func column(c int) (int, int) {
	x := originX + c*(cellW+gapX)
	return x, x + cellW - 1
}

func line(r int) int { return originY + r*(cellH+gapY) }

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDragAcrossRowClears(t *testing.T) {
	m, sess := newModel(t, map[int]uint8{0: 4, 1: 6})
	x0, _ := column(0)
	_, x1 := column(1)
	y := line(0)

	m.Update(mouse(tea.MouseActionPress, x0, y))
	m.Update(mouse(tea.MouseActionMotion, x1, y))
	if snap := sess.Snapshot(); snap.SelectionSum != 10 || len(snap.Highlighted) != 2 {
		t.Fatalf("while dragging sum=%d highlighted=%v", snap.SelectionSum, snap.Highlighted)
	}
	m.Update(mouse(tea.MouseActionRelease, x1, y))

	snap := sess.Snapshot()
	if snap.Score != 2 {
		t.Fatalf("score = %d, want 2", snap.Score)
	}
	if snap.Cells[0].Active() || snap.Cells[1].Active() || !snap.Cells[2].Active() {
		t.Fatalf("cells after clear: %+v", snap.Cells[:3])
	}
	if m.status != "+2" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestSingleCellClickSelectsOnlyThatCell(t *testing.T) {
	m, sess := newModel(t, nil)
	x, _ := column(3)
	y := line(4)

	m.Update(mouse(tea.MouseActionPress, x, y))
	m.Update(mouse(tea.MouseActionMotion, x, y))
	snap := sess.Snapshot()
	if len(snap.Highlighted) != 1 || snap.Highlighted[0] != board.CellID(4*board.Cols+3) {
		t.Fatalf("highlighted = %v", snap.Highlighted)
	}
	m.Update(mouse(tea.MouseActionRelease, x, y))
	if sess.Score() != 0 {
		t.Fatalf("score = %d", sess.Score())
	}
	if m.status != "9 is not ten" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestReleaseInGapSelectsOnlyCoveredCells(t *testing.T) {
	x0, last0 := column(0)
	x1, _ := column(1)
	gapCol := last0 + 1
	gapRow := line(0) + cellH

	cases := []struct {
		name         string
		fromX, fromY int
		toX, toY     int
		want         board.CellID
	}{
		{"gap column to the right", x0, line(0), gapCol, line(0), 0},
		{"gap row below", x0, line(0), x0, gapRow, 0},
		{"gap column to the left", x1, line(0), gapCol, line(0), 1},
		{"gap row above", x0, line(1), x0, gapRow, board.Cols},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, sess := newModel(t, map[int]uint8{0: 4, 1: 6, board.Cols: 6})
			m.Update(mouse(tea.MouseActionPress, tc.fromX, tc.fromY))
			m.Update(mouse(tea.MouseActionMotion, tc.toX, tc.toY))
			snap := sess.Snapshot()
			if len(snap.Highlighted) != 1 || snap.Highlighted[0] != tc.want {
				t.Fatalf("highlighted = %v, want [%d]", snap.Highlighted, tc.want)
			}
			m.Update(mouse(tea.MouseActionRelease, tc.toX, tc.toY))
			if sess.Score() != 0 {
				t.Fatalf("score = %d, a single cell never sums to ten here", sess.Score())
			}
			if sess.Snapshot().Active != board.Size {
				t.Fatal("a cell was cleared")
			}
		})
	}
}

func TestMotionWithoutPressIsIgnored(t *testing.T) {
	m, sess := newModel(t, nil)
	x, _ := column(0)
	m.Update(mouse(tea.MouseActionMotion, x, line(0)))
	m.Update(mouse(tea.MouseActionRelease, x, line(0)))
	if snap := sess.Snapshot(); snap.State != session.Idle || snap.Score != 0 {
		t.Fatalf("state=%v score=%d", snap.State, snap.Score)
	}
}

func TestEscapeDropsDrag(t *testing.T) {
	m, sess := newModel(t, map[int]uint8{0: 4, 1: 6})
	x0, _ := column(0)
	_, x1 := column(1)
	m.Update(mouse(tea.MouseActionPress, x0, line(0)))
	m.Update(mouse(tea.MouseActionMotion, x1, line(0)))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(mouse(tea.MouseActionRelease, x1, line(0)))

	snap := sess.Snapshot()
	if snap.State != session.Idle || snap.Score != 0 || snap.Active != board.Size {
		t.Fatalf("state=%v score=%d active=%d", snap.State, snap.Score, snap.Active)
	}
}

func TestResetKeyDealsNewGrid(t *testing.T) {
	m, sess := newModel(t, map[int]uint8{0: 4, 1: 6})
	x0, _ := column(0)
	_, x1 := column(1)
	m.Update(mouse(tea.MouseActionPress, x0, line(0)))
	m.Update(mouse(tea.MouseActionRelease, x1, line(0)))
	if sess.Score() != 2 {
		t.Fatalf("score = %d", sess.Score())
	}

	m.Update(runes("r"))
	snap := sess.Snapshot()
	if snap.Score != 0 || snap.Active != board.Size {
		t.Fatalf("after reset score=%d active=%d", snap.Score, snap.Active)
	}
}

func TestHintKeyMarksCells(t *testing.T) {
	m, _ := newModel(t, map[int]uint8{55: 3, 56: 7})
	m.Update(runes("h"))
	if len(m.hint) != 2 || !m.hint.Contains(55) || !m.hint.Contains(56) {
		t.Fatalf("hint = %v", m.hint)
	}
	if !strings.Contains(m.status, "rows 6-6") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newModel(t, nil)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command did not quit")
	}
}

type toggle struct{ on bool }

func (t *toggle) Toggle() bool {
	t.on = !t.on
	return t.on
}

func TestSoundKeyToggles(t *testing.T) {
	m, _ := newModel(t, nil)
	sw := &toggle{on: true}
	m.sound = sw
	m.Update(runes("m"))
	if sw.on || m.status != "sound off" {
		t.Fatalf("on=%v status=%q", sw.on, m.status)
	}
}

func TestViewLayout(t *testing.T) {
	m, _ := newModel(t, map[int]uint8{0: 4, 1: 6})
	x0, _ := column(0)
	_, x1 := column(1)
	m.Update(mouse(tea.MouseActionPress, x0, line(0)))
	m.Update(mouse(tea.MouseActionRelease, x1, line(0)))

	view := m.View()
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "Score: 2") {
		t.Fatalf("header = %q", lines[0])
	}
	if want := originY + board.Rows*(cellH+gapY) - gapY + 2; len(lines) != want {
		t.Fatalf("view has %d lines, want %d", len(lines), want)
	}
	if !strings.Contains(lines[line(9)], "9") {
		t.Fatalf("last grid row = %q", lines[line(9)])
	}
}
