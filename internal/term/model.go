// Package term is the terminal front end: a bubbletea program that turns
// mouse drags into session input and renders the grid with lipgloss.
package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tens/internal/board"
	"tens/internal/core"
	"tens/internal/layout"
	"tens/internal/session"
)

// Grid placement in terminal cells. Each grid cell is three characters wide
// and one line high, with one blank column and one blank line between cells.
const (
	originX = 2
	originY = 3
	cellW   = 3
	cellH   = 1
	gapX    = 1
	gapY    = 1
)

var (
	colorYellow    = lipgloss.Color("#f1c40f")
	colorDimYellow = lipgloss.Color("#3d3712")
	colorHighlight = lipgloss.Color("#b7950b")
	colorHint      = lipgloss.Color("#2e86c1")
	colorMuted     = lipgloss.Color("#7f8c8d")

	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleStatus    = lipgloss.NewStyle().Foreground(colorMuted)
	styleCell      = lipgloss.NewStyle().Foreground(colorYellow).Background(colorDimYellow)
	styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(colorHighlight).Bold(true)
	styleHint      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(colorHint)
)

// Metrics is where the terminal view draws the grid.
func Metrics() layout.Metrics {
	return layout.Metrics{
		Origin: core.Point{X: originX, Y: originY},
		CellW:  cellW,
		CellH:  cellH,
		GapX:   gapX,
		GapY:   gapY,
	}
}

// EventMsg carries a session event into the bubbletea loop.
type EventMsg session.Event

// Forward returns a session listener that re-renders p on every event.
// Sends run on their own goroutine because the session may emit from inside
// Update, where a blocking Send would deadlock the program.
func Forward(p *tea.Program) session.Listener {
	return session.ListenerFunc(func(e session.Event) {
		go p.Send(EventMsg(e))
	})
}

// Toggler switches an optional feature on and off.
type Toggler interface {
	Toggle() bool
}

// Model is the bubbletea model for one terminal game.
type Model struct {
	sess  *session.Session
	grid  *layout.Grid
	keys  KeyMap
	help  help.Model
	sound Toggler

	anchorX, anchorY int
	dragging         bool
	hint             board.IDs
	status           string
	width, height    int
}

// New builds the model and places grid at the terminal metrics.
func New(sess *session.Session, grid *layout.Grid, sound Toggler) *Model {
	grid.Resize(Metrics())
	return &Model{
		sess:  sess,
		grid:  grid,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		sound: sound,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.grid.Invalidate()
		m.grid.Resize(Metrics())
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.dragging = false
			m.hint = nil
			m.status = ""
			m.sess.Reset()
		case key.Matches(msg, m.keys.Cancel):
			m.dragging = false
			m.sess.CancelDrag()
		case key.Matches(msg, m.keys.Hint):
			if mv, ok := m.sess.Hint(); ok {
				m.hint = mv.Cells
				m.status = fmt.Sprintf("try rows %d-%d, columns %d-%d", mv.Top+1, mv.Bottom+1, mv.Left+1, mv.Right+1)
			} else {
				m.hint = nil
				m.status = "no move left"
			}
		case key.Matches(msg, m.keys.Sound):
			if m.sound != nil {
				if m.sound.Toggle() {
					m.status = "sound on"
				} else {
					m.status = "sound off"
				}
			}
		}
	case EventMsg:
		// Session state changed off the input path; the view re-reads it.
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.anchorX, m.anchorY = msg.X, msg.Y
		m.dragging = true
		m.hint = nil
		m.sess.DragStart(core.AnchorPoint(msg.X, msg.Y))
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.sess.DragMove(core.ReachPoint(m.anchorX, m.anchorY, msg.X, msg.Y))
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		p := core.ReachPoint(m.anchorX, m.anchorY, msg.X, msg.Y)
		m.sess.DragMove(p)
		out := m.sess.DragEnd(p)
		switch {
		case out.Qualified():
			m.status = fmt.Sprintf("+%d", out.ScoreDelta)
		case out.Sum > 0:
			m.status = fmt.Sprintf("%d is not ten", out.Sum)
		default:
			m.status = ""
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.sess.Snapshot()
	margin := strings.Repeat(" ", originX)

	lines := make([]string, 0, originY+board.Rows*2+2)
	lines = append(lines, margin+styleHeader.Render(fmt.Sprintf("Score: %d   %ds", snap.Score, snap.Elapsed)))
	lines = append(lines, margin+styleStatus.Render(m.statusLine(snap)))
	for len(lines) < originY {
		lines = append(lines, "")
	}

	for r := 0; r < board.Rows; r++ {
		var b strings.Builder
		b.WriteString(margin)
		for c := 0; c < board.Cols; c++ {
			if c > 0 {
				b.WriteString(strings.Repeat(" ", gapX))
			}
			b.WriteString(m.renderCell(snap, snap.Cells[r*board.Cols+c]))
		}
		lines = append(lines, b.String())
		if r < board.Rows-1 {
			for i := 0; i < gapY; i++ {
				lines = append(lines, "")
			}
		}
	}

	lines = append(lines, "", margin+m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine(snap session.Snapshot) string {
	switch {
	case snap.State == session.Dragging && len(snap.Highlighted) > 0:
		return "sum " + strconv.Itoa(snap.SelectionSum)
	case snap.Stuck:
		return "no rectangle sums to ten, press r for a new grid"
	default:
		return m.status
	}
}

func (m *Model) renderCell(snap session.Snapshot, c board.Cell) string {
	if !c.Active() {
		return strings.Repeat(" ", cellW)
	}
	label := fmt.Sprintf("%*d ", cellW-1, c.Value)
	switch {
	case snap.Highlighted.Contains(c.ID):
		return styleHighlight.Render(label)
	case m.hint.Contains(c.ID):
		return styleHint.Render(label)
	default:
		return styleCell.Render(label)
	}
}
