//go:build ebiten

package app

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tens/internal/board"
	"tens/internal/core"
	"tens/internal/layout"
	"tens/internal/render"
	"tens/internal/session"
	"tens/internal/ui"
)

// Sound is the audio control the game toggles with M.
type Sound interface {
	Toggle() bool
	Enabled() bool
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	grid    *layout.Grid
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	sound   Sound
	logger  *log.Logger

	width, height int
	dragging      bool
	hint          board.IDs
	hover         board.CellID
	hovering      bool
}

// New constructs a Game drawing sess on grid. sound may be nil.
func New(sess *session.Session, grid *layout.Grid, sound Sound, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	w, h := ScreenSize(grid)
	return &Game{
		sess:    sess,
		grid:    grid,
		painter: render.NewBoardPainter(),
		hud:     ui.NewHUD(w),
		overlay: ui.NewOverlay(grid),
		sound:   sound,
		logger:  logger.WithPrefix("app"),
		width:   w,
		height:  h,
	}
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Reset deals a new grid.
func (g *Game) Reset() {
	g.dragging = false
	g.hint = nil
	g.sess.Reset()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		g.logger.Debug("sound toggled", "on", g.sound.Toggle())
	}

	mx, my := ebiten.CursorPosition()
	p := core.Point{X: float64(mx), Y: float64(my)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.hud.ResetHit(mx, my) {
			g.Reset()
			return nil
		}
		g.dragging = true
		g.hint = nil
		g.sess.DragStart(p)
	case g.dragging && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.dragging = false
		g.sess.CancelDrag()
	case g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = false
		g.sess.DragMove(p)
		out := g.sess.DragEnd(p)
		g.logger.Debug("drag ended", "sum", out.Sum, "cleared", len(out.Cleared))
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sess.DragMove(p)
	}
	g.hover, g.hovering = g.grid.CellAt(p)
	if g.dragging {
		g.hovering = false
	}
	return nil
}

func (g *Game) showHint() {
	mv, ok := g.sess.Hint()
	if !ok {
		g.hint = nil
		return
	}
	g.hint = mv.Cells
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sess.Snapshot()
	screen.Fill(render.Background)
	g.painter.Draw(screen, snap.Cells, g.grid, snap.Highlighted, g.hint)
	var hover board.IDs
	if g.hovering && int(g.hover) < len(snap.Cells) && snap.Cells[g.hover].Active() {
		hover = board.IDs{g.hover}
	}
	g.overlay.Draw(screen, snap, g.hint, hover)
	soundOn := g.sound != nil && g.sound.Enabled()
	g.hud.Draw(screen, snap, soundOn)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
