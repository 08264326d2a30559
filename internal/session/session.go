// Package session drives one game of Tens: drag gestures in, cleared cells,
// score and elapsed time out. A Session is safe for concurrent use; every
// input is applied under one lock, in arrival order.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tens/internal/autoplay"
	"tens/internal/board"
	"tens/internal/core"
)

// State is the drag state of a session.
type State uint8

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means a drag is open and the selection follows the pointer.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of everything a presentation layer needs to draw a frame.
type Snapshot struct {
	State        State
	Score        int
	Elapsed      int
	Generation   int
	Selection    core.Rect
	HasSelection bool
	Highlighted  board.IDs
	SelectionSum int
	Cells        []board.Cell
	Active       int
	// Stuck is true when no rectangle on the board sums to ten.
	Stuck bool
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes grid generation deterministic. Each reset draws the next
// grid from the same stream.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = core.NewRNG(seed) }
}

// WithTickInterval sets the real-time length of one elapsed-time unit.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.ticker = core.NewTicker(d) }
}

// WithLogger routes session logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithListener subscribes l to session events.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// Session owns the grid, the score and the elapsed-time counter.
type Session struct {
	mu sync.Mutex

	reg       *board.Registry
	layout    board.LayoutProvider
	rng       *core.RNG
	ticker    *core.Ticker
	logger    *log.Logger
	listeners []Listener
	pending   []Event
	notifying bool

	state       State
	anchor      core.Point
	selection   core.Rect
	highlighted board.IDs

	score      int
	elapsed    int
	generation int
	active     bool
}

// New deals the first grid. The elapsed-time counter only advances through
// Tick until Start is called.
func New(layout board.LayoutProvider, opts ...Option) *Session {
	s := &Session{
		reg:    board.NewRegistry(),
		layout: layout,
		rng:    core.NewRNG(time.Now().UnixNano()),
		ticker: core.NewTicker(time.Second),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session")
	s.mu.Lock()
	s.resetLocked(nil)
	s.mu.Unlock()
	return s
}

// Subscribe adds a listener for session events.
func (s *Session) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// queueLocked records events in the order the state changes happened.
func (s *Session) queueLocked(events ...Event) {
	s.pending = append(s.pending, events...)
}

// flush delivers queued events outside the lock. One goroutine delivers at a
// time and drains everything queued meanwhile; the others return at once.
func (s *Session) flush() {
	s.mu.Lock()
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	for len(s.pending) > 0 {
		batch := s.pending
		s.pending = nil
		ls := slices.Clone(s.listeners)
		s.mu.Unlock()
		notify(ls, batch...)
		s.mu.Lock()
	}
	s.notifying = false
	s.mu.Unlock()
}

// Start advances the elapsed-time counter once per tick interval on a
// background goroutine until Stop.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticker.Start(s.tickFunc(s.generation))
}

// Stop halts the clock and ends the session; Tick becomes a no-op until the
// next Reset. Automatic ticking stays off until Start is called again.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.ticker.Stop()
}

func (s *Session) tickFunc(generation int) func() {
	return func() { s.advance(generation) }
}

// advance is the ticker callback. A tick from before the latest reset is
// dropped so it never counts toward the new game.
func (s *Session) advance(generation int) {
	s.mu.Lock()
	if generation != s.generation || !s.ticker.Running() {
		s.mu.Unlock()
		return
	}
	s.tickLocked()
	s.mu.Unlock()
	s.flush()
}

// Tick advances the elapsed-time counter by one unit.
func (s *Session) Tick() {
	s.mu.Lock()
	s.tickLocked()
	s.mu.Unlock()
	s.flush()
}

func (s *Session) tickLocked() {
	if !s.active {
		return
	}
	s.elapsed++
	s.queueLocked(Event{Type: EventTicked, Score: s.score, Elapsed: s.elapsed})
}

// Reset deals a new grid, zeroes score and time and restarts the clock.
// It may be called in any state and abandons an open drag.
func (s *Session) Reset() {
	s.mu.Lock()
	s.resetLocked(nil)
	s.queueLocked(Event{Type: EventReset})
	s.mu.Unlock()
	s.flush()
}

// Load resets the session onto a known grid, given row-major. It is used by
// tests and replays.
func (s *Session) Load(values []uint8) {
	s.mu.Lock()
	s.resetLocked(values)
	s.queueLocked(Event{Type: EventReset})
	s.mu.Unlock()
	s.flush()
}

func (s *Session) resetLocked(values []uint8) {
	s.clearSelectionLocked()
	if values == nil {
		s.reg.CreateGrid(s.rng)
	} else {
		s.reg.Load(values)
	}
	s.score = 0
	s.elapsed = 0
	s.generation++
	s.active = true
	if s.ticker.Running() {
		s.ticker.Start(s.tickFunc(s.generation))
	}
	s.logger.Debug("new grid", "generation", s.generation, "active", s.reg.Active())
}

func (s *Session) clearSelectionLocked() {
	s.state = Idle
	s.anchor = core.Point{}
	s.selection = core.Rect{}
	s.highlighted = nil
}

func (s *Session) selectLocked(p core.Point) {
	s.selection = core.RectFromPoints(s.anchor, p)
	s.highlighted = board.Select(s.selection, s.reg, s.layout)
}

// DragStart opens a drag at p. An open drag is abandoned first.
func (s *Session) DragStart(p core.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Dragging
	s.anchor = p
	s.selectLocked(p)
}

// DragMove updates the live selection. It never changes the grid.
func (s *Session) DragMove(p core.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Dragging {
		return
	}
	s.selectLocked(p)
}

// DragEnd closes the drag released at p. The selection scored is the one
// last shown by DragStart or DragMove, so the player clears exactly what was
// highlighted; front ends that want the release point counted move there
// first. If it sums to ten the cells are cleared and their count added to the
// score. The selection is dropped either way. Without an open drag DragEnd
// does nothing.
func (s *Session) DragEnd(p core.Point) board.Outcome {
	s.mu.Lock()
	if s.state != Dragging {
		s.mu.Unlock()
		return board.Outcome{}
	}
	selected := s.highlighted
	out := board.Evaluate(selected, s.reg)
	s.score += board.Apply(out, s.reg)
	s.clearSelectionLocked()

	switch {
	case out.Qualified():
		s.logger.Debug("cleared", "cells", out.Cleared, "delta", out.ScoreDelta, "score", s.score, "at", p)
		s.queueLocked(Event{Type: EventCleared, Outcome: out, Score: s.score, Elapsed: s.elapsed})
	case len(selected) > 0:
		s.queueLocked(Event{Type: EventMissed, Outcome: out, Score: s.score, Elapsed: s.elapsed})
	}
	s.mu.Unlock()
	s.flush()
	return out
}

// CancelDrag drops an open drag without scoring it.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSelectionLocked()
}

// Hint returns the best clearing move on the current grid.
func (s *Session) Hint() (autoplay.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return autoplay.FindMove(s.reg)
}

// DragFor returns start and end points that select exactly m under the
// session's layout.
func (s *Session) DragFor(m autoplay.Move) (core.Point, core.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return m.Drag(s.reg, s.layout)
}

// Score returns the running score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Elapsed returns the elapsed-time counter.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Snapshot copies the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:        s.state,
		Score:        s.score,
		Elapsed:      s.elapsed,
		Generation:   s.generation,
		HasSelection: s.state == Dragging,
		Highlighted:  slices.Clone(s.highlighted),
		SelectionSum: s.reg.Sum(s.highlighted),
		Cells:        s.reg.Cells(),
		Active:       s.reg.Active(),
		Stuck:        !autoplay.HasMove(s.reg),
	}
	if snap.HasSelection {
		snap.Selection = s.selection
	}
	return snap
}
