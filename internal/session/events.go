package session

import "tens/internal/board"

// EventType names what happened to the session.
type EventType string

const (
	// EventCleared fires when a drag clears cells.
	EventCleared EventType = "cleared"
	// EventMissed fires when a drag over active cells does not sum to ten.
	EventMissed EventType = "missed"
	// EventReset fires after a new generation is dealt.
	EventReset EventType = "reset"
	// EventTicked fires after the elapsed-time counter advances.
	EventTicked EventType = "ticked"
)

// Event carries the session state right after the change.
type Event struct {
	Type    EventType
	Outcome board.Outcome
	Score   int
	Elapsed int
}

// Listener receives session events in the order the changes happened.
// Listeners run after the session lock is released and may call back into the
// session; events those calls cause arrive after the current event has reached
// every listener.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// notify fans events out to listeners in subscription order.
func notify(listeners []Listener, events ...Event) {
	for _, e := range events {
		for _, l := range listeners {
			l.OnEvent(e)
		}
	}
}
