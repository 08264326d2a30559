// Package sfx plays short sound cues for session events.
package sfx

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"tens/internal/session"
)

const sampleRate = beep.SampleRate(44100)

const (
	chimeBase = 523.25 // C5
	chimeStep = 1.122  // roughly a whole tone
	noteLen   = 60 * time.Millisecond
	noteGap   = 15 * time.Millisecond
	buzzFreq  = 110
	buzzLen   = 150 * time.Millisecond
	maxNotes  = 8
)

// Player turns session events into sound. A Player that failed to open the
// speaker, or was built disabled, stays silent.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
	logger      *log.Logger

	// The audio device. Tests swap these out.
	open  func(beep.SampleRate, int) error
	play  func(...beep.Streamer)
	close func()
}

// New returns a player. Call Init before expecting sound.
func New(enabled bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		enabled: enabled,
		mixer:   &beep.Mixer{},
		logger:  logger.WithPrefix("sfx"),
		open:    speaker.Init,
		play:    speaker.Play,
		close:   speaker.Close,
	}
}

// Init opens the speaker. Failure leaves the player silent and is returned
// for logging; it is never fatal to the game.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.initialized {
		return nil
	}
	if err := p.open(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		return err
	}
	p.play(p.mixer)
	p.initialized = true
	return nil
}

// Toggle flips sound on or off and reports the new state.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Close silences everything still queued and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.close()
	p.initialized = false
}

// OnEvent implements session.Listener.
func (p *Player) OnEvent(e session.Event) {
	var s beep.Streamer
	switch e.Type {
	case session.EventCleared:
		s = Chime(sampleRate, e.Outcome.ScoreDelta)
	case session.EventMissed:
		s = Buzz(sampleRate)
	default:
		return
	}
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Chime is a rising run with one note per cleared cell, capped at maxNotes.
func Chime(sr beep.SampleRate, cells int) beep.Streamer {
	if cells <= 0 {
		return nil
	}
	n := min(cells, maxNotes)
	parts := make([]beep.Streamer, 0, 2*n)
	freq := chimeBase
	for i := 0; i < n; i++ {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			break
		}
		parts = append(parts, beep.Take(sr.N(noteLen), tone), beep.Silence(sr.N(noteGap)))
		freq *= chimeStep
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// Buzz is a short low tone for a drag that did not sum to ten.
func Buzz(sr beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(sr, buzzFreq)
	if err != nil {
		return nil
	}
	return beep.Take(sr.N(buzzLen), tone)
}
