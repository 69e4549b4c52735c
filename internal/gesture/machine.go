package gesture

import (
	"log"
	"time"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
)

// State summarizes the machine for display purposes. It is derived from the
// underlying timers on demand, never stored: priming validity and cooldown
// run on independent timestamps and can overlap.
type State int

const (
	// StateIdle means no priming is active.
	StateIdle State = iota
	// StatePrimed means a finger lick is active and a swipe will be accepted.
	StatePrimed
	// StateTracking means a candidate swipe is accumulating evidence.
	StateTracking
	// StateCooldown means a swipe was just emitted and further swipes are
	// suppressed.
	StateCooldown
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePrimed:
		return "primed"
	case StateTracking:
		return "tracking"
	case StateCooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// Status is a structured snapshot for the overlay and the status server.
type Status struct {
	State             State         `json:"state"`
	Primed            bool          `json:"primed"`
	ActivelyPriming   bool          `json:"actively_priming"`
	PrimingRemaining  time.Duration `json:"priming_remaining"`
	CooldownRemaining time.Duration `json:"cooldown_remaining"`
}

// Machine is the per-frame gesture state machine. It owns the position
// histories and the priming/cooldown timers and must be stepped from a single
// goroutine, once per captured frame.
type Machine struct {
	cfg   Config
	clock Clock

	fingerHist *PositionHistory
	thumbHist  *PositionHistory

	primed    bool
	primedAt  time.Time
	atLips    bool // fingertip was at the lips last frame
	lastSwipe time.Time

	tracking bool
	startX   float64
	frames   int

	lipZone *LipZone // zone derived from the most recent face observation
}

// NewMachine creates a machine with the given thresholds. A nil clock means
// the system clock.
func NewMachine(cfg Config, clock Clock) *Machine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Machine{
		cfg:        cfg,
		clock:      clock,
		fingerHist: NewPositionHistory(cfg.HistorySize),
		thumbHist:  NewPositionHistory(cfg.HistorySize),
	}
}

// Step advances the machine by one frame and returns at most one event.
// Both observations are optional; a missing hand clears any in-flight swipe
// tracking but never clears priming, which expires only by its own timeout or
// by being consumed.
func (m *Machine) Step(hand *detector.HandLandmarks, face *detector.FaceLandmarks) Event {
	now := m.clock.Now()

	if m.primed && now.Sub(m.primedAt) > m.cfg.PrimingTimeout {
		m.primed = false
		log.Printf("Finger lick expired after %s", m.cfg.PrimingTimeout)
	}

	if face != nil {
		m.lipZone = LipZoneFrom(face, m.cfg.LipRadius)
	} else {
		m.lipZone = nil
	}

	if hand == nil {
		m.resetTracking()
		return EventNone
	}

	currentlyPriming := isPriming(hand, m.lipZone, m.cfg)
	if currentlyPriming {
		m.atLips = true
		if !m.primed {
			m.primed = true
			m.primedAt = now
			// A fresh lick is explicit intent: waive any active
			// cooldown so the next swipe registers immediately.
			m.lastSwipe = time.Time{}
			log.Printf("Finger licked, ready to turn page for %s", m.cfg.PrimingTimeout)
		}
	} else if m.atLips && m.primed {
		// Just left the lips; the overlay switches from "priming" to
		// "swipe now". No effect on the timers.
		m.atLips = false
	}

	if m.primed && !currentlyPriming {
		return m.trackSwipe(hand, now)
	}

	m.resetTracking()
	return EventNone
}

// trackSwipe accumulates one frame of motion evidence and classifies the
// histories once enough has been seen.
func (m *Machine) trackSwipe(hand *detector.HandLandmarks, now time.Time) Event {
	m.fingerHist.Push(hand.Points[detector.MiddleTip].X)
	m.thumbHist.Push(hand.Points[detector.ThumbTip].X)

	if !m.tracking {
		m.tracking = true
		m.startX = hand.Points[detector.MiddleTip].X
		m.frames = 0
		return EventNone
	}
	m.frames++

	if now.Sub(m.lastSwipe) <= m.cfg.Cooldown {
		// Cooldown outranks accumulated evidence.
		m.resetTracking()
		return EventNone
	}

	if m.frames >= m.cfg.MinFrames &&
		m.fingerHist.Len() >= m.cfg.MinSamples &&
		m.thumbHist.Len() >= m.cfg.MinSamples {
		if ev := classifySwipe(m.fingerHist.Values(), m.thumbHist.Values(), m.cfg); ev != EventNone {
			movement := m.fingerHist.Last() - m.fingerHist.First()
			m.lastSwipe = now
			m.primed = false // a swipe consumes the lick
			m.resetTracking()
			log.Printf("Swipe %s (movement %.3f)", ev, movement)
			return ev
		}
	}

	if m.frames > m.cfg.MaxFrames {
		// Gesture took too long, discard the evidence.
		m.resetTracking()
	}
	return EventNone
}

// resetTracking clears the in-flight swipe state. Priming and cooldown
// timestamps are untouched.
func (m *Machine) resetTracking() {
	m.tracking = false
	m.frames = 0
	m.startX = 0
	m.fingerHist.Clear()
	m.thumbHist.Clear()
}

// Reset returns the machine to its initial state, clearing priming, cooldown
// and tracking.
func (m *Machine) Reset() {
	m.resetTracking()
	m.primed = false
	m.atLips = false
	m.lastSwipe = time.Time{}
	m.lipZone = nil
}

// LipZone returns the zone derived from the most recent face observation, or
// nil. Used by the overlay.
func (m *Machine) LipZone() *LipZone {
	return m.lipZone
}

// Status reports the current machine state for the overlay and status server.
func (m *Machine) Status() Status {
	now := m.clock.Now()

	s := Status{
		Primed:          m.primed,
		ActivelyPriming: m.primed && m.atLips,
	}

	if m.primed {
		if remaining := m.cfg.PrimingTimeout - now.Sub(m.primedAt); remaining > 0 {
			s.PrimingRemaining = remaining
		}
	}
	if !m.lastSwipe.IsZero() {
		if remaining := m.cfg.Cooldown - now.Sub(m.lastSwipe); remaining > 0 {
			s.CooldownRemaining = remaining
		}
	}

	switch {
	case s.CooldownRemaining > 0:
		s.State = StateCooldown
	case m.tracking:
		s.State = StateTracking
	case m.primed:
		s.State = StatePrimed
	default:
		s.State = StateIdle
	}
	return s
}
