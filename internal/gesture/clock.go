package gesture

import "time"

// Clock supplies the current time to the state machine. Injecting it keeps
// the priming and cooldown windows deterministic in tests.
type Clock interface {
	Now() time.Time
}

// systemClock is the wall-clock implementation used outside tests.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
