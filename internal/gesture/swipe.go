package gesture

import "math"

// Event is the outcome of one detection step.
type Event int

const (
	// EventNone means no page turn this frame.
	EventNone Event = iota
	// EventLeft is a leftward sweep (advance to the next spread).
	EventLeft
	// EventRight is a rightward sweep (back to the previous spread).
	EventRight
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	default:
		return "none"
	}
}

// directionVotes counts frame-to-frame steps larger than the noise floor in
// each direction. Steps inside the floor are jitter and carry no vote.
func directionVotes(positions []float64, noiseFloor float64) (right, left int) {
	for i := 1; i < len(positions); i++ {
		diff := positions[i] - positions[i-1]
		switch {
		case diff > noiseFloor:
			right++
		case diff < -noiseFloor:
			left++
		}
	}
	return right, left
}

// classifySwipe decides whether the accumulated finger and thumb motion
// qualifies as a swipe. Net displacement alone is unreliable under jitter, so
// three independent signals must agree:
//
//  1. the finger's net displacement clears the per-direction threshold,
//  2. the dominant-direction vote ratio clears the consistency requirement
//     (relaxed for fast swipes), and
//  3. the thumb voted the same way, which rejects single-digit twitches.
//
// Right is checked before left. Returns EventNone when either stream produced
// no directional votes at all.
func classifySwipe(finger, thumb []float64, cfg Config) Event {
	if len(finger) == 0 || len(thumb) == 0 {
		return EventNone
	}

	movement := finger[len(finger)-1] - finger[0]

	fingerRight, fingerLeft := directionVotes(finger, cfg.NoiseFloor)
	thumbRight, thumbLeft := directionVotes(thumb, cfg.NoiseFloor)

	fingerTotal := fingerRight + fingerLeft
	thumbTotal := thumbRight + thumbLeft
	if fingerTotal == 0 || thumbTotal == 0 {
		// No net directional signal on one of the tracked points.
		return EventNone
	}

	rightRatio := float64(fingerRight) / float64(fingerTotal)
	leftRatio := float64(fingerLeft) / float64(fingerTotal)
	thumbRightRatio := float64(thumbRight) / float64(thumbTotal)
	thumbLeftRatio := float64(thumbLeft) / float64(thumbTotal)

	agreeRight := rightRatio > cfg.AgreeRight && thumbRightRatio > cfg.AgreeRight
	agreeLeft := leftRatio > cfg.AgreeLeft && thumbLeftRatio > cfg.AgreeLeft

	fast := math.Abs(movement) > cfg.FastSwipeThreshold

	requiredRight := cfg.RightConsistency
	requiredLeft := cfg.LeftConsistency
	if fast {
		requiredRight = cfg.RightConsistencyFast
		requiredLeft = cfg.LeftConsistencyFast
	}

	if movement > cfg.SwipeThresholdRight && rightRatio > requiredRight && agreeRight {
		return EventRight
	}
	if movement < -cfg.SwipeThresholdLeft && leftRatio > requiredLeft && agreeLeft {
		return EventLeft
	}
	return EventNone
}
