// Package gesture turns per-frame hand and face landmarks into debounced
// page-turn events. A swipe only counts after the reader "licks" a finger:
// either the finger-lick pose or the fingertip touching the lip zone arms
// detection for a few seconds, and the following horizontal sweep is
// classified as a left or right page turn.
package gesture

import "time"

// Config holds every numeric threshold used by the detector. All values are
// set at construction time; the zero value is not usable, start from
// DefaultConfig.
type Config struct {
	// SwipeThresholdLeft is the minimum leftward net displacement for a
	// left swipe. Deliberately smaller than the right threshold: the
	// capture setup shows a directional bias and left swipes get the more
	// sensitive treatment.
	SwipeThresholdLeft float64

	// SwipeThresholdRight is the minimum rightward net displacement for a
	// right swipe.
	SwipeThresholdRight float64

	// FastSwipeThreshold is the net displacement beyond which a swipe is
	// considered fast and gets the relaxed consistency requirements.
	FastSwipeThreshold float64

	// NoiseFloor is the minimum frame-to-frame delta that counts as a
	// directional vote. Smaller steps are jitter and are ignored.
	NoiseFloor float64

	// MinFrames is the minimum number of tracked frames before a swipe
	// may be classified.
	MinFrames int

	// MaxFrames is the number of tracked frames after which an unfinished
	// gesture is discarded as too slow.
	MaxFrames int

	// MinSamples is the minimum number of positions both histories must
	// hold before classification is attempted.
	MinSamples int

	// HistorySize is the capacity of each position history ring.
	HistorySize int

	// Cooldown is the minimum time between emitted swipes.
	Cooldown time.Duration

	// PrimingTimeout is how long a finger lick stays valid. After this
	// the reader must lick again before a swipe is accepted.
	PrimingTimeout time.Duration

	// LipRadius is the lip-zone radius in normalized coordinates.
	LipRadius float64

	// PoseMargin is the vertical margin (normalized) by which the index
	// tip must clear the other fingertips and its own middle joint in the
	// lick pose.
	PoseMargin float64

	// TopRegion is the fraction of the frame, from the top, in which the
	// index tip must sit for the lick pose (mouth level).
	TopRegion float64

	// RightConsistency and LeftConsistency are the required dominant-vote
	// ratios for slow swipes; the Fast variants apply above
	// FastSwipeThreshold.
	RightConsistency     float64
	RightConsistencyFast float64
	LeftConsistency      float64
	LeftConsistencyFast  float64

	// AgreeRight and AgreeLeft are the vote ratios both the finger and
	// the thumb must exceed for cross-point agreement.
	AgreeRight float64
	AgreeLeft  float64
}

// DefaultConfig returns the tuned thresholds. The left/right asymmetry is
// intentional and compensates for an observed directional bias.
func DefaultConfig() Config {
	return Config{
		SwipeThresholdLeft:   0.10,
		SwipeThresholdRight:  0.12,
		FastSwipeThreshold:   0.20,
		NoiseFloor:           0.01,
		MinFrames:            3,
		MaxFrames:            25,
		MinSamples:           5,
		HistorySize:          15,
		Cooldown:             1500 * time.Millisecond,
		PrimingTimeout:       5 * time.Second,
		LipRadius:            0.08,
		PoseMargin:           0.05,
		TopRegion:            0.5,
		RightConsistency:     0.6,
		RightConsistencyFast: 0.5,
		LeftConsistency:      0.55,
		LeftConsistencyFast:  0.45,
		AgreeRight:           0.5,
		AgreeLeft:            0.45,
	}
}
