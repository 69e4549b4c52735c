package detector

import "gocv.io/x/gocv"

// Detector defines the interface for landmark detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the detected hand and
	// face landmarks. Missing observations are reported as an empty hand
	// slice and a nil face, never as an error.
	Detect(frame *gocv.Mat) (*Result, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for landmark detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect (default: 1).
	MaxHands int

	// MinHandConfidence is the minimum hand detection confidence (0.0-1.0).
	MinHandConfidence float64

	// MinFaceConfidence is the minimum face detection confidence (0.0-1.0).
	MinFaceConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with the reference tuning: a single hand at
// high confidence, faces accepted a little more loosely.
func DefaultConfig() Config {
	return Config{
		MaxHands:          1,
		MinHandConfidence: 0.7,
		MinFaceConfidence: 0.5,
		MinTrackingConf:   0.5,
	}
}
