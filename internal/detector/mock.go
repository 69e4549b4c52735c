package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	result *Result
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{result: &Result{}}
}

// SetResult sets the result that will be returned by Detect.
func (m *MockDetector) SetResult(result *Result) {
	m.result = result
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured result or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// LickPoseLandmarks returns a preset hand in the finger-lick pose: index
// finger extended straight up at mouth level, clearly above the other
// fingertips.
func LickPoseLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.70, Z: 0.0}

	// Index finger pointing up, tip in the top half of the frame
	lm.Points[IndexMCP] = Point3D{X: 0.50, Y: 0.48, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.50, Y: 0.34, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.50, Y: 0.30, Z: 0.0}

	// Remaining fingers curled, tips well below the index tip
	lm.Points[MiddleMCP] = Point3D{X: 0.47, Y: 0.50, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.47, Y: 0.48, Z: -0.02}
	lm.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.46, Z: -0.03}
	lm.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.45, Z: -0.02}

	lm.Points[RingMCP] = Point3D{X: 0.44, Y: 0.52, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.50, Z: -0.02}
	lm.Points[RingDIP] = Point3D{X: 0.43, Y: 0.49, Z: -0.03}
	lm.Points[RingTip] = Point3D{X: 0.43, Y: 0.48, Z: -0.02}

	lm.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.54, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.52, Z: -0.02}
	lm.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.51, Z: -0.03}
	lm.Points[PinkyTip] = Point3D{X: 0.40, Y: 0.50, Z: -0.02}

	// Thumb resting against the palm
	lm.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.66, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.62, Z: 0.0}
	lm.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.58, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.55, Z: 0.0}

	return lm
}

// SweepHandLandmarks returns a preset relaxed hand with the middle fingertip
// at the given x. It does not satisfy either priming heuristic, so a series
// of these at increasing or decreasing x simulates a horizontal sweep.
func SweepHandLandmarks(x float64) HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.92,
	}

	lm.Points[Wrist] = Point3D{X: x, Y: 0.78, Z: 0.0}

	// Fingers loosely together at mid frame. The index tip stays level
	// with the others so the lick-pose check cannot fire.
	lm.Points[IndexMCP] = Point3D{X: x + 0.02, Y: 0.62, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: x + 0.02, Y: 0.58, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: x + 0.02, Y: 0.57, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: x + 0.02, Y: 0.56, Z: 0.0}

	lm.Points[MiddleMCP] = Point3D{X: x, Y: 0.62, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: x, Y: 0.58, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: x, Y: 0.56, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: x, Y: 0.55, Z: 0.0}

	lm.Points[RingMCP] = Point3D{X: x - 0.02, Y: 0.62, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: x - 0.02, Y: 0.58, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: x - 0.02, Y: 0.57, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: x - 0.02, Y: 0.56, Z: 0.0}

	lm.Points[PinkyMCP] = Point3D{X: x - 0.04, Y: 0.64, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: x - 0.04, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: x - 0.04, Y: 0.59, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: x - 0.04, Y: 0.58, Z: 0.0}

	// Thumb trailing the fingers
	lm.Points[ThumbCMC] = Point3D{X: x - 0.03, Y: 0.74, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: x - 0.05, Y: 0.70, Z: 0.0}
	lm.Points[ThumbIP] = Point3D{X: x - 0.06, Y: 0.66, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: x - 0.06, Y: 0.63, Z: 0.0}

	return lm
}

// LipsFaceLandmarks returns a preset face with the lip centers at mid frame,
// slightly above center.
func LipsFaceLandmarks() FaceLandmarks {
	return FaceLandmarks{
		UpperLip: Point3D{X: 0.50, Y: 0.34, Z: 0.0},
		LowerLip: Point3D{X: 0.50, Y: 0.36, Z: 0.0},
		Score:    0.90,
	}
}

// HandAtLipsLandmarks returns a hand whose index fingertip rests inside the
// lip zone of LipsFaceLandmarks. The finger is curled rather than extended,
// so only the proximity heuristic fires.
func HandAtLipsLandmarks() HandLandmarks {
	lm := SweepHandLandmarks(0.48)
	lm.Points[IndexTip] = Point3D{X: 0.52, Y: 0.37, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.38, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.52, Y: 0.40, Z: 0.0}
	lm.Points[IndexMCP] = Point3D{X: 0.52, Y: 0.48, Z: 0.0}
	return lm
}
