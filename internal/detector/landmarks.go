// Package detector provides hand and face landmark detection for the
// gesture-controlled reader.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Face mesh landmark indices for the lip centers.
const (
	UpperLipCenter = 13
	LowerLipCenter = 14
)

// Point3D is a landmark position. X and Y are normalized to the frame
// ([0,1], y increasing downward); Z is the MediaPipe depth estimate and is
// unused by the gesture core.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand: the 21 MediaPipe landmarks plus the
// detection score.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// FaceLandmarks carries the two lip-center landmarks of a detected face.
// The reader only ever consumes the lips, so the service strips the rest of
// the face mesh before crossing the process boundary.
type FaceLandmarks struct {
	UpperLip Point3D `json:"upper_lip"`
	LowerLip Point3D `json:"lower_lip"`
	Score    float64 `json:"score"`
}

// Result is the outcome of analyzing one frame. Either observation may be
// absent: no hand in frame, no face in frame, or both.
type Result struct {
	Hands []HandLandmarks `json:"hands"`
	Face  *FaceLandmarks  `json:"face,omitempty"`
}

// PrimaryHand returns the first detected hand or nil. The reader tracks a
// single hand; when MediaPipe reports several, the first one wins.
func (r *Result) PrimaryHand() *HandLandmarks {
	if r == nil || len(r.Hands) == 0 {
		return nil
	}
	return &r.Hands[0]
}
