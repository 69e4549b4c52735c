package gesture

import (
	"math"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
)

// LipZone is the circular region around the mouth used for the proximity
// priming check. It is derived fresh from every frame's face landmarks and
// never persisted.
type LipZone struct {
	X      float64
	Y      float64
	Radius float64
}

// LipZoneFrom derives the lip zone from face landmarks: the center is the
// midpoint of the upper and lower lip centers. Returns nil when no face was
// detected.
func LipZoneFrom(face *detector.FaceLandmarks, radius float64) *LipZone {
	if face == nil {
		return nil
	}
	return &LipZone{
		X:      (face.UpperLip.X + face.LowerLip.X) / 2,
		Y:      (face.UpperLip.Y + face.LowerLip.Y) / 2,
		Radius: radius,
	}
}

// Contains reports whether the point lies inside the zone.
func (z *LipZone) Contains(x, y float64) bool {
	dx := x - z.X
	dy := y - z.Y
	return math.Sqrt(dx*dx+dy*dy) < z.Radius
}

// isLickPose reports whether the hand holds the finger-lick pose: index
// finger extended above its middle joint by the margin, index tip at mouth
// level (upper part of the frame), and the index tip higher than the middle,
// ring and pinky tips by the same margin.
func isLickPose(hand *detector.HandLandmarks, cfg Config) bool {
	indexTip := hand.Points[detector.IndexTip]
	indexPIP := hand.Points[detector.IndexPIP]
	middleTip := hand.Points[detector.MiddleTip]
	ringTip := hand.Points[detector.RingTip]
	pinkyTip := hand.Points[detector.PinkyTip]

	extended := indexTip.Y < indexPIP.Y-cfg.PoseMargin
	nearTop := indexTip.Y < cfg.TopRegion
	highest := indexTip.Y < middleTip.Y-cfg.PoseMargin &&
		indexTip.Y < ringTip.Y-cfg.PoseMargin &&
		indexTip.Y < pinkyTip.Y-cfg.PoseMargin

	return extended && nearTop && highest
}

// fingerAtLips reports whether the index fingertip is inside the lip zone.
// Always false when no face was detected this frame.
func fingerAtLips(hand *detector.HandLandmarks, zone *LipZone) bool {
	if zone == nil {
		return false
	}
	tip := hand.Points[detector.IndexTip]
	return zone.Contains(tip.X, tip.Y)
}

// isPriming combines the two priming heuristics. Either one is enough: the
// pose check works without a face in frame, the proximity check catches a
// literal finger-to-lips touch.
func isPriming(hand *detector.HandLandmarks, zone *LipZone, cfg Config) bool {
	return isLickPose(hand, cfg) || fingerAtLips(hand, zone)
}
