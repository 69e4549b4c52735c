package viewer

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
)

var (
	colorLipZone  = color.RGBA{R: 255, G: 0, B: 255}
	colorFinger   = color.RGBA{R: 0, G: 255, B: 0}
	colorPriming  = color.RGBA{R: 0, G: 200, B: 0}
	colorCooldown = color.RGBA{R: 0, G: 120, B: 255}
	colorReady    = color.RGBA{R: 255, G: 200, B: 0}
)

// DrawOverlay annotates a webcam frame with the lip zone, the tracked
// fingertip and the current gesture state. Coordinates in res and zone are
// normalized, so they are scaled to the frame size here.
func DrawOverlay(frame *gocv.Mat, res *detector.Result, zone *gesture.LipZone, status gesture.Status) {
	if frame == nil || frame.Empty() {
		return
	}
	w := float64(frame.Cols())
	h := float64(frame.Rows())

	if zone != nil {
		center := image.Pt(int(zone.X*w), int(zone.Y*h))
		radius := int(zone.Radius * w)
		gocv.Circle(frame, center, radius, colorLipZone, 1)
		gocv.PutText(frame, "LIP ZONE", image.Pt(center.X-35, center.Y-radius-6),
			gocv.FontHersheySimplex, 0.4, colorLipZone, 1)
	}

	if res != nil {
		if hand := res.PrimaryHand(); hand != nil {
			tip := hand.Points[detector.MiddleTip]
			gocv.Circle(frame, image.Pt(int(tip.X*w), int(tip.Y*h)), 6, colorFinger, -1)
		}
	}

	drawStatusBanner(frame, status)
}

func drawStatusBanner(frame *gocv.Mat, status gesture.Status) {
	var text string
	var c color.RGBA

	switch {
	case status.State == gesture.StateCooldown:
		text = fmt.Sprintf("COOLDOWN %.1fs", status.CooldownRemaining.Seconds())
		c = colorCooldown
	case status.ActivelyPriming:
		text = "READY TO TURN PAGE"
		c = colorReady
	case status.Primed:
		text = fmt.Sprintf("Ready for %.1fs", status.PrimingRemaining.Seconds())
		c = colorPriming
	default:
		text = "Lick finger to enable page turn"
		c = color.RGBA{R: 200, G: 200, B: 200}
	}

	gocv.PutText(frame, text, image.Pt(10, frame.Rows()-12),
		gocv.FontHersheySimplex, 0.55, c, 2)
}
