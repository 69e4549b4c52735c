package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/capture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/viewer"
)

// runLoop is the main reader loop. Every tick it reads a webcam frame, runs
// landmark detection when the scene has recent motion, steps the gesture
// machine and redraws the book. Detection is skipped while the scene is
// still, but the machine is still stepped with empty observations so its
// priming and cooldown timers keep advancing.
func (a *App) runLoop() {
	defer close(a.done)

	ticker := time.NewTicker(time.Second / capture.DefaultFPS)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if quit := a.step(); quit {
				a.mu.RLock()
				onQuit := a.onQuit
				a.mu.RUnlock()
				if onQuit != nil {
					go onQuit()
				}
				return
			}
		}
	}
}

// step processes a single frame. It reports true when the viewer window
// asked to quit.
func (a *App) step() bool {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		a.stepMachine(nil)
		return false
	}
	defer frame.Close()

	a.motion.Detect(frame)

	var res *detector.Result
	if a.IsEnabled() && a.motion.ShouldInfer() {
		res, err = a.detector.Detect(frame)
		if err != nil {
			log.Printf("Error detecting landmarks: %v", err)
			res = nil
		}
	}

	event, status, zone := a.stepMachine(res)
	if event != gesture.EventNone {
		a.turnPage(event)
	}

	viewer.DrawOverlay(frame, res, zone, status)
	a.publishFrame(frame)

	if a.config.Viewer != nil && a.doc != nil {
		if err := a.config.Viewer.Render(a.doc, frame); err != nil {
			log.Printf("Error rendering: %v", err)
		}
		switch a.config.Viewer.HandleKeys() {
		case viewer.ActionQuit:
			return true
		case viewer.ActionToggleWebcam:
			a.config.Viewer.ToggleWebcam()
		}
	}
	return false
}

// stepMachine advances the gesture machine with the observations from res,
// which may be nil. It returns the emitted event alongside the status and
// lip zone used for the overlay, read under the same lock.
func (a *App) stepMachine(res *detector.Result) (gesture.Event, gesture.Status, *gesture.LipZone) {
	var hand *detector.HandLandmarks
	var face *detector.FaceLandmarks
	if res != nil {
		hand = res.PrimaryHand()
		face = res.Face
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	event := a.machine.Step(hand, face)
	return event, a.machine.Status(), a.machine.LipZone()
}

// turnPage maps a swipe to a spread change: a leftward sweep advances, a
// rightward sweep goes back.
func (a *App) turnPage(event gesture.Event) {
	if a.doc == nil {
		return
	}

	a.mu.Lock()
	var turned bool
	switch event {
	case gesture.EventLeft:
		turned = a.doc.NextSpread()
	case gesture.EventRight:
		turned = a.doc.PrevSpread()
	}
	page := a.doc.CurrentPage()
	total := a.doc.PageCount()
	onTurn := a.onTurn
	hub := a.hub
	a.mu.Unlock()

	if !turned {
		log.Printf("Swipe %s at document edge, staying on page %d", event, page+1)
		return
	}

	log.Printf("Swipe %s: now at page %d of %d", event, page+1, total)
	a.saveBookmark()

	if hub != nil {
		hub.Publish("page_turn", a.Snapshot())
	}
	if onTurn != nil {
		onTurn(event.String(), page, total)
	}
}

// publishFrame stores the annotated frame as JPEG for the MJPEG stream.
func (a *App) publishFrame(frame *gocv.Mat) {
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return
	}
	defer buf.Close()

	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())

	a.frameMu.Lock()
	a.lastFrame = data
	a.frameMu.Unlock()
}
