// Package app wires the capture, detection, gesture and rendering pieces
// into the reader's main loop.
package app

import (
	"log"
	"sync"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/capture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/pdf"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/server"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/store"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/viewer"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	Document     *pdf.Document
	Viewer       *viewer.Viewer
	CameraID     int
	MotionThresh float64
	Gesture      gesture.Config
}

// App is the main application that turns recognized swipes into page turns.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionGate
	detector detector.Detector
	machine  *gesture.Machine
	doc      *pdf.Document
	hub      *server.Hub

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	done    chan struct{}

	// Latest annotated frame as JPEG, for the MJPEG stream.
	frameMu   sync.RWMutex
	lastFrame []byte

	onTurn func(direction string, page, total int)
	onQuit func()
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		motion:  capture.NewMotionGate(motionThreshold, capture.DefaultIdleAfter),
		machine: gesture.NewMachine(config.Gesture, nil),
		doc:     config.Document,
		enabled: true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe landmark detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture page turning. Rendering and the
// webcam stream keep running either way.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.machine.Reset()
	}
}

// IsEnabled returns whether gesture page turning is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the landmark detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetHub sets the WebSocket hub that page-turn events are published to.
func (a *App) SetHub(hub *server.Hub) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hub = hub
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnTurn sets the callback invoked after each gesture page turn, with the
// swipe direction and the new current page.
func (a *App) OnTurn(fn func(direction string, page, total int)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onTurn = fn
}

// OnQuit sets the callback invoked when the viewer window asks to quit.
func (a *App) OnQuit(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onQuit = fn
}

// Start opens the camera and begins the reader loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetMirror(true)

	a.stopCh = make(chan struct{})
	a.done = make(chan struct{})
	go a.runLoop()

	log.Println("Reader loop started")
	return nil
}

// Stop halts the reader loop and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh == nil {
		a.mu.Unlock()
		return
	}
	close(a.stopCh)
	a.stopCh = nil
	done := a.done
	a.mu.Unlock()

	<-done

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Reader loop stopped")
}

// Snapshot implements server.Provider.
func (a *App) Snapshot() server.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := server.Snapshot{
		Enabled: a.enabled,
		Gesture: a.machine.Status(),
	}
	if a.doc != nil {
		s.Path = a.doc.Path()
		s.Page = a.doc.CurrentPage()
		s.PageCount = a.doc.PageCount()
	}
	return s
}

// LatestFrame implements server.Provider.
func (a *App) LatestFrame() []byte {
	a.frameMu.RLock()
	defer a.frameMu.RUnlock()
	return a.lastFrame
}

// Machine returns the gesture state machine.
func (a *App) Machine() *gesture.Machine {
	return a.machine
}

func (a *App) saveBookmark() {
	if a.config.Store == nil || a.doc == nil {
		return
	}
	if err := a.config.Store.Bookmarks().Save(a.doc.Path(), a.doc.CurrentPage()); err != nil {
		log.Printf("Error saving bookmark: %v", err)
	}
}
