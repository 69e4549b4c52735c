package app

import (
	"image"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/capture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/detector"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/gesture"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/pdf"
	"github.com/JaeMinBird/inconvenientpdfreader/internal/store"
)

func testDocument(pages int) *pdf.Document {
	imgs := make([]image.Image, pages)
	for i := range imgs {
		img := image.NewRGBA(image.Rect(0, 0, 40, 60))
		for p := range img.Pix {
			img.Pix[p] = 255
		}
		imgs[i] = img
	}
	return pdf.NewFromPages("/books/test.pdf", imgs)
}

func testFrames(t *testing.T, n int) []*gocv.Mat {
	t.Helper()
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 90, 90, 0), 480, 640, gocv.MatTypeCV8UC3)
		frames[i] = &m
	}
	t.Cleanup(func() {
		for _, f := range frames {
			f.Close()
		}
	})
	return frames
}

func lickResult() *detector.Result {
	face := detector.LipsFaceLandmarks()
	return &detector.Result{
		Hands: []detector.HandLandmarks{detector.LickPoseLandmarks()},
		Face:  &face,
	}
}

func sweepResult(x float64) *detector.Result {
	face := detector.LipsFaceLandmarks()
	return &detector.Result{
		Hands: []detector.HandLandmarks{detector.SweepHandLandmarks(x)},
		Face:  &face,
	}
}

func TestApp_LickThenSweepTurnsPage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	doc := testDocument(6)
	a := New(Config{
		Store:    s,
		Document: doc,
		Gesture:  gesture.DefaultConfig(),
	})

	mock := detector.NewMockDetector()
	a.SetDetector(mock)

	cam := capture.NewMockCamera(testFrames(t, 2), true)
	if err := cam.Open(); err != nil {
		t.Fatalf("cam.Open() error = %v", err)
	}
	a.SetCamera(cam)
	defer a.motion.Close()

	var turns []string
	a.OnTurn(func(direction string, page, total int) {
		turns = append(turns, direction)
	})

	// Prime with a few finger-lick frames.
	mock.SetResult(lickResult())
	for i := 0; i < 3; i++ {
		a.step()
	}

	// Sweep leftward across the frame: advances to the next spread.
	for _, x := range []float64{0.50, 0.46, 0.42, 0.38, 0.34, 0.30} {
		mock.SetResult(sweepResult(x))
		a.step()
	}

	if doc.CurrentPage() != 2 {
		t.Fatalf("CurrentPage() = %d, want 2", doc.CurrentPage())
	}
	if len(turns) != 1 || turns[0] != "left" {
		t.Errorf("turns = %v, want [left]", turns)
	}

	// The bookmark follows the page turn.
	page, ok, err := s.Bookmarks().Get(doc.Path())
	if err != nil {
		t.Fatalf("Bookmarks().Get() error = %v", err)
	}
	if !ok || page != 2 {
		t.Errorf("bookmark = (%d, %v), want (2, true)", page, ok)
	}

	// The annotated frame is published for the MJPEG stream.
	if a.LatestFrame() == nil {
		t.Error("LatestFrame() = nil after stepping")
	}

	snap := a.Snapshot()
	if snap.Page != 2 || snap.PageCount != 6 || !snap.Enabled {
		t.Errorf("Snapshot() = %+v, want page 2 of 6, enabled", snap)
	}
}

func TestApp_DisabledIgnoresGestures(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	doc := testDocument(6)
	a := New(Config{
		Document: doc,
		Gesture:  gesture.DefaultConfig(),
	})

	mock := detector.NewMockDetector()
	a.SetDetector(mock)

	cam := capture.NewMockCamera(testFrames(t, 2), true)
	if err := cam.Open(); err != nil {
		t.Fatalf("cam.Open() error = %v", err)
	}
	a.SetCamera(cam)
	defer a.motion.Close()

	a.SetEnabled(false)

	mock.SetResult(lickResult())
	for i := 0; i < 3; i++ {
		a.step()
	}
	for _, x := range []float64{0.50, 0.46, 0.42, 0.38, 0.34, 0.30} {
		mock.SetResult(sweepResult(x))
		a.step()
	}

	if doc.CurrentPage() != 0 {
		t.Errorf("CurrentPage() = %d, want 0 while disabled", doc.CurrentPage())
	}
	if a.Snapshot().Enabled {
		t.Error("Snapshot().Enabled = true, want false")
	}
}

func TestApp_SweepWithoutPrimingDoesNothing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	doc := testDocument(6)
	a := New(Config{
		Document: doc,
		Gesture:  gesture.DefaultConfig(),
	})

	mock := detector.NewMockDetector()
	a.SetDetector(mock)

	cam := capture.NewMockCamera(testFrames(t, 2), true)
	if err := cam.Open(); err != nil {
		t.Fatalf("cam.Open() error = %v", err)
	}
	a.SetCamera(cam)
	defer a.motion.Close()

	for _, x := range []float64{0.50, 0.46, 0.42, 0.38, 0.34, 0.30} {
		mock.SetResult(sweepResult(x))
		a.step()
	}

	if doc.CurrentPage() != 0 {
		t.Errorf("CurrentPage() = %d, want 0 without priming", doc.CurrentPage())
	}
}
