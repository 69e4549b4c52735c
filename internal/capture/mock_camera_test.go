package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMockCamera_Playback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	f1 := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	defer f1.Close()
	f2 := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	defer f2.Close()

	cam := NewMockCamera([]*gocv.Mat{&f1, &f2}, false)

	// Reading before Open fails
	if _, err := cam.ReadFrame(); err == nil {
		t.Error("ReadFrame() before Open should fail")
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !cam.IsOpen() {
		t.Error("IsOpen() = false after Open")
	}

	for i := 0; i < 2; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		frame.Close()
	}

	// Non-looping playback runs out
	if _, err := cam.ReadFrame(); err == nil {
		t.Error("ReadFrame() past the end should fail without loop")
	}

	// Reset restarts playback
	cam.Reset()
	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() after Reset error = %v", err)
	}
	frame.Close()
}

func TestMockCamera_Loop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	f := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	defer f.Close()

	cam := NewMockCamera([]*gocv.Mat{&f}, true)
	cam.Open()

	for i := 0; i < 5; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		frame.Close()
	}
}

func TestMockCamera_NoFrames(t *testing.T) {
	cam := NewMockCamera(nil, false)
	cam.Open()

	if _, err := cam.ReadFrame(); err == nil {
		t.Error("ReadFrame() with no frames should fail")
	}
}
