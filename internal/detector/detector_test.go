package detector

import (
	"errors"
	"testing"
)

func TestResult_PrimaryHand(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name:   "no hands",
			result: &Result{},
			want:   false,
		},
		{
			name:   "one hand",
			result: &Result{Hands: []HandLandmarks{LickPoseLandmarks()}},
			want:   true,
		},
		{
			name: "two hands returns first",
			result: &Result{Hands: []HandLandmarks{
				SweepHandLandmarks(0.3),
				SweepHandLandmarks(0.7),
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := tt.result.PrimaryHand()
			if (hand != nil) != tt.want {
				t.Fatalf("PrimaryHand() = %v, want present=%v", hand, tt.want)
			}
			if hand != nil && tt.result != nil && hand != &tt.result.Hands[0] {
				t.Error("PrimaryHand() did not return the first hand")
			}
		})
	}
}

func TestMockDetector(t *testing.T) {
	m := NewMockDetector()

	// Default: empty result, no error
	res, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(res.Hands) != 0 || res.Face != nil {
		t.Errorf("default Detect() = %+v, want empty result", res)
	}

	// Configured result
	face := LipsFaceLandmarks()
	m.SetResult(&Result{
		Hands: []HandLandmarks{LickPoseLandmarks()},
		Face:  &face,
	})
	res, err = m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(res.Hands) != 1 {
		t.Errorf("Detect() hands = %d, want 1", len(res.Hands))
	}
	if res.Face == nil {
		t.Error("Detect() face = nil, want lips")
	}

	// Configured error
	m.SetError(errors.New("boom"))
	if _, err := m.Detect(nil); err == nil {
		t.Error("Detect() error = nil, want boom")
	}
}

func TestJSONConversion(t *testing.T) {
	h := jsonHand{
		Handedness: "Left",
		Score:      0.88,
		Points: []jsonPoint{
			{X: 0.1, Y: 0.2, Z: 0.3},
			{X: 0.4, Y: 0.5, Z: 0.6},
		},
	}

	lm := h.toHandLandmarks()
	if lm.Handedness != "Left" || lm.Score != 0.88 {
		t.Errorf("metadata = %q/%.2f, want Left/0.88", lm.Handedness, lm.Score)
	}
	if lm.Points[1].X != 0.4 {
		t.Errorf("Points[1].X = %v, want 0.4", lm.Points[1].X)
	}
	// Short point lists leave the remaining landmarks zeroed
	if lm.Points[20] != (Point3D{}) {
		t.Errorf("Points[20] = %v, want zero", lm.Points[20])
	}

	f := jsonFace{
		UpperLip: jsonPoint{X: 0.5, Y: 0.34},
		LowerLip: jsonPoint{X: 0.5, Y: 0.36},
		Score:    0.9,
	}
	face := f.toFaceLandmarks()
	if face.UpperLip.Y != 0.34 || face.LowerLip.Y != 0.36 {
		t.Errorf("lips = %v/%v, want 0.34/0.36", face.UpperLip.Y, face.LowerLip.Y)
	}
}
