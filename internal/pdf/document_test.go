package pdf

import (
	"image"
	"testing"
)

// testDocument builds a document with n blank pages.
func testDocument(n int) *Document {
	pages := make([]image.Image, n)
	for i := range pages {
		pages[i] = image.NewRGBA(image.Rect(0, 0, 10, 10))
	}
	return NewFromPages("test.pdf", pages)
}

func TestDocument_NextSpread(t *testing.T) {
	d := testDocument(6)

	positions := []int{2, 4, 5}
	for i, want := range positions {
		if !d.NextSpread() {
			t.Fatalf("NextSpread() %d = false, want true", i)
		}
		if d.CurrentPage() != want {
			t.Errorf("CurrentPage() = %d, want %d", d.CurrentPage(), want)
		}
	}

	// At the last page: no further movement
	if d.NextSpread() {
		t.Error("NextSpread() at last page = true, want false")
	}
	if d.CurrentPage() != 5 {
		t.Errorf("CurrentPage() = %d, want 5", d.CurrentPage())
	}
}

func TestDocument_PrevSpread(t *testing.T) {
	d := testDocument(6)
	d.SetPage(5)

	positions := []int{3, 1}
	for i, want := range positions {
		if !d.PrevSpread() {
			t.Fatalf("PrevSpread() %d = false, want true", i)
		}
		if d.CurrentPage() != want {
			t.Errorf("CurrentPage() = %d, want %d", d.CurrentPage(), want)
		}
	}

	// Clamps at the first page
	if !d.PrevSpread() {
		t.Fatal("PrevSpread() from page 1 = false, want true")
	}
	if d.CurrentPage() != 0 {
		t.Errorf("CurrentPage() = %d, want 0", d.CurrentPage())
	}
	if d.PrevSpread() {
		t.Error("PrevSpread() at first page = true, want false")
	}
}

func TestDocument_SetPageClamps(t *testing.T) {
	d := testDocument(4)

	d.SetPage(-3)
	if d.CurrentPage() != 0 {
		t.Errorf("SetPage(-3): CurrentPage() = %d, want 0", d.CurrentPage())
	}

	d.SetPage(99)
	if d.CurrentPage() != 3 {
		t.Errorf("SetPage(99): CurrentPage() = %d, want 3", d.CurrentPage())
	}
}

func TestDocument_Page(t *testing.T) {
	d := testDocument(2)

	if d.Page(0) == nil || d.Page(1) == nil {
		t.Error("Page() in range = nil, want image")
	}
	if d.Page(-1) != nil || d.Page(2) != nil {
		t.Error("Page() out of range should be nil")
	}
}

func TestSpreadFor(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		total     int
		wantLeft  int
		wantRight int
	}{
		{"cover page alone on right", 0, 6, -1, 0},
		{"odd cursor opens its own spread", 1, 6, 1, 2},
		{"even cursor pairs with previous", 2, 6, 1, 2},
		{"middle odd", 3, 6, 3, 4},
		{"last odd page has empty right", 5, 6, 5, -1},
		{"last even page", 4, 5, 3, 4},
		{"empty document", 0, 0, -1, -1},
		{"single page", 0, 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := spreadFor(tt.current, tt.total)
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("spreadFor(%d, %d) = (%d, %d), want (%d, %d)",
					tt.current, tt.total, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}
