package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStore_New(t *testing.T) {
	s := testStore(t)

	if s.Path() == "" {
		t.Error("Path() = empty, want database path")
	}
}

func TestBookmarkStore_SaveAndGet(t *testing.T) {
	s := testStore(t)
	bm := s.Bookmarks()

	if err := bm.Save("/books/novel.pdf", 12); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	page, ok, err := bm.Get("/books/novel.pdf")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if page != 12 {
		t.Errorf("page = %d, want 12", page)
	}
}

func TestBookmarkStore_GetMissing(t *testing.T) {
	s := testStore(t)

	page, ok, err := s.Bookmarks().Get("/books/unknown.pdf")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() = (%d, true) for unknown document, want ok=false", page)
	}
}

func TestBookmarkStore_SaveUpserts(t *testing.T) {
	s := testStore(t)
	bm := s.Bookmarks()

	if err := bm.Save("/books/novel.pdf", 4); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := bm.Save("/books/novel.pdf", 18); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	page, ok, err := bm.Get("/books/novel.pdf")
	if err != nil || !ok {
		t.Fatalf("Get() = (%d, %v, %v), want hit", page, ok, err)
	}
	if page != 18 {
		t.Errorf("page = %d, want 18 after upsert", page)
	}

	// Still a single row
	list, err := bm.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() returned %d bookmarks, want 1", len(list))
	}
}

func TestBookmarkStore_SaveValidation(t *testing.T) {
	s := testStore(t)
	bm := s.Bookmarks()

	if err := bm.Save("", 3); err == nil {
		t.Error("Save() with empty path should fail")
	}
	if err := bm.Save("/books/novel.pdf", -1); err == nil {
		t.Error("Save() with negative page should fail")
	}
}

func TestBookmarkStore_Delete(t *testing.T) {
	s := testStore(t)
	bm := s.Bookmarks()

	if err := bm.Save("/books/novel.pdf", 2); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := bm.Delete("/books/novel.pdf"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, ok, err := bm.Get("/books/novel.pdf")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("bookmark still present after Delete()")
	}

	// Deleting again is a no-op
	if err := bm.Delete("/books/novel.pdf"); err != nil {
		t.Errorf("Delete() of missing bookmark error = %v", err)
	}
}
