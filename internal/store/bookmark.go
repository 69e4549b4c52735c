package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bookmark is the saved reading position for one document.
type Bookmark struct {
	ID        string
	Path      string
	Page      int
	UpdatedAt time.Time
}

// BookmarkStore manages reading positions in the database.
type BookmarkStore struct {
	db *sql.DB
}

// Save records the reading position for a document, inserting a new row or
// updating the existing one for the same path.
func (b *BookmarkStore) Save(path string, page int) error {
	if path == "" {
		return fmt.Errorf("bookmark path is required")
	}
	if page < 0 {
		return fmt.Errorf("bookmark page must be non-negative, got %d", page)
	}

	_, err := b.db.Exec(`
		INSERT INTO bookmarks (id, path, page) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			page = excluded.page,
			updated_at = CURRENT_TIMESTAMP`,
		uuid.New().String(), path, page)
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}
	return nil
}

// Get returns the saved page for a document. The second return value is
// false when the document has no bookmark.
func (b *BookmarkStore) Get(path string) (int, bool, error) {
	var page int
	err := b.db.QueryRow(`SELECT page FROM bookmarks WHERE path = ?`, path).Scan(&page)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return page, true, nil
}

// List returns all bookmarks, most recently updated first.
func (b *BookmarkStore) List() ([]Bookmark, error) {
	rows, err := b.db.Query(`
		SELECT id, path, page, updated_at FROM bookmarks
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var bm Bookmark
		if err := rows.Scan(&bm.ID, &bm.Path, &bm.Page, &bm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bm)
	}
	return bookmarks, rows.Err()
}

// Delete removes the bookmark for a document. Deleting a missing bookmark is
// not an error.
func (b *BookmarkStore) Delete(path string) error {
	_, err := b.db.Exec(`DELETE FROM bookmarks WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}
