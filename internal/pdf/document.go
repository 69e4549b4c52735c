// Package pdf loads a PDF and exposes it as a sequence of rasterized pages
// with 2-page-spread navigation.
package pdf

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// RenderDPI is the rasterization resolution. Twice the PDF's native 72 DPI,
// enough for crisp text at typical window sizes without ballooning memory.
const RenderDPI = 144

// Document is a loaded PDF with a current-page cursor. All pages are
// rendered up front so page turns never stall the frame loop.
type Document struct {
	path    string
	pages   []image.Image
	current int
}

// Open loads and rasterizes the PDF at the given path.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	n := doc.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("pdf has no pages: %s", path)
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, RenderDPI)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		pages = append(pages, img)
	}

	return &Document{path: path, pages: pages}, nil
}

// NewFromPages builds a Document from pre-rendered pages. Useful for tests
// and callers that rasterize elsewhere.
func NewFromPages(path string, pages []image.Image) *Document {
	return &Document{path: path, pages: pages}
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// CurrentPage returns the zero-based index of the current page.
func (d *Document) CurrentPage() int {
	return d.current
}

// SetPage moves the cursor to the given page, clamping to the valid range.
// Used to restore a bookmark.
func (d *Document) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	if page > len(d.pages)-1 {
		page = len(d.pages) - 1
	}
	d.current = page
}

// Page returns the rendered image for the given page index, or nil when the
// index is out of range.
func (d *Document) Page(i int) image.Image {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}

// NextSpread turns the page forward by one spread (two pages), clamping at
// the last page. Returns true if the position changed.
func (d *Document) NextSpread() bool {
	if d.current >= len(d.pages)-1 {
		return false
	}
	d.current = min(d.current+2, len(d.pages)-1)
	return true
}

// PrevSpread turns the page backward by one spread, clamping at the first
// page. Returns true if the position changed.
func (d *Document) PrevSpread() bool {
	if d.current <= 0 {
		return false
	}
	d.current = max(d.current-2, 0)
	return true
}

// Spread returns the page indices shown on the left and right panels for the
// current cursor, -1 for an empty panel. Even pages sit on the right, odd on
// the left, like a physical book opened past its cover.
func (d *Document) Spread() (left, right int) {
	return spreadFor(d.current, len(d.pages))
}

// spreadFor computes the visible spread for a cursor position.
func spreadFor(current, total int) (left, right int) {
	left, right = -1, -1
	if total == 0 {
		return left, right
	}

	if current%2 == 0 {
		if current > 0 {
			left = current - 1
		}
		if current < total {
			right = current
		}
	} else {
		left = current
		if current+1 < total {
			right = current + 1
		}
	}
	return left, right
}
