// Package viewer renders the two-page book spread, the webcam
// picture-in-picture and the gesture status overlay.
package viewer

import "image"

// Fixed layout margins, in pixels.
const (
	BookMargin   = 50
	PageMargin   = 20
	ShadowOffset = 5

	WebcamWidth  = 200
	WebcamHeight = 150
	WebcamInset  = 10
)

// Layout holds the derived rectangles for a window size. Everything is
// computed once so the render loop only copies pixels.
type Layout struct {
	Width  int
	Height int

	Book   image.Rectangle
	Shadow image.Rectangle
	// SpineX is the x coordinate of the book's center line.
	SpineX int

	LeftPage  image.Rectangle
	RightPage image.Rectangle

	Webcam image.Rectangle
}

// NewLayout computes the book layout for the given window size.
func NewLayout(width, height int) Layout {
	bookW := width - 2*BookMargin
	bookH := height - 2*BookMargin
	pageW := (bookW - 3*PageMargin) / 2
	pageH := bookH - 2*PageMargin

	book := image.Rect(BookMargin, BookMargin, BookMargin+bookW, BookMargin+bookH)

	leftX := BookMargin + PageMargin
	rightX := BookMargin + bookW/2 + PageMargin
	pageY := BookMargin + PageMargin

	return Layout{
		Width:     width,
		Height:    height,
		Book:      book,
		Shadow:    book.Add(image.Pt(ShadowOffset, ShadowOffset)),
		SpineX:    BookMargin + bookW/2,
		LeftPage:  image.Rect(leftX, pageY, leftX+pageW, pageY+pageH),
		RightPage: image.Rect(rightX, pageY, rightX+pageW, pageY+pageH),
		Webcam: image.Rect(
			width-WebcamWidth-WebcamInset, WebcamInset,
			width-WebcamInset, WebcamInset+WebcamHeight),
	}
}

// PageNumberPos returns the anchor point for a page number centered under a
// page panel.
func (l Layout) PageNumberPos(page image.Rectangle) image.Point {
	return image.Pt(
		page.Min.X+page.Dx()/2,
		l.Book.Max.Y-30,
	)
}
