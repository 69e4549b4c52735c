package viewer

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/JaeMinBird/inconvenientpdfreader/internal/pdf"
)

// Action is what the key handler asks the caller to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleWebcam
)

const (
	keyEscape = 27
	keySpace  = 32
)

var (
	colorBackground = color.RGBA{R: 220, G: 220, B: 220}
	colorShadow     = color.RGBA{R: 160, G: 160, B: 160}
	colorPaper      = color.RGBA{R: 250, G: 250, B: 250}
	colorBorder     = color.RGBA{R: 40, G: 40, B: 40}
	colorSpine      = color.RGBA{R: 120, G: 120, B: 120}
	colorText       = color.RGBA{R: 60, G: 60, B: 60}
)

// Viewer owns the display window and composes the book spread each frame.
type Viewer struct {
	window     *gocv.Window
	layout     Layout
	showWebcam bool
}

func New(title string, width, height int) *Viewer {
	return &Viewer{
		window:     gocv.NewWindow(title),
		layout:     NewLayout(width, height),
		showWebcam: true,
	}
}

func (v *Viewer) Layout() Layout { return v.layout }

// Render draws the current spread of doc, plus the webcam
// picture-in-picture when enabled. webcam may be nil or empty.
func (v *Viewer) Render(doc *pdf.Document, webcam *gocv.Mat) error {
	canvas := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(colorBackground.B), float64(colorBackground.G), float64(colorBackground.R), 0),
		v.layout.Height, v.layout.Width, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	gocv.Rectangle(&canvas, v.layout.Shadow, colorShadow, -1)
	gocv.Rectangle(&canvas, v.layout.Book, colorPaper, -1)
	gocv.Rectangle(&canvas, v.layout.Book, colorBorder, 2)
	gocv.Line(&canvas,
		image.Pt(v.layout.SpineX, v.layout.Book.Min.Y),
		image.Pt(v.layout.SpineX, v.layout.Book.Max.Y),
		colorSpine, 2)

	left, right := doc.Spread()
	if err := v.drawPage(&canvas, doc, left, v.layout.LeftPage); err != nil {
		return err
	}
	if err := v.drawPage(&canvas, doc, right, v.layout.RightPage); err != nil {
		return err
	}

	v.drawInstructions(&canvas)

	if v.showWebcam && webcam != nil && !webcam.Empty() {
		v.drawWebcam(&canvas, webcam)
	}

	v.window.IMShow(canvas)
	return nil
}

// HandleKeys pumps the window event loop and maps key presses.
func (v *Viewer) HandleKeys() Action {
	switch v.window.WaitKey(1) {
	case keyEscape:
		return ActionQuit
	case keySpace:
		return ActionToggleWebcam
	default:
		return ActionNone
	}
}

func (v *Viewer) ToggleWebcam() { v.showWebcam = !v.showWebcam }

func (v *Viewer) WebcamVisible() bool { return v.showWebcam }

func (v *Viewer) Close() error {
	return v.window.Close()
}

func (v *Viewer) drawPage(canvas *gocv.Mat, doc *pdf.Document, page int, rect image.Rectangle) error {
	gocv.Rectangle(canvas, rect, colorBorder, 1)
	if page < 0 {
		return nil
	}
	img := doc.Page(page)
	if img == nil {
		return fmt.Errorf("viewer: page %d missing", page)
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("viewer: convert page %d: %w", page, err)
	}
	defer mat.Close()
	gocv.CvtColor(mat, &mat, gocv.ColorBGRToRGB)

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(rect.Dx(), rect.Dy()), 0, 0, gocv.InterpolationArea)

	region := canvas.Region(rect)
	resized.CopyTo(&region)
	region.Close()

	num := fmt.Sprintf("%d / %d", page+1, doc.PageCount())
	pos := v.layout.PageNumberPos(rect)
	gocv.PutText(canvas, num, image.Pt(pos.X-30, pos.Y),
		gocv.FontHersheySimplex, 0.5, colorText, 1)
	return nil
}

func (v *Viewer) drawInstructions(canvas *gocv.Mat) {
	lines := []string{
		"Lick finger, then swipe left/right to turn pages",
		"SPACE: toggle webcam   ESC: quit",
	}
	for i, line := range lines {
		gocv.PutText(canvas, line, image.Pt(10, 20+i*20),
			gocv.FontHersheySimplex, 0.45, colorText, 1)
	}
}

func (v *Viewer) drawWebcam(canvas *gocv.Mat, webcam *gocv.Mat) {
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(*webcam, &resized, image.Pt(v.layout.Webcam.Dx(), v.layout.Webcam.Dy()),
		0, 0, gocv.InterpolationLinear)

	region := canvas.Region(v.layout.Webcam)
	resized.CopyTo(&region)
	region.Close()
	gocv.Rectangle(canvas, v.layout.Webcam, colorBorder, 1)
}
