package gui

import "github.com/go-theft-auto/pixelgui/canvas"

// PixelBuffer is a locked pixel buffer: Height rows of Width RGBA pixels,
// Stride bytes apart.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// PixelTarget is the output buffer a frame draws into. It is owned by the
// application; the Context only borrows it between Begin and End.
//
// Implementations exist for OpenGL textures (backend/opengl), terminals
// (backend/terminal) and plain images (ImageTarget).
type PixelTarget interface {
	// Lock grants exclusive write access to the pixels until Unlock.
	Lock() (PixelBuffer, error)

	// Unlock ends write access. The pixels stay valid.
	Unlock()

	// Resize recreates the buffer at a new size. Never called while locked.
	Resize(width, height int) error

	// Present shows the last unlocked contents.
	Present() error
}

// Canvas is the vector drawing context widgets render through. It is only
// valid between Begin and End.
//
// The default implementation is *canvas.Context; tests and alternative
// rasterizers can be injected with WithCanvasFactory.
type Canvas interface {
	SetColor(r, g, b float32)
	Paint()

	NewPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	RelMoveTo(dx, dy float32)
	RelLineTo(dx, dy float32)
	Rectangle(x, y, w, h float32)
	Arc(cx, cy, radius, angle1, angle2 float32)
	Stroke()
	Fill()

	// TextExtents measures the ink box of text.
	TextExtents(text string) canvas.TextExtents

	// ShowText draws text with its baseline origin at the current point.
	ShowText(text string)

	// Close releases the drawing context. It must not free the pixels.
	Close()
}

// CanvasFactory wraps a locked pixel buffer as a Canvas.
type CanvasFactory func(buf PixelBuffer) (Canvas, error)

// NewCanvas is the default CanvasFactory.
func NewCanvas(buf PixelBuffer) (Canvas, error) {
	c, err := canvas.New(buf.Pix, buf.Width, buf.Height, buf.Stride)
	if err != nil {
		return nil, err
	}
	return c, nil
}
