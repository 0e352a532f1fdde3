package gui

import (
	"fmt"

	"github.com/go-theft-auto/pixelgui/canvas"
)

// Test doubles shared by the internal and external tests. They are
// exported so package gui_test can use them.

// Fake text metrics: every rune is 7 pixels wide, every line 10 high.
const (
	FakeGlyphWidth  = 7
	FakeTextHeight  = 10
	fakeTextBearing = -FakeTextHeight
)

// CanvasOp is one recorded drawing call.
type CanvasOp struct {
	Name  string
	Color Color // source color when the call was made
	Args  []float32
	Text  string
}

func (op CanvasOp) String() string {
	if op.Text != "" {
		return fmt.Sprintf("%s(%q)", op.Name, op.Text)
	}
	return fmt.Sprintf("%s%v", op.Name, op.Args)
}

// RecordingCanvas is a Canvas that records calls instead of drawing.
type RecordingCanvas struct {
	Ops    []CanvasOp
	Closed bool
	color  Color
}

func (c *RecordingCanvas) record(name string, args ...float32) {
	c.Ops = append(c.Ops, CanvasOp{Name: name, Color: c.color, Args: args})
}

func (c *RecordingCanvas) SetColor(r, g, b float32) {
	c.color = Color{R: r, G: g, B: b}
}

func (c *RecordingCanvas) Paint() { c.record("Paint") }
func (c *RecordingCanvas) NewPath() { c.record("NewPath") }
func (c *RecordingCanvas) MoveTo(x, y float32) { c.record("MoveTo", x, y) }
func (c *RecordingCanvas) LineTo(x, y float32) { c.record("LineTo", x, y) }
func (c *RecordingCanvas) RelMoveTo(dx, dy float32) { c.record("RelMoveTo", dx, dy) }
func (c *RecordingCanvas) RelLineTo(dx, dy float32) { c.record("RelLineTo", dx, dy) }
func (c *RecordingCanvas) Rectangle(x, y, w, h float32) { c.record("Rectangle", x, y, w, h) }
func (c *RecordingCanvas) Stroke() { c.record("Stroke") }
func (c *RecordingCanvas) Fill() { c.record("Fill") }
func (c *RecordingCanvas) Close() { c.Closed = true }

func (c *RecordingCanvas) Arc(cx, cy, radius, angle1, angle2 float32) {
	c.record("Arc", cx, cy, radius, angle1, angle2)
}

func (c *RecordingCanvas) TextExtents(text string) canvas.TextExtents {
	if text == "" {
		return canvas.TextExtents{}
	}
	w := float32(FakeGlyphWidth * len([]rune(text)))
	return canvas.TextExtents{
		YBearing: fakeTextBearing,
		Width:    w,
		Height:   FakeTextHeight,
		XAdvance: w,
	}
}

func (c *RecordingCanvas) ShowText(text string) {
	c.Ops = append(c.Ops, CanvasOp{Name: "ShowText", Color: c.color, Text: text})
}

// Calls returns the recorded ops with the given name.
func (c *RecordingCanvas) Calls(name string) []CanvasOp {
	var out []CanvasOp
	for _, op := range c.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// CountIn returns how many ops named name were made in color col.
func (c *RecordingCanvas) CountIn(name string, col Color) int {
	n := 0
	for _, op := range c.Ops {
		if op.Name == name && op.Color == col {
			n++
		}
	}
	return n
}

// TextAt returns the position of the MoveTo that preceded the ShowText of
// text.
func (c *RecordingCanvas) TextAt(text string) (x, y float32, ok bool) {
	var last []float32
	for _, op := range c.Ops {
		switch op.Name {
		case "MoveTo":
			last = op.Args
		case "ShowText":
			if op.Text == text && last != nil {
				return last[0], last[1], true
			}
		}
	}
	return 0, 0, false
}

// CanvasRecorder is a CanvasFactory that hands out RecordingCanvases.
type CanvasRecorder struct {
	Canvases []*RecordingCanvas
	Err      error
}

// Factory implements CanvasFactory.
func (r *CanvasRecorder) Factory(buf PixelBuffer) (Canvas, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	c := &RecordingCanvas{}
	r.Canvases = append(r.Canvases, c)
	return c, nil
}

// Last returns the canvas of the most recent frame.
func (r *CanvasRecorder) Last() *RecordingCanvas {
	if len(r.Canvases) == 0 {
		return nil
	}
	return r.Canvases[len(r.Canvases)-1]
}

// FakeTarget is a PixelTarget that counts calls and can be told to fail.
type FakeTarget struct {
	Width, Height int

	LockErr    error
	ResizeErr  error
	PresentErr error

	Locks    int
	Unlocks  int
	Presents int
	Resizes  [][2]int

	locked bool
	pix    []byte
}

// NewFakeTarget creates a width x height FakeTarget.
func NewFakeTarget(width, height int) *FakeTarget {
	return &FakeTarget{Width: width, Height: height}
}

func (t *FakeTarget) Lock() (PixelBuffer, error) {
	if t.LockErr != nil {
		return PixelBuffer{}, t.LockErr
	}
	if t.locked {
		return PixelBuffer{}, ErrTargetLocked
	}
	t.locked = true
	t.Locks++
	if len(t.pix) != t.Width*t.Height*4 {
		t.pix = make([]byte, t.Width*t.Height*4)
	}
	return PixelBuffer{Pix: t.pix, Width: t.Width, Height: t.Height, Stride: t.Width * 4}, nil
}

func (t *FakeTarget) Unlock() {
	t.locked = false
	t.Unlocks++
}

func (t *FakeTarget) Resize(width, height int) error {
	if t.ResizeErr != nil {
		return t.ResizeErr
	}
	t.Resizes = append(t.Resizes, [2]int{width, height})
	t.Width, t.Height = width, height
	return nil
}

func (t *FakeTarget) Present() error {
	t.Presents++
	return t.PresentErr
}

// Locked reports whether the target is currently locked.
func (t *FakeTarget) Locked() bool {
	return t.locked
}

// NewRecordingContext returns a Context drawing into RecordingCanvases.
func NewRecordingContext(opts ...ContextOption) (*Context, *CanvasRecorder) {
	rec := &CanvasRecorder{}
	opts = append([]ContextOption{WithCanvasFactory(rec.Factory)}, opts...)
	return NewContext(opts...), rec
}
