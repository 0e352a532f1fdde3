// Package terminal shows GUI frames in a terminal. Every character cell
// covers CellWidth x CellHeight GUI pixels and is drawn as a lower half
// block with true-color foreground and background, so each cell shows two
// vertically stacked samples of the frame.
package terminal

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	gui "github.com/go-theft-auto/pixelgui"
)

// Default size of one terminal cell in GUI pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

const halfBlock = '▄'

// Target implements gui.PixelTarget on a tcell screen. Frames are drawn
// into an in-memory image and converted to half blocks on Present.
type Target struct {
	screen tcell.Screen
	frame  *gui.ImageTarget
	cells  *image.RGBA // cols x 2*rows samples

	cellW, cellH int
	scaler       draw.Scaler
	events       *converter
}

// Option configures a Target.
type Option func(*Target)

// WithCellSize sets how many GUI pixels one terminal cell covers.
func WithCellSize(width, height int) Option {
	return func(t *Target) {
		if width > 0 && height > 0 {
			t.cellW, t.cellH = width, height
		}
	}
}

// WithScaler sets the filter used to reduce frames to cell samples.
func WithScaler(s draw.Scaler) Option {
	return func(t *Target) { t.scaler = s }
}

// Open initializes the terminal and returns a Target covering all of it.
// Close must be called to restore the terminal.
func Open(opts ...Option) (*Target, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	return New(screen, opts...), nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen, opts ...Option) *Target {
	t := &Target{
		screen: screen,
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
		scaler: draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.events = &converter{cellW: t.cellW, cellH: t.cellH}

	cols, rows := screen.Size()
	t.frame = gui.NewImageTarget(max(cols, 1)*t.cellW, max(rows, 1)*t.cellH)
	t.frame.OnPresent = t.draw

	slog.Info("terminal target created",
		"cols", cols,
		"rows", rows,
		"colors", screen.Colors())

	return t
}

// Size returns the frame size in GUI pixels.
func (t *Target) Size() (width, height int) {
	b := t.frame.Image().Bounds()
	return b.Dx(), b.Dy()
}

// Lock implements gui.PixelTarget.
func (t *Target) Lock() (gui.PixelBuffer, error) {
	return t.frame.Lock()
}

// Unlock implements gui.PixelTarget.
func (t *Target) Unlock() {
	t.frame.Unlock()
}

// Resize implements gui.PixelTarget. Sizes are in GUI pixels.
func (t *Target) Resize(width, height int) error {
	if err := t.frame.Resize(width, height); err != nil {
		return err
	}
	t.cells = nil
	t.screen.Sync()
	return nil
}

// Present implements gui.PixelTarget.
func (t *Target) Present() error {
	return t.frame.Present()
}

// Close restores the terminal.
func (t *Target) Close() {
	t.screen.Fini()
}

// draw converts the frame to half blocks and shows it.
func (t *Target) draw(img *image.RGBA) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	if t.cells == nil || t.cells.Bounds().Dx() != cols || t.cells.Bounds().Dy() != 2*rows {
		t.cells = image.NewRGBA(image.Rect(0, 0, cols, 2*rows))
	}

	// Map only the part of the frame the terminal covers.
	src := image.Rect(0, 0, cols*t.cellW, rows*t.cellH).Intersect(img.Bounds())
	dst := image.Rect(0, 0, ceilDiv(src.Dx(), t.cellW), ceilDiv(2*src.Dy(), t.cellH))
	clear(t.cells.Pix)
	if !dst.Empty() {
		t.scaler.Scale(t.cells, dst, img, src, draw.Src, nil)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := t.cells.RGBAAt(x, 2*y)
			bottom := t.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Background(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Foreground(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	t.screen.Show()
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
