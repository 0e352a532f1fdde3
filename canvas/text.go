package canvas

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSize is the pixel size of the default face.
const FontSize = 13

// TextExtents describes the ink box of a string relative to the origin of
// the baseline, in pixels.
type TextExtents struct {
	XBearing float32 // left edge of the ink relative to the origin
	YBearing float32 // top edge of the ink relative to the baseline (negative above)
	Width    float32
	Height   float32
	XAdvance float32 // distance the current point moves after ShowText
}

var parseRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newDefaultFace() (font.Face, error) {
	f, err := parseRegular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// TextExtents measures text with the current face. Empty text measures as
// all zeros.
func (c *Context) TextExtents(text string) TextExtents {
	if text == "" {
		return TextExtents{}
	}
	bounds, advance := font.BoundString(c.face, text)
	return TextExtents{
		XBearing: fixedToFloat(bounds.Min.X),
		YBearing: fixedToFloat(bounds.Min.Y),
		Width:    fixedToFloat(bounds.Max.X - bounds.Min.X),
		Height:   fixedToFloat(bounds.Max.Y - bounds.Min.Y),
		XAdvance: fixedToFloat(advance),
	}
}

// ShowText draws text with its baseline origin at the current point (or at
// the surface origin when there is none) and advances the current point.
func (c *Context) ShowText(text string) {
	if text == "" {
		return
	}
	var origin point
	if c.hasCur {
		origin = c.current
	}
	d := font.Drawer{
		Dst:  c.dst,
		Src:  c.src,
		Face: c.face,
		Dot:  fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)},
	}
	d.DrawString(text)
	c.current = point{X: fixedToFloat(d.Dot.X), Y: origin.Y}
	c.hasCur = true
}

// LineHeight returns the face's recommended line spacing in pixels.
func (c *Context) LineHeight() float32 {
	return fixedToFloat(c.face.Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
