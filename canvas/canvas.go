// Package canvas provides a small vector drawing context over a raw RGBA
// pixel buffer. It follows the cairo model: build a path, pick a solid
// source color, then stroke or fill it. Text is measured and drawn at a
// baseline point.
//
// Paths are rasterized with golang.org/x/image/vector and text is rendered
// with golang.org/x/image/font using the Go Regular face.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/vector"
)

// DefaultLineWidth is the stroke width used until SetLineWidth is called.
const DefaultLineWidth float32 = 2

// ErrInvalidSurface is returned by New when the buffer cannot hold an image
// of the requested size.
var ErrInvalidSurface = errors.New("canvas: invalid surface")

type point struct {
	X, Y float32
}

type subpath struct {
	points []point
	closed bool
}

// Context draws onto a borrowed pixel buffer. It never frees the buffer.
// A Context is not safe for concurrent use.
type Context struct {
	dst       *image.RGBA
	src       *image.Uniform
	raster    *vector.Rasterizer
	face      font.Face
	ownsFace  bool
	lineWidth float32

	path    []subpath
	current point
	hasCur  bool
	closed  bool
}

// Option configures a Context.
type Option func(*Context)

// WithFace draws and measures text with the given face instead of the
// default. The caller keeps ownership of the face.
func WithFace(face font.Face) Option {
	return func(c *Context) {
		c.face = face
		c.ownsFace = false
	}
}

// New wraps pix as a width x height RGBA surface with the given row stride
// in bytes.
func New(pix []byte, width, height, stride int, opts ...Option) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidSurface, width, height)
	}
	if stride < width*4 {
		return nil, fmt.Errorf("%w: stride %d too small for width %d", ErrInvalidSurface, stride, width)
	}
	if need := stride*(height-1) + width*4; len(pix) < need {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrInvalidSurface, len(pix), need)
	}

	c := &Context{
		dst: &image.RGBA{
			Pix:    pix,
			Stride: stride,
			Rect:   image.Rect(0, 0, width, height),
		},
		src:       image.NewUniform(color.RGBA{A: 0xff}),
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.face == nil {
		face, err := newDefaultFace()
		if err != nil {
			return nil, err
		}
		c.face = face
		c.ownsFace = true
	}
	c.raster = acquireRasterizer(width, height)
	return c, nil
}

// Close releases the rasterizer and the default font face. The pixel buffer
// is left untouched. Close is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	releaseRasterizer(c.raster)
	c.raster = nil
	if c.ownsFace {
		_ = c.face.Close()
	}
	c.path = nil
}

// Bounds returns the surface rectangle.
func (c *Context) Bounds() image.Rectangle {
	return c.dst.Rect
}

// SetColor sets an opaque source color from channels in [0,1].
func (c *Context) SetColor(r, g, b float32) {
	c.src = image.NewUniform(color.RGBA{
		R: channel(r),
		G: channel(g),
		B: channel(b),
		A: 0xff,
	})
}

// SetLineWidth sets the stroke width in pixels.
func (c *Context) SetLineWidth(w float32) {
	if w > 0 {
		c.lineWidth = w
	}
}

// Paint fills the entire surface with the source color.
func (c *Context) Paint() {
	draw.Draw(c.dst, c.dst.Rect, c.src, image.Point{}, draw.Src)
}

// NewPath discards the current path and the current point.
func (c *Context) NewPath() {
	c.path = c.path[:0]
	c.hasCur = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float32) {
	c.path = append(c.path, subpath{points: []point{{x, y}}})
	c.current = point{x, y}
	c.hasCur = true
}

// LineTo adds a line to (x, y). Without a current point it behaves as MoveTo.
func (c *Context) LineTo(x, y float32) {
	if !c.hasCur || len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	if sp.closed {
		c.path = append(c.path, subpath{points: []point{c.current}})
		sp = &c.path[len(c.path)-1]
	}
	sp.points = append(sp.points, point{x, y})
	c.current = point{x, y}
}

// RelMoveTo moves the current point by (dx, dy). It is a no-op without a
// current point.
func (c *Context) RelMoveTo(dx, dy float32) {
	if !c.hasCur {
		return
	}
	c.MoveTo(c.current.X+dx, c.current.Y+dy)
}

// RelLineTo adds a line relative to the current point. It is a no-op
// without a current point.
func (c *Context) RelLineTo(dx, dy float32) {
	if !c.hasCur {
		return
	}
	c.LineTo(c.current.X+dx, c.current.Y+dy)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.closed = true
	c.current = sp.points[0]
}

// Rectangle adds a closed rectangle subpath.
func (c *Context) Rectangle(x, y, w, h float32) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// Arc adds a circular arc centered at (cx, cy) from angle1 to angle2
// (radians, increasing angles turn clockwise in screen space). If there is a
// current point a line joins it to the start of the arc.
func (c *Context) Arc(cx, cy, radius, angle1, angle2 float32) {
	if radius < 0 {
		radius = 0
	}
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	sweep := float64(angle2 - angle1)
	steps := int(math.Ceil(sweep*float64(radius)/2)) + 8

	sx := cx + radius*float32(math.Cos(float64(angle1)))
	sy := cy + radius*float32(math.Sin(float64(angle1)))
	if c.hasCur {
		c.LineTo(sx, sy)
	} else {
		c.MoveTo(sx, sy)
	}
	for i := 1; i <= steps; i++ {
		a := float64(angle1) + sweep*float64(i)/float64(steps)
		c.LineTo(cx+radius*float32(math.Cos(a)), cy+radius*float32(math.Sin(a)))
	}
}

// Fill fills the current path with the source color and clears the path.
func (c *Context) Fill() {
	c.raster.Reset(c.dst.Rect.Dx(), c.dst.Rect.Dy())
	for _, sp := range c.path {
		if len(sp.points) < 3 {
			continue
		}
		c.raster.MoveTo(sp.points[0].X, sp.points[0].Y)
		for _, p := range sp.points[1:] {
			c.raster.LineTo(p.X, p.Y)
		}
		c.raster.ClosePath()
	}
	c.raster.Draw(c.dst, c.dst.Rect, c.src, image.Point{})
	c.NewPath()
}

// Stroke outlines the current path with the source color and line width,
// then clears the path.
func (c *Context) Stroke() {
	c.raster.Reset(c.dst.Rect.Dx(), c.dst.Rect.Dy())
	hw := c.lineWidth / 2
	for _, sp := range c.path {
		pts := sp.points
		for i := 1; i < len(pts); i++ {
			strokeSegment(c.raster, pts[i-1], pts[i], hw)
		}
		if sp.closed && len(pts) > 2 {
			strokeSegment(c.raster, pts[len(pts)-1], pts[0], hw)
		}
	}
	c.raster.Draw(c.dst, c.dst.Rect, c.src, image.Point{})
	c.NewPath()
}

// strokeSegment adds the outline of a square-capped line segment. Every
// quad is wound the same way, so overlapping segments never cancel.
func strokeSegment(z *vector.Rasterizer, a, b point, hw float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	dx, dy = dx/l*hw, dy/l*hw
	nx, ny := -dy, dx

	ax, ay := a.X-dx, a.Y-dy
	bx, by := b.X+dx, b.Y+dy
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
