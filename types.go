package gui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Hit reports whether p lies inside the rectangle, edges included.
// The far bound is tested relative to the origin, (p - origin) <= size,
// rather than against origin + size. Rectangles without a positive area
// are never hit.
func (r Rect) Hit(p Vec2) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X-r.X <= r.W &&
		p.Y >= r.Y && p.Y-r.Y <= r.H
}

// Color is an opaque RGB color with channels in [0,1].
type Color struct {
	R, G, B float32
}

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// absf returns the absolute value of v.
func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
