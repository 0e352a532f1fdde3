package gui

// Label draws text with its baseline at (x+Padding, y+Padding+height).
func (f *Frame) Label(x, y float32, text string) {
	f.mustBeActive()
	_, th := f.measure(text)
	f.drawText(x+Padding, y+Padding+th, text, f.ctx.theme.Foreground)
}

// Button draws a padded outlined box around text and returns true if the
// primary button was released over it this frame.
//
// While hovered an accent rectangle is drawn inside the box: filled while
// the button is held, outlined otherwise.
func (f *Frame) Button(x, y float32, text string) bool {
	f.mustBeActive()
	ctx := f.ctx
	theme := ctx.theme

	tw, th := f.measure(text)
	rect := Rect{X: x, Y: y, W: 2*Padding + tw, H: 2*Padding + th}

	f.strokeRect(rect, theme.Foreground)

	clicked := false
	if ctx.isHovered(rect) {
		f.highlightRect(Rect{X: x + 1, Y: y + 1, W: rect.W - 2, H: rect.H - 2})
		clicked = ctx.isClicked("button", rect)
	}

	f.drawText(x+Padding, y+Padding+th, text, theme.Foreground)
	return clicked
}

// Checkbox draws a square box followed by text and flips *state when the
// primary button is released over the box or its label. It returns true
// if *state changed this frame.
func (f *Frame) Checkbox(x, y float32, text string, state *bool) bool {
	f.mustBeActive()
	ctx := f.ctx
	theme := ctx.theme
	const box = CheckboxSize

	tw, th := f.measure(text)
	// The hit region covers the label, only the square is outlined.
	hit := Rect{X: x, Y: y, W: 2*Padding + tw + box, H: maxf(2*Padding+th, box)}

	f.strokeRect(Rect{X: x, Y: y, W: box, H: box}, theme.Foreground)

	changed := false
	if ctx.isHovered(hit) {
		f.highlightRect(Rect{X: x + 1, Y: y + 1, W: box - 2, H: box - 2})
		if ctx.isClicked("checkbox", hit) {
			*state = !*state
			changed = true
		}
	}

	if *state {
		f.drawCheckmark(x, y, box, theme.Foreground)
	}

	f.drawText(x+box+Padding, y+box/2+th/2, text, theme.Foreground)
	return changed
}

// ColorSample draws a w x h swatch filled with c and outlined in the
// foreground color.
func (f *Frame) ColorSample(x, y, w, h float32, c Color) {
	f.mustBeActive()
	cv := f.canvas

	f.setColor(c)
	cv.Rectangle(x, y, w, h)
	cv.Fill()

	f.strokeRect(Rect{X: x, Y: y, W: w, H: h}, f.ctx.theme.Foreground)
}

// Drawing helpers shared by the widgets

func (f *Frame) setColor(c Color) {
	f.canvas.SetColor(c.R, c.G, c.B)
}

// measure returns the ink width and height of text. Empty text measures
// as zero.
func (f *Frame) measure(text string) (w, h float32) {
	if text == "" {
		return 0, 0
	}
	ext := f.canvas.TextExtents(text)
	return ext.Width, ext.Height
}

func (f *Frame) drawText(x, y float32, text string, c Color) {
	if text == "" {
		return
	}
	cv := f.canvas
	f.setColor(c)
	cv.NewPath()
	cv.MoveTo(x, y)
	cv.ShowText(text)
}

func (f *Frame) strokeRect(r Rect, c Color) {
	f.setColor(c)
	f.canvas.Rectangle(r.X, r.Y, r.W, r.H)
	f.canvas.Stroke()
}

// highlightRect draws the accent feedback for a hovered widget.
func (f *Frame) highlightRect(r Rect) {
	cv := f.canvas
	f.setColor(f.ctx.theme.Accent)
	cv.Rectangle(r.X, r.Y, r.W, r.H)
	if f.ctx.input.MouseDown() {
		cv.Fill()
	} else {
		cv.Stroke()
	}
}

// drawCheckmark draws an X across the size x size square at (x, y).
func (f *Frame) drawCheckmark(x, y, size float32, c Color) {
	cv := f.canvas
	f.setColor(c)
	cv.NewPath()
	cv.MoveTo(x, y)
	cv.RelLineTo(size, size)
	cv.RelMoveTo(0, -size)
	cv.RelLineTo(-size, size)
	cv.Stroke()
}
