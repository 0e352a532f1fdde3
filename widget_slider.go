package gui

// SliderMax is the largest value a Slider produces.
const SliderMax = 255

// sliderValueAt converts a pointer x coordinate to a slider value for a
// track starting at trackX. One pixel is one step.
func sliderValueAt(trackX, px float32) int {
	return int(clampf(px-trackX, 0, SliderMax) + 0.5)
}

// Slider draws a horizontal track SliderWidth pixels long starting at
// x+Padding and a knob at *value, which is kept within [0, SliderMax].
// While the primary button is held over the track the value follows the
// pointer. It returns true if *value changed this frame.
//
// Usage:
//
//	if f.Slider(50, 120, &red) {
//	    sample.R = float32(red) / gui.SliderMax
//	}
func (f *Frame) Slider(x, y float32, value *int) bool {
	f.mustBeActive()
	ctx := f.ctx
	cv := f.canvas
	theme := ctx.theme

	trackX := x + Padding
	rect := Rect{X: trackX, Y: y, W: SliderWidth, H: 2 * Padding}

	old := *value
	if ctx.isHovered(rect) && ctx.input.MouseDown() {
		*value = sliderValueAt(trackX, ctx.input.MousePos().X)
	}
	*value = min(max(*value, 0), SliderMax)

	// Track
	f.setColor(theme.Foreground)
	cv.NewPath()
	cv.MoveTo(trackX, y+Padding)
	cv.RelLineTo(SliderWidth, 0)
	cv.Stroke()

	// Knob
	f.setColor(theme.Accent)
	cv.Rectangle(trackX+float32(*value)-2, y+2, 4, rect.H-4)
	cv.Fill()

	changed := *value != old
	if changed {
		ctx.logger.Debug("slider moved", "from", old, "to", *value)
	}
	return changed
}
