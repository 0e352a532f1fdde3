package gui

import "math"

// radioRow is one option of a radio group. Rows are stacked without gaps,
// so Top of row k+1 equals Top+Height of row k.
type radioRow struct {
	Top        float32
	Height     float32 // max(TextHeight, RadioSize)
	TextHeight float32
}

func (r radioRow) center() float32 {
	return r.Top + r.Height/2
}

// hit reports whether a pointer at height py is on this row's label band.
func (r radioRow) hit(py float32) bool {
	return absf(py-r.center()) < r.TextHeight/2
}

// radioLayout is the geometry of a radio group, rebuilt on every call.
type radioLayout struct {
	bounds Rect
	rows   []radioRow
}

// layoutRadioGroup stacks one row per measured label below y+Padding.
func layoutRadioGroup(x, y float32, widths, heights []float32) radioLayout {
	rows := make([]radioRow, len(heights))
	top := y + Padding
	var widest float32
	for k, th := range heights {
		rows[k] = radioRow{Top: top, Height: maxf(th, RadioSize), TextHeight: th}
		top += rows[k].Height
		widest = maxf(widest, widths[k])
	}

	return radioLayout{
		bounds: Rect{
			X: x,
			Y: y,
			W: widest + 2*Padding + RadioSize,
			H: top - y + Padding,
		},
		rows: rows,
	}
}

// RadioGroup draws one radio button per label, stacked vertically, and
// sets *state to the index of the option under the pointer when the primary
// button is released. It returns true if *state was set this frame.
//
// Only the vertical position picks the row: anywhere inside the group's
// bounding box that is level with a label counts as that label.
//
// RadioGroup panics if labels is empty.
func (f *Frame) RadioGroup(x, y float32, labels []string, state *int) bool {
	f.mustBeActive()
	if len(labels) == 0 {
		panic(ErrNoOptions)
	}
	ctx := f.ctx
	cv := f.canvas
	theme := ctx.theme

	widths := make([]float32, len(labels))
	heights := make([]float32, len(labels))
	for k, label := range labels {
		widths[k], heights[k] = f.measure(label)
	}
	layout := layoutRadioGroup(x, y, widths, heights)

	const ringRadius = RadioSize/2 - 1
	const dotRadius = RadioSize/2 - 3
	cx := x + Padding + RadioSize/2

	f.setColor(theme.Foreground)
	for k, row := range layout.rows {
		cv.NewPath()
		cv.Arc(cx, row.center(), ringRadius, 0, 2*math.Pi)
		cv.Stroke()
		if *state == k {
			cv.NewPath()
			cv.Arc(cx, row.center(), dotRadius, 0, 2*math.Pi)
			cv.Fill()
		}
	}
	for k, row := range layout.rows {
		f.drawText(x+Padding+RadioSize, row.center()+row.TextHeight/2, labels[k], theme.Foreground)
	}

	if !ctx.isHovered(layout.bounds) {
		return false
	}

	py := ctx.input.MousePos().Y
	for k, row := range layout.rows {
		if !row.hit(py) {
			continue
		}

		f.setColor(theme.Accent)
		cv.NewPath()
		cv.Arc(cx, row.center(), dotRadius, 0, 2*math.Pi)
		if ctx.input.MouseDown() {
			cv.Fill()
		} else {
			cv.Stroke()
		}

		if ctx.isClicked("radio", layout.bounds) {
			*state = k
			return true
		}
		return false
	}
	return false
}
