package main

import (
	"errors"
	"fmt"

	gui "github.com/go-theft-auto/pixelgui"
)

// errQuit is returned by a frame when the user asked to leave.
var errQuit = errors.New("quit requested")

var themeNames = []string{"light", "dark"}

// demo is the state of every widget in the demo window. It lives for the
// whole run and is passed to the widgets by reference on every frame.
type demo struct {
	ctx *gui.Context

	count   int
	pressed string

	checked bool
	status  string

	theme int // index into themeNames

	red, green, blue int
	sample           gui.Color
}

func newDemo(ctx *gui.Context, theme string) *demo {
	d := &demo{
		ctx:     ctx,
		pressed: "Not pressed",
		status:  "Not checked",
		theme:   1,
	}
	for i, name := range themeNames {
		if name == theme {
			d.theme = i
		}
	}
	d.applyTheme()
	return d
}

func (d *demo) applyTheme() {
	if d.theme == 0 {
		d.ctx.ApplyLight()
	} else {
		d.ctx.ApplyDark()
	}
}

// draw lays out one frame. It returns errQuit when Close was clicked.
func (d *demo) draw(f *gui.Frame) error {
	// Button and label showing a counter
	if f.Button(10, 10, "Test") {
		d.count++
		d.pressed = fmt.Sprintf("Pressed %d times", d.count)
	}
	f.Label(60, 18, d.pressed)

	if f.Button(10, 260, "Close") {
		return errQuit
	}

	if f.Checkbox(10, 50, "Checkbox", &d.checked) {
		if d.checked {
			d.status = "Checked"
		} else {
			d.status = "Not checked"
		}
	}
	f.Label(80, 51.5, d.status)

	f.Label(10, 70, "Theme")
	if f.RadioGroup(10, 80, themeNames, &d.theme) {
		// Takes effect from the next widget on.
		d.applyTheme()
	}

	f.Label(10, 124, "Red")
	f.Label(10, 154, "Green")
	f.Label(10, 184, "Blue")
	if f.Slider(50, 120, &d.red) {
		d.sample.R = float32(d.red) / gui.SliderMax
	}
	if f.Slider(50, 150, &d.green) {
		d.sample.G = float32(d.green) / gui.SliderMax
	}
	if f.Slider(50, 180, &d.blue) {
		d.sample.B = float32(d.blue) / gui.SliderMax
	}
	f.Label(346, 124, fmt.Sprint(d.red))
	f.Label(346, 154, fmt.Sprint(d.green))
	f.Label(346, 184, fmt.Sprint(d.blue))

	f.ColorSample(200, 10, 100, 100, d.sample)

	return nil
}
