/*
Package gui provides a minimal immediate-mode GUI that draws straight into a
pixel buffer through a vector drawing surface.

# Overview

The UI is described again every frame. There is no widget tree and no widget
identity: every call recomputes its geometry from its arguments, hit-tests
the pointer, draws itself and returns the interaction result. Widget state
(a checkbox flag, a radio selection, a slider value) belongs to the caller
and is passed by pointer on every frame.

# Quick Start

	ctx := gui.NewContext(gui.WithTheme(gui.DarkTheme()))
	target := gui.NewImageTarget(400, 300) // or opengl.NewTarget, terminal.Open

	var checked bool
	for running {
	    for _, ev := range pollEvents() {
	        if ctx.ProcessEvent(ev) == gui.ActionQuit {
	            running = false
	        }
	    }

	    err := ctx.RunFrame(target, func(f *gui.Frame) error {
	        if f.Button(10, 10, "Close") {
	            return errQuit
	        }
	        f.Checkbox(10, 50, "Checkbox", &checked)
	        return nil
	    })
	}

# Frame Lifetime

Begin locks the PixelTarget, wraps the pixels in a Canvas and paints the
theme background. It returns a *Frame; every widget is a method on it.
End clears the release pulse, closes the canvas, unlocks the target and
presents it. Abort does the same without presenting. After End or Abort the
Frame panics on use, so drawing outside a frame cannot go unnoticed.

RunFrame wraps Begin and End and always releases the target, also when the
draw function returns an error or panics.

	Begin twice without End     panics with ErrFrameActive
	ProcessEvent inside a frame panics with ErrFrameActive
	Frame used after End/Abort  panics with ErrFrameEnded
	RadioGroup without labels   panics with ErrNoOptions
	Target cannot be locked     Begin returns ErrLockFailed
	Canvas cannot be created    Begin returns ErrSurfaceFailed (target unlocked)
	Resize cannot be applied    Begin returns ErrResizeFailed
	Present fails               End returns ErrPresentFailed (target unlocked)

# Input Events

Backends deliver a closed set of events: EventPointerMove, EventButtonDown,
EventButtonUp, EventKeyDown, EventKeyUp, EventScroll, EventResize and
EventQuit. Only the primary button drives widgets.

Primary button up sets a release pulse. Every widget queried in the next
frame sees it, so exactly one frame observes a click. The pulse is cleared
by the end of that frame, by the next primary button down, or earlier by a
key press, a scroll or a non-primary button event. Pointer moves, key
releases, resizes and quit requests leave it alone.

Escape or Q released, and EventQuit, make ProcessEvent return ActionQuit.
EventResize is remembered and applied to the target by the next Begin.

# Complete Component List

	f.Label(x, y, text)                    Text, baseline at (x+Padding, y+Padding+height)
	f.Button(x, y, text) bool              Outlined box, true on release over it
	f.Checkbox(x, y, text, &b) bool        Square with X mark, toggles on release
	f.RadioGroup(x, y, labels, &i) bool    Stacked options, selects on release
	f.Slider(x, y, &v) bool                0..255 track, follows the held pointer
	f.ColorSample(x, y, w, h, color)       Filled swatch
	f.Canvas()                             Raw drawing for custom content

Hovered widgets draw an accent highlight, filled while the button is held
and outlined otherwise.

# Spacing Constants

	Padding       10   Space between a widget edge and its text
	CheckboxSize  12   Side of the checkbox square
	RadioSize     14   Diameter of a radio circle
	SliderWidth   256  Length of a slider track

# Hit Testing

A widget is hit when the pointer p satisfies

	p.X >= x && p.X-x <= w && p.Y >= y && p.Y-y <= h

Edges count as inside. Rectangles without positive width and height are
never hit.

A checkbox reacts on its box and its label. A radio group first checks the
pointer against the whole group, then picks the row whose label band
contains the pointer's height; the horizontal position within the group is
not checked again per row.

# Themes

A Theme holds the foreground, background and accent colors. LightTheme and
DarkTheme are the Solarized presets; ThemeByName looks them up by name.
Changing the theme takes effect from the next widget drawn.

# Backends

	backend/opengl    GLFW window, streaming texture, callback event queue
	backend/terminal  tcell screen, half block cells, mouse and key events
	ImageTarget       In-memory image for tests and screenshots

# Logging

Debug records (clicks, resizes) go to a log/slog logger. SetVerbose(true)
enables them for the default logger; WithLogger or SetLogger replace it.
*/
package gui
