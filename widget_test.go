package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/pixelgui"
)

// harness drives a Context through events and frames with recorded drawing.
type harness struct {
	t      *testing.T
	ctx    *gui.Context
	rec    *gui.CanvasRecorder
	target *gui.FakeTarget
}

func newHarness(t *testing.T, opts ...gui.ContextOption) *harness {
	t.Helper()
	ctx, rec := gui.NewRecordingContext(opts...)
	return &harness{t: t, ctx: ctx, rec: rec, target: gui.NewFakeTarget(400, 300)}
}

func (h *harness) send(events ...gui.Event) {
	for _, ev := range events {
		h.ctx.ProcessEvent(ev)
	}
}

func (h *harness) moveTo(x, y float32) { h.send(gui.EventPointerMove{X: x, Y: y}) }
func (h *harness) press() { h.send(gui.EventButtonDown{Button: gui.MouseButtonLeft}) }
func (h *harness) release() { h.send(gui.EventButtonUp{Button: gui.MouseButtonLeft}) }

// frame runs one frame and returns what was drawn.
func (h *harness) frame(draw func(f *gui.Frame)) *gui.RecordingCanvas {
	h.t.Helper()
	err := h.ctx.RunFrame(h.target, func(f *gui.Frame) error {
		draw(f)
		return nil
	})
	if err != nil {
		h.t.Fatalf("frame failed: %v", err)
	}
	return h.rec.Last()
}

func TestLabel(t *testing.T) {
	h := newHarness(t)
	cv := h.frame(func(f *gui.Frame) { f.Label(60, 18, "Not pressed") })

	x, y, ok := cv.TextAt("Not pressed")
	if !ok {
		t.Fatal("label text not drawn")
	}
	if x != 60+gui.Padding || y != 18+gui.Padding+gui.FakeTextHeight {
		t.Errorf("label baseline = (%v, %v), want (70, 38)", x, y)
	}
	if n := cv.CountIn("ShowText", gui.DarkTheme().Foreground); n != 1 {
		t.Errorf("foreground ShowText = %d, want 1", n)
	}
}

func TestEmptyLabelDrawsNothing(t *testing.T) {
	h := newHarness(t)
	cv := h.frame(func(f *gui.Frame) {
		f.Label(0, 0, "")
		f.Button(0, 0, "")
	})
	if n := len(cv.Calls("ShowText")); n != 0 {
		t.Errorf("ShowText called %d times for empty text", n)
	}
}

func TestButtonGeometry(t *testing.T) {
	h := newHarness(t)
	cv := h.frame(func(f *gui.Frame) { f.Button(10, 10, "Test") })

	rects := cv.Calls("Rectangle")
	if len(rects) != 1 {
		t.Fatalf("got %d rectangles without hover, want 1", len(rects))
	}
	want := []float32{10, 10, 2*gui.Padding + 4*gui.FakeGlyphWidth, 2*gui.Padding + gui.FakeTextHeight}
	for i, v := range want {
		if rects[0].Args[i] != v {
			t.Errorf("box = %v, want %v", rects[0].Args, want)
			break
		}
	}
	if x, y, _ := cv.TextAt("Test"); x != 20 || y != 30 {
		t.Errorf("text at (%v, %v), want (20, 30)", x, y)
	}
}

func TestButtonHoverWithoutClick(t *testing.T) {
	h := newHarness(t)
	accent := h.ctx.Theme().Accent
	h.moveTo(15, 15)

	for i := 0; i < 5; i++ {
		var clicked bool
		cv := h.frame(func(f *gui.Frame) { clicked = f.Button(10, 10, "Test") })
		if clicked {
			t.Fatalf("frame %d: hover alone reported a click", i)
		}
		if cv.CountIn("Stroke", accent) != 1 || cv.CountIn("Fill", accent) != 0 {
			t.Errorf("frame %d: hover should stroke the accent rectangle", i)
		}
	}
}

func TestButtonClickFiresOnce(t *testing.T) {
	h := newHarness(t)
	accent := h.ctx.Theme().Accent
	button := func(f *gui.Frame) bool { return f.Button(10, 10, "Test") }

	h.moveTo(15, 15)
	h.press()
	var clicked bool
	cv := h.frame(func(f *gui.Frame) { clicked = button(f) })
	if clicked {
		t.Error("press alone should not click")
	}
	if cv.CountIn("Fill", accent) != 1 {
		t.Error("held button should fill the accent rectangle")
	}

	h.release()
	h.frame(func(f *gui.Frame) { clicked = button(f) })
	if !clicked {
		t.Error("release over the button should click")
	}

	h.frame(func(f *gui.Frame) { clicked = button(f) })
	if clicked {
		t.Error("click must not repeat in the next frame")
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	h := newHarness(t)
	h.moveTo(15, 15)
	h.press()
	h.moveTo(300, 200)
	h.release()

	var clicked bool
	h.frame(func(f *gui.Frame) { clicked = f.Button(10, 10, "Test") })
	if clicked {
		t.Error("release outside the button should not click")
	}
}

func TestReleaseSeenByEveryWidgetInFrame(t *testing.T) {
	h := newHarness(t)
	h.moveTo(15, 15)
	h.press()
	h.release()

	var first, second bool
	h.frame(func(f *gui.Frame) {
		first = f.Button(10, 10, "A")
		second = f.Button(10, 10, "B")
	})
	if !first || !second {
		t.Errorf("clicks = %v, %v; both queries should see the release", first, second)
	}
}

func TestReleaseConsumedByNextEvent(t *testing.T) {
	h := newHarness(t)
	h.moveTo(15, 15)
	h.press()
	h.release()
	h.send(gui.EventKeyDown{Key: gui.KeySpace})

	var clicked bool
	h.frame(func(f *gui.Frame) { clicked = f.Button(10, 10, "Test") })
	if clicked {
		t.Error("release should be consumed by the key event")
	}
}

// Checkbox at (10,50) under the dark theme with the pointer on the box.
func TestCheckboxScenario(t *testing.T) {
	h := newHarness(t, gui.WithTheme(gui.DarkTheme()))
	state := false
	checkbox := func(f *gui.Frame) bool { return f.Checkbox(10, 50, "Checkbox", &state) }
	h.moveTo(15, 54)

	for i, want := range []bool{true, false} {
		h.press()
		var changed bool
		h.frame(func(f *gui.Frame) { changed = checkbox(f) })
		if changed {
			t.Fatalf("cycle %d: press frame reported a change", i)
		}

		h.release()
		h.frame(func(f *gui.Frame) { changed = checkbox(f) })
		if !changed {
			t.Fatalf("cycle %d: release frame should report a change", i)
		}
		if state != want {
			t.Fatalf("cycle %d: state = %v, want %v", i, state, want)
		}
	}
}

func TestCheckboxHoldDoesNotToggle(t *testing.T) {
	h := newHarness(t)
	state := false
	h.moveTo(15, 54)
	h.press()

	for i := 0; i < 4; i++ {
		var changed bool
		h.frame(func(f *gui.Frame) { changed = f.Checkbox(10, 50, "Checkbox", &state) })
		if changed || state {
			t.Fatalf("frame %d: holding toggled the checkbox", i)
		}
	}
}

func TestCheckboxHitRegionIncludesLabel(t *testing.T) {
	// Label "Checkbox" is 56 wide: region is 2*10+56+12 = 88 by 30.
	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"on the box", 15, 54, true},
		{"on the label", 60, 55, true},
		{"right edge", 98, 60, true},
		{"bottom edge", 40, 80, true},
		{"past right edge", 98.5, 60, false},
		{"below", 40, 80.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			state := false
			h.moveTo(tt.x, tt.y)
			h.press()
			h.release()

			var changed bool
			h.frame(func(f *gui.Frame) { changed = f.Checkbox(10, 50, "Checkbox", &state) })
			if changed != tt.want {
				t.Errorf("changed = %v, want %v", changed, tt.want)
			}
		})
	}
}

func TestCheckboxDrawing(t *testing.T) {
	h := newHarness(t)
	state := true
	cv := h.frame(func(f *gui.Frame) { f.Checkbox(10, 50, "Checkbox", &state) })

	if n := len(cv.Calls("RelLineTo")); n != 2 {
		t.Errorf("checkmark lines = %d, want 2", n)
	}
	x, y, _ := cv.TextAt("Checkbox")
	if x != 10+gui.CheckboxSize+gui.Padding || y != 50+gui.CheckboxSize/2+gui.FakeTextHeight/2 {
		t.Errorf("label at (%v, %v), want (32, 61)", x, y)
	}

	state = false
	cv = h.frame(func(f *gui.Frame) { f.Checkbox(10, 50, "Checkbox", &state) })
	if n := len(cv.Calls("RelLineTo")); n != 0 {
		t.Errorf("unchecked box drew %d checkmark lines", n)
	}
}

// Three rows of height 14 starting at y=90: centers 97, 111 and 125.
func TestRadioGroupSelection(t *testing.T) {
	h := newHarness(t)
	labels := []string{"one", "two", "three"}
	state := 0
	radio := func(f *gui.Frame) bool { return f.RadioGroup(10, 80, labels, &state) }

	h.moveTo(30, 111)
	h.press()
	h.release()
	var changed bool
	h.frame(func(f *gui.Frame) { changed = radio(f) })
	if !changed || state != 1 {
		t.Fatalf("click on row 1: changed=%v state=%d", changed, state)
	}

	// Hover and hold on row 2 without releasing.
	h.moveTo(30, 125)
	h.press()
	for n := 0; n < 3; n++ {
		h.frame(func(f *gui.Frame) { changed = radio(f) })
		if changed || state != 1 {
			t.Fatalf("hover on row 2 changed selection: changed=%v state=%d", changed, state)
		}
	}

	h.release()
	h.frame(func(f *gui.Frame) { changed = radio(f) })
	if !changed || state != 2 {
		t.Fatalf("click on row 2: changed=%v state=%d", changed, state)
	}
}

func TestRadioGroupGapBetweenBands(t *testing.T) {
	h := newHarness(t)
	state := 0
	// y=104 is the row boundary: 7 away from both centers, outside both bands.
	h.moveTo(30, 104)
	h.press()
	h.release()

	var changed bool
	cv := h.frame(func(f *gui.Frame) {
		changed = f.RadioGroup(10, 80, []string{"one", "two", "three"}, &state)
	})
	if changed || state != 0 {
		t.Errorf("changed=%v state=%d, want no reaction", changed, state)
	}
	if cv.CountIn("Arc", h.ctx.Theme().Accent) != 0 {
		t.Error("no row should be highlighted")
	}
}

func TestRadioGroupMatchesWholeRowWidth(t *testing.T) {
	h := newHarness(t)
	state := 0
	// Group is 5*7+2*10+14 = 69 wide. x=75 is right of "two" but inside.
	h.moveTo(75, 111)
	h.press()
	h.release()

	var changed bool
	h.frame(func(f *gui.Frame) {
		changed = f.RadioGroup(10, 80, []string{"one", "two", "three"}, &state)
	})
	if !changed || state != 1 {
		t.Errorf("changed=%v state=%d, want row 1", changed, state)
	}

	h.moveTo(80, 125)
	h.press()
	h.release()
	h.frame(func(f *gui.Frame) {
		changed = f.RadioGroup(10, 80, []string{"one", "two", "three"}, &state)
	})
	if changed || state != 1 {
		t.Errorf("outside the group: changed=%v state=%d", changed, state)
	}
}

func TestRadioGroupDrawing(t *testing.T) {
	h := newHarness(t)
	theme := h.ctx.Theme()
	state := 1
	h.moveTo(30, 97)
	h.press()

	cv := h.frame(func(f *gui.Frame) { f.RadioGroup(10, 80, []string{"light", "dark"}, &state) })

	arcs := cv.Calls("Arc")
	// Two rings, one selected dot, one hover dot.
	if len(arcs) != 4 {
		t.Fatalf("arcs = %d, want 4", len(arcs))
	}
	if arcs[0].Args[1] != 97 || arcs[1].Args[1] != 111 || arcs[2].Args[1] != 111 {
		t.Errorf("ring centers = %v, %v, dot center %v", arcs[0].Args[1], arcs[1].Args[1], arcs[2].Args[1])
	}
	if arcs[0].Args[2] != gui.RadioSize/2-1 || arcs[2].Args[2] != gui.RadioSize/2-3 {
		t.Errorf("radii = %v, %v", arcs[0].Args[2], arcs[2].Args[2])
	}
	if cv.CountIn("Fill", theme.Accent) != 1 {
		t.Error("held pointer should fill the hovered dot")
	}
	if x, y, _ := cv.TextAt("dark"); x != 10+gui.Padding+gui.RadioSize || y != 116 {
		t.Errorf("label at (%v, %v), want (34, 116)", x, y)
	}
}

func TestSlider(t *testing.T) {
	h := newHarness(t)
	value := 0
	slider := func(f *gui.Frame) bool { return f.Slider(50, 120, &value) }

	// Track starts at x=60.
	h.moveTo(160, 130)
	var changed bool
	h.frame(func(f *gui.Frame) { changed = slider(f) })
	if changed || value != 0 {
		t.Fatalf("hover moved the slider to %d", value)
	}

	h.press()
	h.frame(func(f *gui.Frame) { changed = slider(f) })
	if !changed || value != 100 {
		t.Fatalf("drag: changed=%v value=%d, want 100", changed, value)
	}

	h.frame(func(f *gui.Frame) { changed = slider(f) })
	if changed {
		t.Error("holding still should not report a change")
	}

	h.moveTo(316, 130)
	h.frame(func(f *gui.Frame) { changed = slider(f) })
	if value != gui.SliderMax {
		t.Errorf("right end = %d, want %d", value, gui.SliderMax)
	}

	h.moveTo(60, 130)
	h.frame(func(f *gui.Frame) { changed = slider(f) })
	if !changed || value != 0 {
		t.Errorf("left end: changed=%v value=%d", changed, value)
	}
}

func TestSliderClampsValue(t *testing.T) {
	h := newHarness(t)
	value := 1000
	h.frame(func(f *gui.Frame) { f.Slider(50, 120, &value) })
	if value != gui.SliderMax {
		t.Errorf("value = %d, want %d", value, gui.SliderMax)
	}
}

func TestColorSample(t *testing.T) {
	h := newHarness(t)
	c := gui.Color{R: 1, G: 0.5}
	cv := h.frame(func(f *gui.Frame) { f.ColorSample(200, 10, 100, 100, c) })

	if cv.CountIn("Fill", c) != 1 {
		t.Error("sample should be filled with its color")
	}
	if cv.CountIn("Stroke", h.ctx.Theme().Foreground) != 1 {
		t.Error("sample should be outlined in the foreground color")
	}
}

func TestThemeSwitchTakesEffectNextWidget(t *testing.T) {
	h := newHarness(t)
	h.ctx.ApplyLight()
	cv := h.frame(func(f *gui.Frame) { f.Label(0, 0, "x") })

	if cv.Ops[0].Color != gui.LightTheme().Background {
		t.Error("background should use the light theme")
	}
	if cv.CountIn("ShowText", gui.LightTheme().Foreground) != 1 {
		t.Error("label should use the light foreground")
	}
}
