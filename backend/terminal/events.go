package terminal

import (
	"github.com/gdamore/tcell/v2"

	gui "github.com/go-theft-auto/pixelgui"
)

// Events starts reading the terminal and returns the converted events. The
// channel is closed when the screen is finalized. Call it once.
func (t *Target) Events() <-chan gui.Event {
	ch := make(chan gui.Event, 64)

	go func() {
		defer close(ch)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			for _, out := range t.events.convert(ev) {
				ch <- out
			}
		}
	}()

	return ch
}

// converter turns tcell events into gui events. Terminals report button
// state, not transitions, so it remembers the last button mask.
type converter struct {
	cellW, cellH int
	buttons      tcell.ButtonMask
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button gui.MouseButton
}{
	{tcell.ButtonPrimary, gui.MouseButtonLeft},
	{tcell.ButtonSecondary, gui.MouseButtonRight},
	{tcell.ButtonMiddle, gui.MouseButtonMiddle},
}

func (c *converter) convert(ev tcell.Event) []gui.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return c.mouse(ev)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []gui.Event{gui.EventQuit{}}
		}
		// Terminals only report presses.
		k := tcellKeyToGUIKey(ev)
		return []gui.Event{gui.EventKeyDown{Key: k}, gui.EventKeyUp{Key: k}}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols <= 0 || rows <= 0 {
			return nil
		}
		return []gui.Event{gui.EventResize{Width: cols * c.cellW, Height: rows * c.cellH}}

	default:
		return nil
	}
}

func (c *converter) mouse(ev *tcell.EventMouse) []gui.Event {
	col, row := ev.Position()
	out := []gui.Event{gui.EventPointerMove{
		X: float32(col*c.cellW + c.cellW/2),
		Y: float32(row*c.cellH + c.cellH/2),
	}}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out = append(out, gui.EventScroll{DY: 1})
	case buttons&tcell.WheelDown != 0:
		out = append(out, gui.EventScroll{DY: -1})
	case buttons&tcell.WheelLeft != 0:
		out = append(out, gui.EventScroll{DX: -1})
	case buttons&tcell.WheelRight != 0:
		out = append(out, gui.EventScroll{DX: 1})
	}

	for _, b := range buttonMap {
		was := c.buttons&b.mask != 0
		is := buttons&b.mask != 0
		switch {
		case is && !was:
			out = append(out, gui.EventButtonDown{Button: b.button})
		case was && !is:
			out = append(out, gui.EventButtonUp{Button: b.button})
		}
	}
	c.buttons = buttons

	return out
}

// tcellKeyToGUIKey maps tcell keys to GUI keys.
func tcellKeyToGUIKey(ev *tcell.EventKey) gui.Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return gui.KeyEscape
	case tcell.KeyEnter:
		return gui.KeyEnter
	case tcell.KeyTab:
		return gui.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return gui.KeyBackspace
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return gui.KeyQ
		case ' ':
			return gui.KeySpace
		}
	}
	return gui.KeyUnknown
}
