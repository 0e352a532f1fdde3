package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pixelgui"
)

// EventQueue collects GLFW callbacks as gui events.
type EventQueue struct {
	window *glfw.Window
	events []gui.Event
}

// NewEventQueue installs input callbacks on window. Only one EventQueue may
// be attached to a window.
func NewEventQueue(window *glfw.Window) *EventQueue {
	q := &EventQueue{window: window}

	// Setup callbacks
	window.SetKeyCallback(q.keyCallback)
	window.SetMouseButtonCallback(q.mouseButtonCallback)
	window.SetScrollCallback(q.scrollCallback)
	window.SetCursorPosCallback(q.cursorPosCallback)
	window.SetSizeCallback(q.sizeCallback)
	window.SetCloseCallback(q.closeCallback)

	return q
}

// Poll processes pending window events and returns them in arrival order.
// The returned slice is only valid until the next call.
func (q *EventQueue) Poll() []gui.Event {
	q.events = q.events[:0]
	glfw.PollEvents()
	return q.events
}

// Wait is like Poll but sleeps until an event arrives or timeout seconds
// have passed.
func (q *EventQueue) Wait(timeout float64) []gui.Event {
	q.events = q.events[:0]
	glfw.WaitEventsTimeout(timeout)
	return q.events
}

func (q *EventQueue) push(ev gui.Event) {
	q.events = append(q.events, ev)
}

func (q *EventQueue) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)

	switch action {
	case glfw.Press, glfw.Repeat:
		q.push(gui.EventKeyDown{Key: guiKey})
	case glfw.Release:
		q.push(gui.EventKeyUp{Key: guiKey})
	}
}

func (q *EventQueue) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton, ok := glfwMouseButtonToGUI(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		q.push(gui.EventButtonDown{Button: guiButton})
	case glfw.Release:
		q.push(gui.EventButtonUp{Button: guiButton})
	}
}

func (q *EventQueue) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	q.push(gui.EventScroll{DX: float32(xoff), DY: float32(yoff)})
}

func (q *EventQueue) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	q.push(gui.EventPointerMove{X: float32(xpos), Y: float32(ypos)})
}

// sizeCallback reports the window size in screen coordinates, which is the
// coordinate space of the cursor.
func (q *EventQueue) sizeCallback(w *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized
		return
	}
	q.push(gui.EventResize{Width: width, Height: height})
}

func (q *EventQueue) closeCallback(w *glfw.Window) {
	q.push(gui.EventQuit{})
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyQ:
		return gui.KeyQ
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	default:
		return gui.KeyUnknown
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
