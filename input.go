package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// MouseButtonPrimary is the only button widgets react to.
const MouseButtonPrimary = MouseButtonLeft

// Key represents a keyboard key. Only the keys a backend needs to report
// are listed; everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyQ:
		return "Q"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	default:
		return "?"
	}
}

// Event is one input event delivered by a backend. The set of events is
// closed: only the types in this file implement it.
type Event interface{ isEvent() }

// EventPointerMove reports the pointer position in pixel coordinates.
type EventPointerMove struct{ X, Y float32 }

// EventButtonDown reports a mouse button press.
type EventButtonDown struct{ Button MouseButton }

// EventButtonUp reports a mouse button release.
type EventButtonUp struct{ Button MouseButton }

// EventKeyDown reports a key press.
type EventKeyDown struct{ Key Key }

// EventKeyUp reports a key release.
type EventKeyUp struct{ Key Key }

// EventScroll reports wheel movement.
type EventScroll struct{ DX, DY float32 }

// EventResize reports a new window size in pixels.
type EventResize struct{ Width, Height int }

// EventQuit reports that the window was asked to close.
type EventQuit struct{}

func (EventPointerMove) isEvent() {}
func (EventButtonDown) isEvent()  {}
func (EventButtonUp) isEvent()    {}
func (EventKeyDown) isEvent()     {}
func (EventKeyUp) isEvent()       {}
func (EventScroll) isEvent()      {}
func (EventResize) isEvent()      {}
func (EventQuit) isEvent()        {}

// Action is the outcome of processing one event.
type Action int

const (
	// ActionContinue means keep running.
	ActionContinue Action = iota
	// ActionQuit means the application should terminate.
	ActionQuit
	// ActionResize means the pixel target must be recreated at the size
	// carried by the event. Context.ProcessEvent never returns it.
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionQuit:
		return "quit"
	case ActionResize:
		return "resize"
	default:
		return "unknown"
	}
}

// InputState tracks the single pointer and the primary button.
//
// released is an edge pulse: it turns true on the button-up event and is
// cleared by the next event that is not pointer, button, key-up, resize or
// quit, or by the end of the frame, whichever comes first.
type InputState struct {
	MouseX, MouseY float32

	pressed  bool
	released bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// MousePos returns the last observed pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown returns true while the primary button is held.
func (s *InputState) MouseDown() bool {
	return s.pressed
}

// MouseReleased returns true during the pulse that follows a primary
// button release.
func (s *InputState) MouseReleased() bool {
	return s.released
}

// Process applies one event to the state.
func (s *InputState) Process(ev Event) Action {
	switch e := ev.(type) {
	case EventPointerMove:
		s.MouseX, s.MouseY = e.X, e.Y
	case EventButtonDown:
		if e.Button != MouseButtonPrimary {
			s.consumeRelease()
			break
		}
		s.pressed = true
		s.released = false
	case EventButtonUp:
		if e.Button != MouseButtonPrimary {
			s.consumeRelease()
			break
		}
		s.pressed = false
		s.released = true
	case EventKeyUp:
		if e.Key == KeyEscape || e.Key == KeyQ {
			return ActionQuit
		}
	case EventResize:
		return ActionResize
	case EventQuit:
		return ActionQuit
	case EventKeyDown, EventScroll:
		s.consumeRelease()
	case nil:
	}
	return ActionContinue
}

// consumeRelease ends the release pulse.
func (s *InputState) consumeRelease() {
	s.released = false
}
