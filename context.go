package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is the default logger of every Context.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// Context holds all state that outlives a frame: the pointer, the theme and
// the pending window size. One Context drives one window.
//
// The pixel target and canvas fields are only set between Begin and End.
type Context struct {
	// Frame-scoped, nil outside a bracket
	target PixelTarget
	canvas Canvas
	frame  *Frame

	input         *InputState
	theme         Theme
	pendingResize *EventResize

	newCanvas CanvasFactory
	logger    *slog.Logger

	// FrameCount is the number of frames begun so far.
	FrameCount uint64
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTheme sets the initial theme.
func WithTheme(theme Theme) ContextOption {
	return func(ctx *Context) { ctx.theme = theme }
}

// WithCanvasFactory replaces the drawing surface implementation.
func WithCanvasFactory(f CanvasFactory) ContextOption {
	return func(ctx *Context) { ctx.newCanvas = f }
}

// WithLogger sets the logger used for debug and error records.
func WithLogger(l *slog.Logger) ContextOption {
	return func(ctx *Context) { ctx.logger = l }
}

// NewContext creates a new GUI context. The dark theme is active unless
// WithTheme says otherwise.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		input:     NewInputState(),
		theme:     DarkTheme(),
		newCanvas: NewCanvas,
		logger:    guiLogger,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// Input returns the pointer state. It must not be modified during a frame.
func (ctx *Context) Input() *InputState {
	return ctx.input
}

// Theme returns the active theme.
func (ctx *Context) Theme() Theme {
	return ctx.theme
}

// SetTheme replaces the active theme. Widgets drawn afterwards use it.
func (ctx *Context) SetTheme(theme Theme) {
	ctx.theme = theme
}

// ApplyLight switches to the light theme.
func (ctx *Context) ApplyLight() {
	ctx.theme.ApplyLight()
}

// ApplyDark switches to the dark theme.
func (ctx *Context) ApplyDark() {
	ctx.theme.ApplyDark()
}

// SetLogger replaces the logger, for example when a backend takes over
// the terminal the default logger writes to.
func (ctx *Context) SetLogger(l *slog.Logger) {
	ctx.logger = l
}

// InFrame reports whether a frame is between Begin and End.
func (ctx *Context) InFrame() bool {
	return ctx.frame != nil
}

// PendingResize returns the size requested by the last resize event that
// has not been applied to a pixel target yet.
func (ctx *Context) PendingResize() (width, height int, ok bool) {
	if ctx.pendingResize == nil {
		return 0, 0, false
	}
	return ctx.pendingResize.Width, ctx.pendingResize.Height, true
}

// ProcessEvent feeds one input event to the pointer state machine. It
// returns ActionQuit when the application should terminate and
// ActionContinue otherwise. A resize is remembered and applied to the pixel
// target by the next Begin.
//
// Events must be processed between frames, never inside one.
func (ctx *Context) ProcessEvent(ev Event) Action {
	if ctx.frame != nil {
		panic(ErrFrameActive)
	}

	act := ctx.input.Process(ev)
	if act != ActionResize {
		return act
	}

	r := ev.(EventResize)
	ctx.pendingResize = &r
	ctx.logger.Debug("resize requested", "width", r.Width, "height", r.Height)
	return ActionContinue
}

// Helper methods for widget interaction

// isHovered returns true if the pointer is inside rect.
func (ctx *Context) isHovered(rect Rect) bool {
	return rect.Hit(ctx.input.MousePos())
}

// isClicked returns true if the button was released over rect.
func (ctx *Context) isClicked(widget string, rect Rect) bool {
	clicked := ctx.input.MouseReleased() && ctx.isHovered(rect)
	if clicked {
		ctx.logger.Debug("click detected",
			"widget", widget,
			"rect", rect,
			"mouse", ctx.input.MousePos())
	}
	return clicked
}
