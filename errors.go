package gui

import "errors"

// Contract violations. These are raised as panics, not returned.
var (
	// ErrFrameActive is raised when Begin is called before the previous
	// frame ended, or when events are processed during a frame.
	ErrFrameActive = errors.New("gui: frame already active")

	// ErrFrameEnded is raised when a Frame is used after End or Abort.
	ErrFrameEnded = errors.New("gui: frame already ended")

	// ErrNoTarget is raised when Begin is called with a nil target.
	ErrNoTarget = errors.New("gui: nil pixel target")

	// ErrNoOptions is raised when a radio group has no labels.
	ErrNoOptions = errors.New("gui: radio group needs at least one label")
)

// Runtime failures returned by Begin and End.
var (
	ErrResizeFailed  = errors.New("gui: resize pixel target")
	ErrLockFailed    = errors.New("gui: lock pixel target")
	ErrSurfaceFailed = errors.New("gui: create drawing surface")
	ErrPresentFailed = errors.New("gui: present pixel target")
)

// ErrUnknownTheme is returned by ThemeByName.
var ErrUnknownTheme = errors.New("gui: unknown theme")
