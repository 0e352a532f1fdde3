package gui

import "fmt"

// Frame is the token for one frame bracket. Widgets are methods on Frame,
// so they can only be drawn between Begin and End. A Frame is consumed by
// End or Abort; using it afterwards panics with ErrFrameEnded.
type Frame struct {
	ctx    *Context
	target PixelTarget
	canvas Canvas
	ended  bool
}

// Begin starts a new frame on target: it applies a pending resize, locks
// the pixels, wraps them in a canvas and paints the theme background.
//
// Begin panics if a frame is already active. If it returns an error the
// target is left unlocked and no frame is active.
func (ctx *Context) Begin(target PixelTarget) (*Frame, error) {
	if ctx.frame != nil {
		panic(ErrFrameActive)
	}
	if target == nil {
		panic(ErrNoTarget)
	}

	if r := ctx.pendingResize; r != nil {
		ctx.pendingResize = nil
		if err := target.Resize(r.Width, r.Height); err != nil {
			ctx.logger.Error("resize pixel target", "width", r.Width, "height", r.Height, "err", err)
			return nil, fmt.Errorf("%w to %dx%d: %w", ErrResizeFailed, r.Width, r.Height, err)
		}
	}

	buf, err := target.Lock()
	if err != nil {
		ctx.logger.Error("lock pixel target", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrLockFailed, err)
	}

	cv, err := ctx.newCanvas(buf)
	if err != nil {
		target.Unlock()
		ctx.logger.Error("create drawing surface", "width", buf.Width, "height", buf.Height, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSurfaceFailed, err)
	}

	f := &Frame{ctx: ctx, target: target, canvas: cv}
	ctx.target = target
	ctx.canvas = cv
	ctx.frame = f
	ctx.FrameCount++

	bg := ctx.theme.Background
	cv.SetColor(bg.R, bg.G, bg.B)
	cv.Paint()

	return f, nil
}

// End finishes the frame: it clears the release pulse, closes the canvas,
// unlocks the target and presents it. The target is always unlocked, even
// when presenting fails.
func (f *Frame) End() error {
	target := f.release()
	if err := target.Present(); err != nil {
		return fmt.Errorf("%w: %w", ErrPresentFailed, err)
	}
	return nil
}

// Abort finishes the frame like End but does not present it. Use it to
// leave a frame early, for example on quit.
func (f *Frame) Abort() {
	f.release()
}

// Ended reports whether End or Abort has been called.
func (f *Frame) Ended() bool {
	return f.ended
}

// Canvas returns the drawing surface for custom drawing inside the frame.
func (f *Frame) Canvas() Canvas {
	f.mustBeActive()
	return f.canvas
}

// Context returns the context the frame belongs to.
func (f *Frame) Context() *Context {
	return f.ctx
}

// release tears the frame down and returns the target it held.
func (f *Frame) release() PixelTarget {
	f.mustBeActive()
	ctx := f.ctx

	// Frame boundary ends the release pulse even if no widget consumed it.
	ctx.input.consumeRelease()

	f.canvas.Close()
	ctx.canvas = nil
	ctx.target = nil
	ctx.frame = nil
	f.ended = true

	f.target.Unlock()
	return f.target
}

func (f *Frame) mustBeActive() {
	if f.ended {
		panic(ErrFrameEnded)
	}
}

// RunFrame begins a frame on target, calls draw, and always ends the frame.
// The frame is presented when draw returns nil and aborted when it returns
// an error or panics; the error (or panic) is passed through.
//
// Usage:
//
//	err := ctx.RunFrame(target, func(f *gui.Frame) error {
//	    if f.Button(10, 10, "Quit") {
//	        return errQuit
//	    }
//	    return nil
//	})
func (ctx *Context) RunFrame(target PixelTarget, draw func(f *Frame) error) error {
	f, err := ctx.Begin(target)
	if err != nil {
		return err
	}

	defer func() {
		if !f.ended {
			f.Abort()
		}
	}()

	if err := draw(f); err != nil {
		return err
	}
	if f.ended {
		return nil
	}
	return f.End()
}
