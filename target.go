package gui

import (
	"errors"
	"fmt"
	"image"
)

// ErrTargetLocked is returned by ImageTarget when it is locked twice or
// resized while locked.
var ErrTargetLocked = errors.New("gui: pixel target is locked")

// ImageTarget is an in-memory PixelTarget backed by an *image.RGBA. It is
// used for headless rendering, screenshots and tests, and as the frame
// buffer of the terminal backend.
type ImageTarget struct {
	img      *image.RGBA
	locked   bool
	presents int

	// OnPresent, if set, is called with the image on every Present.
	OnPresent func(img *image.RGBA) error
}

// NewImageTarget creates a width x height target.
func NewImageTarget(width, height int) *ImageTarget {
	return &ImageTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Lock implements PixelTarget.
func (t *ImageTarget) Lock() (PixelBuffer, error) {
	if t.locked {
		return PixelBuffer{}, ErrTargetLocked
	}
	b := t.img.Bounds()
	if b.Empty() {
		return PixelBuffer{}, fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}
	t.locked = true
	return PixelBuffer{
		Pix:    t.img.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: t.img.Stride,
	}, nil
}

// Unlock implements PixelTarget.
func (t *ImageTarget) Unlock() {
	t.locked = false
}

// Resize implements PixelTarget. The contents are discarded.
func (t *ImageTarget) Resize(width, height int) error {
	if t.locked {
		return ErrTargetLocked
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Present implements PixelTarget.
func (t *ImageTarget) Present() error {
	t.presents++
	if t.OnPresent != nil {
		return t.OnPresent(t.img)
	}
	return nil
}

// Locked reports whether a frame currently holds the target.
func (t *ImageTarget) Locked() bool {
	return t.locked
}

// Presents returns how many frames have been presented.
func (t *ImageTarget) Presents() int {
	return t.presents
}

// Image returns the backing image. It is replaced by Resize.
func (t *ImageTarget) Image() *image.RGBA {
	return t.img
}

// Snapshot returns a copy of the current contents.
func (t *ImageTarget) Snapshot() *image.RGBA {
	cp := image.NewRGBA(t.img.Bounds())
	copy(cp.Pix, t.img.Pix)
	return cp
}
