package common

import "image/color"

const (
	FrameXWidth  = 256
	FrameYHeight = 240
)

// Framebuffer holds one rendered frame, rows top to bottom.
type Framebuffer struct {
	Pix []color.RGBA

	// number of frames presented so far
	Frames int
}

func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		Pix: make([]color.RGBA, FrameXWidth*FrameYHeight),
	}
}

func (f *Framebuffer) Set(x, y int, c color.RGBA) {
	f.Pix[y*FrameXWidth+x] = c
}

func (f *Framebuffer) At(x, y int) color.RGBA {
	return f.Pix[y*FrameXWidth+x]
}

// Display is the presentation surface fed by the ppu once per cycle.
// Present may block until the surface is ready for the next frame and
// returns a *ResourceError once the surface has been closed.
type Display interface {
	Present(frame *Framebuffer) error
}
