package ui

import (
	"fmt"
	"image/color"

	"github.com/famicore/famicore/nes/common"
)

const (
	screenFrameRatio = 3
	screenXWidth     = common.FrameXWidth * screenFrameRatio
	screenYHeight    = common.FrameYHeight * screenFrameRatio

	windowTitle = "famicore"
)

// Screen is a display that also owns the thread the core runs on. Run
// returns once the core has stopped.
type Screen interface {
	common.Display
	Run(core func(common.Display) error) error
}

type Config struct {
	// no vsync, frames the window cannot keep up with are dropped
	FreeRun bool

	// headless only
	Frames     int
	Screenshot string
	Scale      int
}

func New(backend string, cfg Config) (Screen, error) {
	switch backend {
	case "pixel":
		return NewPixelScreen(cfg.FreeRun), nil
	case "ebiten":
		return NewEbitenScreen(cfg.FreeRun), nil
	case "headless":
		return NewHeadless(cfg.Frames, cfg.Screenshot, cfg.Scale), nil
	default:
		return nil, fmt.Errorf("unknown display backend %q (pixel, ebiten or headless)", backend)
	}
}

// flipRows copies the frame upside down, pixel pictures start at the
// bottom left
func flipRows(dst []color.RGBA, frame *common.Framebuffer) {
	w := common.FrameXWidth
	for y := 0; y < common.FrameYHeight; y++ {
		row := common.FrameYHeight - 1 - y
		copy(dst[row*w:(row+1)*w], frame.Pix[y*w:(y+1)*w])
	}
}

// fillRGBA writes the frame as packed RGBA bytes
func fillRGBA(dst []byte, frame *common.Framebuffer) {
	for i, c := range frame.Pix {
		dst[4*i] = c.R
		dst[4*i+1] = c.G
		dst[4*i+2] = c.B
		dst[4*i+3] = c.A
	}
}
