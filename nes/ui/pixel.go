package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/famicore/famicore/nes/common"
)

// PixelScreen is a pixelgl window. pixelgl wants the main thread, so the
// core runs inside pixelgl.Run and every Present draws straight away.
type PixelScreen struct {
	freeRun bool

	// window where we draw the sprite
	window  *pixelgl.Window
	picture *pixel.PictureData

	// FPS stats
	fpsChannel   <-chan time.Time
	fpsLastFrame int
}

func NewPixelScreen(freeRun bool) *PixelScreen {
	return &PixelScreen{
		freeRun: freeRun,
		picture: &pixel.PictureData{
			Pix:    make([]color.RGBA, common.FrameXWidth*common.FrameYHeight),
			Stride: common.FrameXWidth,
			Rect:   pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight),
		},
	}
}

// Run must be called from the main goroutine
func (s *PixelScreen) Run(core func(common.Display) error) error {
	var err error
	pixelgl.Run(func() {
		err = s.runThread(core)
	})
	return err
}

func (s *PixelScreen) runThread(core func(common.Display) error) error {
	cfg := pixelgl.WindowConfig{
		Title:  windowTitle,
		Bounds: pixel.R(0, 0, screenXWidth, screenYHeight),
		VSync:  !s.freeRun,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return &common.ResourceError{Backend: "pixel", Err: err}
	}
	defer window.Destroy()

	s.window = window
	s.fpsChannel = time.Tick(time.Second)
	s.fpsLastFrame = 0

	return core(s)
}

func (s *PixelScreen) Present(frame *common.Framebuffer) error {
	if s.window == nil || s.window.Closed() {
		return common.DisplayClosed("pixel")
	}
	if s.window.JustPressed(pixelgl.KeyEscape) {
		s.window.SetClosed(true)
		return common.DisplayClosed("pixel")
	}

	flipRows(s.picture.Pix, frame)

	s.window.Clear(colornames.Black)
	sprite := pixel.NewSprite(s.picture, s.picture.Bounds())
	sprite.Draw(s.window, pixel.IM.Moved(s.window.Bounds().Center()).ScaledXY(s.window.Bounds().Center(), pixel.V(screenFrameRatio, screenFrameRatio)))
	s.window.Update()

	s.updateFpsTitle(frame.Frames)
	return nil
}

func (s *PixelScreen) updateFpsTitle(frames int) {
	select {
	case <-s.fpsChannel:
		s.window.SetTitle(fmt.Sprintf("%s | FPS: %d", windowTitle, frames-s.fpsLastFrame))
		s.fpsLastFrame = frames
	default:
	}
}
