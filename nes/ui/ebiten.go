package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/famicore/famicore/nes/common"
)

// EbitenScreen runs the core on its own goroutine and hands frames to the
// game loop one at a time. Present blocks until Update has taken the frame
// unless freeRun is set, in which case frames the loop is not ready for
// are dropped.
type EbitenScreen struct {
	freeRun bool

	// front and back buffers, the core fills one while the game loop
	// uploads the other
	buffers [2][]byte
	index   int

	frameUpdated chan []byte
	done         chan struct{}
	closeOnce    sync.Once

	finished chan struct{}
	coreErr  error

	image *ebiten.Image

	// FPS stats
	frames       int
	fpsChannel   <-chan time.Time
	fpsLastFrame int
}

func NewEbitenScreen(freeRun bool) *EbitenScreen {
	s := &EbitenScreen{
		freeRun:      freeRun,
		frameUpdated: make(chan []byte),
		done:         make(chan struct{}),
		finished:     make(chan struct{}),
	}
	for i := range s.buffers {
		s.buffers[i] = make([]byte, 4*common.FrameXWidth*common.FrameYHeight)
	}
	return s
}

// Run must be called from the main goroutine
func (s *EbitenScreen) Run(core func(common.Display) error) error {
	ebiten.SetWindowSize(screenXWidth, screenYHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetVsyncEnabled(!s.freeRun)
	s.fpsChannel = time.Tick(time.Second)

	go func() {
		s.coreErr = core(s)
		close(s.finished)
	}()

	err := ebiten.RunGame(s)
	s.close()
	<-s.finished

	if err != nil {
		return &common.ResourceError{Backend: "ebiten", Err: err}
	}
	return s.coreErr
}

func (s *EbitenScreen) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *EbitenScreen) Present(frame *common.Framebuffer) error {
	buf := s.buffers[s.index]
	fillRGBA(buf, frame)

	if s.freeRun {
		select {
		case s.frameUpdated <- buf:
			s.index ^= 1
		case <-s.done:
			return common.DisplayClosed("ebiten")
		default:
		}
		return nil
	}

	select {
	case s.frameUpdated <- buf:
		s.index ^= 1
		return nil
	case <-s.done:
		return common.DisplayClosed("ebiten")
	}
}

func (s *EbitenScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case <-s.finished:
		return ebiten.Termination
	case buf := <-s.frameUpdated:
		if s.image == nil {
			s.image = ebiten.NewImage(common.FrameXWidth, common.FrameYHeight)
		}
		s.image.WritePixels(buf)
		s.frames++
	default:
	}

	s.updateFpsTitle()
	return nil
}

func (s *EbitenScreen) Draw(screen *ebiten.Image) {
	if s.image != nil {
		screen.DrawImage(s.image, nil)
	}
}

func (s *EbitenScreen) Layout(_, _ int) (int, int) {
	return common.FrameXWidth, common.FrameYHeight
}

func (s *EbitenScreen) updateFpsTitle() {
	select {
	case <-s.fpsChannel:
		ebiten.SetWindowTitle(fmt.Sprintf("%s | FPS: %d", windowTitle, s.frames-s.fpsLastFrame))
		s.fpsLastFrame = s.frames
	default:
	}
}
