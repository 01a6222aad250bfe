package ui

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/famicore/famicore/nes/common"
)

// Headless keeps the last frame in memory and closes itself after a fixed
// number of frames, 0 meaning never. When a screenshot path is set the
// last frame is written there as a PNG once the core stops.
type Headless struct {
	budget     int
	screenshot string
	scale      int

	presented int
	last      *image.RGBA
}

func NewHeadless(frames int, screenshot string, scale int) *Headless {
	if scale < 1 {
		scale = 1
	}
	return &Headless{budget: frames, screenshot: screenshot, scale: scale}
}

func (h *Headless) Run(core func(common.Display) error) error {
	err := core(h)
	if h.screenshot == "" || h.last == nil {
		return err
	}
	if serr := h.saveScreenshot(h.screenshot); serr != nil && err == nil {
		err = serr
	}
	return err
}

func (h *Headless) Present(frame *common.Framebuffer) error {
	if h.budget > 0 && h.presented >= h.budget {
		return common.DisplayClosed("headless")
	}
	h.presented++

	if h.last == nil {
		h.last = image.NewRGBA(image.Rect(0, 0, common.FrameXWidth, common.FrameYHeight))
	}
	fillRGBA(h.last.Pix, frame)
	return nil
}

func (h *Headless) Presented() int {
	return h.presented
}

// Screenshot encodes the last frame, scaled up by nearest neighbour
func (h *Headless) Screenshot(w io.Writer) error {
	if h.last == nil {
		return errors.New("no frame presented yet")
	}

	var img image.Image = h.last
	if h.scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, common.FrameXWidth*h.scale, common.FrameYHeight*h.scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), h.last, h.last.Bounds(), draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

func (h *Headless) saveScreenshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "screenshot")
	}
	if err := h.Screenshot(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "screenshot %s", path)
	}
	return errors.Wrapf(f.Close(), "screenshot %s", path)
}
