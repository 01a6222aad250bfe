package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	famicom "github.com/famicore/famicore/nes"
	"github.com/famicore/famicore/nes/ui"
)

const screenFrameRatio = 3

func validINesPath(romPath string) error {
	if romPath == "" {
		return fmt.Errorf("no iNes Rom file given, use -rom")
	}

	stat, err := os.Stat(romPath)
	if err != nil {
		return fmt.Errorf("iNes Rom file path (\"%v\") does not exist or is not valid", romPath)
	} else if stat.IsDir() {
		return fmt.Errorf("iNes Rom file path (\"%v\") points to a directory", romPath)
	}
	return nil
}

func main() {
	romPath := flag.String("rom", "", "path to the iNes Rom file to run")
	display := flag.String("display", "pixel", "display backend: pixel, ebiten or headless")
	freeRun := flag.Bool("freerun", false, "do not wait for vsync, drop frames instead")
	frames := flag.Int("frames", 0, "headless: stop after this many frames, 0 runs until an error")
	screenshot := flag.String("screenshot", "", "headless: write the last frame to this PNG file")
	scale := flag.Int("scale", screenFrameRatio, "headless: screenshot scale factor")
	verbose := flag.Bool("verbose", false, "trace every instruction")
	logPath := flag.String("log", "", "write log output to this file")
	zeroWrites := flag.Bool("zero-writes", false, "treat zero bytes stored to PPUADDR/PPUDATA as writes")
	stats := flag.Bool("stats", false, "print instruction coverage when the run ends")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Fatalf("error opening file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := validINesPath(*romPath); err != nil {
		log.Fatalf("Failed to start famicore, err=%v", err)
	}

	nes, err := famicom.NewNES(
		famicom.CartPath(*romPath),
		famicom.Verbose(*verbose),
		famicom.ZeroWrites(*zeroWrites),
	)
	if err != nil {
		log.Fatalf("Failed to load %s, err=%v", *romPath, err)
	}

	screen, err := ui.New(*display, ui.Config{
		FreeRun:    *freeRun,
		Frames:     *frames,
		Screenshot: *screenshot,
		Scale:      *scale,
	})
	if err != nil {
		log.Fatalf("Failed to start famicore, err=%v", err)
	}

	log.Printf("Starting famicore with iNes Rom file: %s", *romPath)
	err = screen.Run(nes.Run)

	if *stats {
		fmt.Printf("\n%s\n", nes.Stats())
	}
	if err != nil {
		log.Fatalf("famicore stopped: %v", err)
	}
}
