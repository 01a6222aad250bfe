package ppu

import (
	"github.com/famicore/famicore/nes/common"
)

// cpu visible registers, offsets into the $2000-$2007 window
const (
	PPUCTRL = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

// vramLatch is the pointer used by PPUADDR/PPUDATA. Each PPUADDR write
// shifts the previous low byte up, so two writes give high then low byte.
type vramLatch struct {
	common.Register16
}

func (l *vramLatch) shiftIn(val uint8) {
	l.Val = (l.Val&0x00FF)<<8 | uint16(val)
}

func (l *vramLatch) increment() {
	l.Val++
}

// vram only decodes 14 address bits, the rest mirrors
func (l *vramLatch) addr() uint16 {
	return l.Val & (VRAMSize - 1)
}
