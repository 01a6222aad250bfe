package ppu

import (
	"log"

	"github.com/famicore/famicore/nes/common"
)

const (
	VRAMSize = 0x4000

	// first name table, one byte per 8x8 cell of the 32x30 screen
	NameTableBase = 0x2000
	NameTableSize = 0x3C0
	gridWidth     = common.FrameXWidth / TileSize
)

type Ppu struct {
	vram [VRAMSize]uint8
	ptr  vramLatch

	tiles *[MaxTiles]Tile

	frame   *common.Framebuffer
	display common.Display

	// honour a zero byte on PPUADDR/PPUDATA instead of treating it as no write
	zeroWrites bool
	verbose    bool
}

func (p *Ppu) Init(display common.Display, zeroWrites bool, verbose bool) {
	p.vram = [VRAMSize]uint8{}
	p.ptr.Init("VRAMAddr", 0)
	p.tiles = new([MaxTiles]Tile)
	p.frame = common.NewFramebuffer()
	p.display = display
	p.zeroWrites = zeroWrites
	p.verbose = verbose
}

func (p *Ppu) SetDisplay(display common.Display) {
	p.display = display
}

// SetTiles installs tiles decoded at cartridge load time
func (p *Ppu) SetTiles(tiles *[MaxTiles]Tile) {
	p.tiles = tiles
}

func (p *Ppu) Tile(index int) Tile {
	return p.tiles[index]
}

func (p *Ppu) Read8(addr uint16) uint8 {
	return p.vram[addr&(VRAMSize-1)]
}

func (p *Ppu) Pointer() uint16 {
	return p.ptr.Read()
}

func (p *Ppu) Frame() *common.Framebuffer {
	return p.frame
}

func (p *Ppu) written(io common.IOSnapshot, port uint) bool {
	if p.zeroWrites {
		return io.Written&(1<<port) != 0
	}
	return io.Ports[port] != 0
}

// Update applies the register writes the cpu made during one instruction
func (p *Ppu) Update(io common.IOSnapshot) {
	if p.written(io, PPUADDR) {
		p.ptr.shiftIn(io.Ports[PPUADDR])
	}
	if p.written(io, PPUDATA) {
		if p.verbose {
			log.Printf("ppu: [0x%04x] <- 0x%02x", p.ptr.addr(), io.Ports[PPUDATA])
		}
		p.vram[p.ptr.addr()] = io.Ports[PPUDATA]
		p.ptr.increment()
	}
}

func (p *Ppu) drawTile(col, row int, t *Tile) {
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			p.frame.Set(col*TileSize+x, row*TileSize+y, grayscale[t[y][x]])
		}
	}
}

// Render composes the frame from the name table and presents it
func (p *Ppu) Render() error {
	for i := 0; i < NameTableSize; i++ {
		t := &p.tiles[p.vram[NameTableBase+i]]
		p.drawTile(i%gridWidth, i/gridWidth, t)
	}
	p.frame.Frames++

	if p.display == nil {
		return nil
	}
	return p.display.Present(p.frame)
}
