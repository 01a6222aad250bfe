package famicom

import (
	"log"

	"github.com/pkg/errors"

	"github.com/famicore/famicore/nes/cartridge"
	"github.com/famicore/famicore/nes/common"
	"github.com/famicore/famicore/nes/cpu"
	"github.com/famicore/famicore/nes/ppu"
)

// Example usage:
//
//	nes, err := famicom.NewNES(
//		famicom.CartPath("rom.nes"),
//		famicom.Verbose(false),
//	)
//	...
//	err = nes.Run(display)
func NewNES(options ...func(*nes) error) (GoNes, error) {
	n := &nes{}
	if err := n.setOptions(options...); err != nil {
		return nil, err
	}
	if err := n.init(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *nes) init() error {
	n.ins = cpu.Opcodes
	n.setupIns()
	n.history = newHistory(historySize)

	n.rg.Init()
	n.ppu.Init(nil, n.zeroWrites, n.verbose)

	switch {
	case n.rom != nil:
		return n.insert(n.rom)
	case n.cartPath != "":
		cart, err := cartridge.Load(n.cartPath)
		if err != nil {
			return err
		}
		return n.insertCartridge(cart)
	}
	return nil
}

func (n *nes) insert(buf []byte) error {
	cart, err := cartridge.Parse(buf)
	if err != nil {
		return err
	}
	return n.insertCartridge(cart)
}

// insertCartridge decodes everything before touching memory or the ppu
func (n *nes) insertCartridge(cart *cartridge.Cartridge) error {
	tiles, err := ppu.DecodeTiles(cart.Chr)
	if err != nil {
		return err
	}
	if err := n.ram.LoadProgram(cart.Prg); err != nil {
		return err
	}
	n.ppu.SetTiles(tiles)
	n.cart = cart

	log.Printf("inserted cartridge: %s", cart)
	return nil
}

func (n *nes) reset() {
	n.rg.Init()
	n.ram.ClearIOWindow()
	n.history.reset()
}

// Step runs one full cycle: execute, hand the register window to the
// ppu, clear it and render.
func (n *nes) Step() error {
	if err := n.exec(); err != nil {
		return err
	}

	n.ppu.Update(n.ram.IOWindow())
	n.ram.ClearIOWindow()

	return n.ppu.Render()
}

// Run steps until the display goes away, which is not an error, or
// until an instruction fails.
func (n *nes) Run(display common.Display) error {
	n.ppu.SetDisplay(display)
	defer n.ppu.SetDisplay(nil)

	for {
		err := n.Step()
		if err == nil {
			continue
		}

		var resErr *common.ResourceError
		if errors.As(err, &resErr) {
			log.Printf("stopping after %d instructions: %v", n.steps, err)
			return nil
		}

		log.Printf("execution failed after %d instructions, last ones were:", n.steps)
		for _, e := range n.history.entries() {
			log.Printf("  %s", e)
		}
		return err
	}
}

func (n *nes) Stats() Stats {
	s := Stats{Valid: n.ins.Len(), Steps: n.steps}
	n.ins.Each(func(op cpu.Opcode) {
		if ins, ok := n.handlers[op.Name]; ok && ins.modes.has(op.Mode) {
			s.Implemented++
		}
		if n.executed[op.Code] > 0 {
			s.Executed++
		}
	})
	return s
}
