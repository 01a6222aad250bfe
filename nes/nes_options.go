package famicom

import "fmt"

func (n *nes) setOptions(options ...func(*nes) error) error {
	for i, option := range options {
		if err := option(n); err != nil {
			return fmt.Errorf("failed to set option index %d, err=%v", i, err)
		}
	}
	return nil
}

func (n *nes) setCart(path string) error {
	if n.rom != nil {
		return fmt.Errorf("cartridge path %q given together with a rom image", path)
	}
	n.cartPath = path
	return nil
}
func (n *nes) setRom(rom []byte) error {
	if n.cartPath != "" {
		return fmt.Errorf("rom image given together with cartridge path %q", n.cartPath)
	}
	n.rom = rom
	return nil
}
func (n *nes) setVerbose(verbose bool) error {
	n.verbose = verbose
	return nil
}
func (n *nes) setZeroWrites(zeroWrites bool) error {
	n.zeroWrites = zeroWrites
	return nil
}

// CartPath loads the iNES file at path
func CartPath(path string) func(n *nes) error {
	return func(n *nes) error {
		return n.setCart(path)
	}
}

// Rom uses an iNES image already in memory
func Rom(rom []byte) func(n *nes) error {
	return func(n *nes) error {
		return n.setRom(rom)
	}
}

func Verbose(verbose bool) func(n *nes) error {
	return func(n *nes) error {
		return n.setVerbose(verbose)
	}
}

// ZeroWrites makes a zero byte stored to PPUADDR or PPUDATA count as a
// write. By default such a store is indistinguishable from no store.
func ZeroWrites(zeroWrites bool) func(n *nes) error {
	return func(n *nes) error {
		return n.setZeroWrites(zeroWrites)
	}
}
