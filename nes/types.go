package famicom

import (
	"fmt"

	"github.com/famicore/famicore/nes/cartridge"
	"github.com/famicore/famicore/nes/common"
	"github.com/famicore/famicore/nes/cpu"
	"github.com/famicore/famicore/nes/ppu"
)

type GoNes interface {
	// Runs the emulator until the display is closed (blocking)
	Run(display common.Display) error
	// Executes a single instruction and renders
	Step() error
	Stats() Stats
}

// instruction binds a handler to the addressing modes it accepts
type instruction struct {
	eval  func() error
	modes modeSet
}

type modeSet uint16

func modes(ms ...cpu.AddressingMode) modeSet {
	var s modeSet
	for _, m := range ms {
		s |= 1 << m
	}
	return s
}

func (s modeSet) has(m cpu.AddressingMode) bool {
	return s&(1<<m) != 0
}

// the instruction being executed
type context struct {
	op  cpu.Opcode
	pc  uint16
	op1 uint8
	op2 uint8
}

type nes struct {
	rg  cpu.Registers
	ram common.Memory
	ppu ppu.Ppu

	ins      *cpu.Table
	handlers map[cpu.Mnemonic]instruction
	curr     context

	cart *cartridge.Cartridge

	// number of times each opcode ran
	executed [256]uint64
	steps    uint64
	history  history

	// internal buffer for the trace line
	bufStr string

	// Options
	verbose    bool
	cartPath   string
	rom        []byte
	zeroWrites bool
}

// UnimplementedInstructionError is returned for a valid opcode whose
// instruction or addressing mode the core does not execute.
type UnimplementedInstructionError struct {
	Opcode uint8
	Name   cpu.Mnemonic
	Mode   cpu.AddressingMode
	Pc     uint16
}

func (e *UnimplementedInstructionError) Error() string {
	return fmt.Sprintf("unimplemented instruction 0x%02x (%s %s) at 0x%04x", e.Opcode, e.Name, e.Mode, e.Pc)
}

type Stats struct {
	Valid       int
	Implemented int
	Executed    int
	Steps       uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("Valid instructions: %d\nImplemented instructions: %d\nRemainingValid: %d\nExecuted instructions: %d\nSteps: %d",
		s.Valid, s.Implemented, s.Valid-s.Implemented, s.Executed, s.Steps)
}
