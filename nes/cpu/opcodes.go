package cpu

import (
	"fmt"
)

// Table maps opcode bytes to their instruction and addressing mode. It is
// filled once by NewTable and only read afterwards.
type Table struct {
	ops   [256]Opcode
	valid [256]bool
	count int
}

// Opcodes is the official 6502 instruction set
var Opcodes = NewTable()

func (t *Table) Lookup(code uint8) (Opcode, error) {
	if !t.valid[code] {
		return Opcode{}, &DecodeError{Opcode: code}
	}
	return t.ops[code], nil
}

func (t *Table) Len() int {
	return t.count
}

// Each visits the registered opcodes in byte order
func (t *Table) Each(fn func(Opcode)) {
	for code := range t.ops {
		if t.valid[code] {
			fn(t.ops[code])
		}
	}
}

func (t *Table) register(code uint8, name Mnemonic, mode AddressingMode) {
	if t.valid[code] {
		panic(fmt.Sprintf("opcode 0x%02x registered twice (%s and %s)", code, t.ops[code].Name, name))
	}
	t.ops[code] = Opcode{Code: code, Name: name, Mode: mode}
	t.valid[code] = true
	t.count++
}

type def struct {
	code uint8
	mode AddressingMode
}

func (t *Table) set(name Mnemonic, defs ...def) {
	for _, d := range defs {
		t.register(d.code, name, d.mode)
	}
}

func NewTable() *Table {
	t := new(Table)

	imp := func(code uint8) def { return def{code, ModeImplied} }
	acc := func(code uint8) def { return def{code, ModeAccumulator} }
	imm := func(code uint8) def { return def{code, ModeImmediate} }
	rel := func(code uint8) def { return def{code, ModeRelative} }
	zpg := func(code uint8) def { return def{code, ModeZeroPage} }
	zpx := func(code uint8) def { return def{code, ModeIndexedZeroPageX} }
	zpy := func(code uint8) def { return def{code, ModeIndexedZeroPageY} }
	abs := func(code uint8) def { return def{code, ModeAbsolute} }
	abx := func(code uint8) def { return def{code, ModeIndexedAbsoluteX} }
	aby := func(code uint8) def { return def{code, ModeIndexedAbsoluteY} }
	ind := func(code uint8) def { return def{code, ModeIndirect} }
	iix := func(code uint8) def { return def{code, ModeIndexedIndirectX} }
	iiy := func(code uint8) def { return def{code, ModeIndirectIndexedY} }

	// Move Commands:
	t.set(LDA, imm(0xA9), zpg(0xA5), zpx(0xB5), abs(0xAD), abx(0xBD), aby(0xB9), iix(0xA1), iiy(0xB1))
	t.set(LDX, imm(0xA2), zpg(0xA6), zpy(0xB6), abs(0xAE), aby(0xBE))
	t.set(LDY, imm(0xA0), zpg(0xA4), zpx(0xB4), abs(0xAC), abx(0xBC))
	t.set(STA, zpg(0x85), zpx(0x95), abs(0x8D), abx(0x9D), aby(0x99), iix(0x81), iiy(0x91))
	t.set(STX, zpg(0x86), zpy(0x96), abs(0x8E))
	t.set(STY, zpg(0x84), zpx(0x94), abs(0x8C))
	t.set(TAX, imp(0xAA))
	t.set(TXA, imp(0x8A))
	t.set(TAY, imp(0xA8))
	t.set(TYA, imp(0x98))
	t.set(TSX, imp(0xBA))
	t.set(TXS, imp(0x9A))
	t.set(PLA, imp(0x68))
	t.set(PHA, imp(0x48))
	t.set(PLP, imp(0x28))
	t.set(PHP, imp(0x08))

	// Logical and arithmetic commands:
	t.set(ORA, imm(0x09), zpg(0x05), zpx(0x15), abs(0x0D), abx(0x1D), aby(0x19), iix(0x01), iiy(0x11))
	t.set(AND, imm(0x29), zpg(0x25), zpx(0x35), abs(0x2D), abx(0x3D), aby(0x39), iix(0x21), iiy(0x31))
	t.set(EOR, imm(0x49), zpg(0x45), zpx(0x55), abs(0x4D), abx(0x5D), aby(0x59), iix(0x41), iiy(0x51))
	t.set(ADC, imm(0x69), zpg(0x65), zpx(0x75), abs(0x6D), abx(0x7D), aby(0x79), iix(0x61), iiy(0x71))
	t.set(SBC, imm(0xE9), zpg(0xE5), zpx(0xF5), abs(0xED), abx(0xFD), aby(0xF9), iix(0xE1), iiy(0xF1))
	t.set(CMP, imm(0xC9), zpg(0xC5), zpx(0xD5), abs(0xCD), abx(0xDD), aby(0xD9), iix(0xC1), iiy(0xD1))
	t.set(CPX, imm(0xE0), zpg(0xE4), abs(0xEC))
	t.set(CPY, imm(0xC0), zpg(0xC4), abs(0xCC))
	t.set(DEC, zpg(0xC6), zpx(0xD6), abs(0xCE), abx(0xDE))
	t.set(DEX, imp(0xCA))
	t.set(DEY, imp(0x88))
	t.set(INC, zpg(0xE6), zpx(0xF6), abs(0xEE), abx(0xFE))
	t.set(INX, imp(0xE8))
	t.set(INY, imp(0xC8))
	t.set(ASL, acc(0x0A), zpg(0x06), zpx(0x16), abs(0x0E), abx(0x1E))
	t.set(ROL, acc(0x2A), zpg(0x26), zpx(0x36), abs(0x2E), abx(0x3E))
	t.set(LSR, acc(0x4A), zpg(0x46), zpx(0x56), abs(0x4E), abx(0x5E))
	t.set(ROR, acc(0x6A), zpg(0x66), zpx(0x76), abs(0x6E), abx(0x7E))

	// Jump/Flag Commands:
	t.set(BPL, rel(0x10))
	t.set(BMI, rel(0x30))
	t.set(BVC, rel(0x50))
	t.set(BVS, rel(0x70))
	t.set(BCC, rel(0x90))
	t.set(BCS, rel(0xB0))
	t.set(BNE, rel(0xD0))
	t.set(BEQ, rel(0xF0))
	t.set(BRK, imp(0x00))
	t.set(RTI, imp(0x40))
	t.set(JSR, abs(0x20))
	t.set(RTS, imp(0x60))
	t.set(JMP, abs(0x4C), ind(0x6C))
	t.set(BIT, zpg(0x24), abs(0x2C))
	t.set(CLC, imp(0x18))
	t.set(SEC, imp(0x38))
	t.set(CLD, imp(0xD8))
	t.set(SED, imp(0xF8))
	t.set(CLI, imp(0x58))
	t.set(SEI, imp(0x78))
	t.set(CLV, imp(0xB8))
	t.set(NOP, imp(0xEA))

	return t
}
