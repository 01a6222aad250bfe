package cpu

import (
	"fmt"
)

type AddressingMode uint8

const (
	// allows for validity test
	ModeInvalid AddressingMode = iota
	ModeZeroPage
	ModeIndexedZeroPageX
	ModeIndexedZeroPageY
	ModeAbsolute
	ModeIndexedAbsoluteX
	ModeIndexedAbsoluteY
	ModeIndirect
	ModeImplied
	ModeAccumulator
	ModeImmediate
	ModeRelative
	ModeIndexedIndirectX
	ModeIndirectIndexedY
)

var modeNames = [...]string{
	ModeInvalid:          "INV",
	ModeZeroPage:         "ZPG",
	ModeIndexedZeroPageX: "ZPX",
	ModeIndexedZeroPageY: "ZPY",
	ModeAbsolute:         "ABS",
	ModeIndexedAbsoluteX: "ABX",
	ModeIndexedAbsoluteY: "ABY",
	ModeIndirect:         "IND",
	ModeImplied:          "IMP",
	ModeAccumulator:      "ACC",
	ModeImmediate:        "IMM",
	ModeRelative:         "REL",
	ModeIndexedIndirectX: "IIX",
	ModeIndirectIndexedY: "IIY",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Length is the number of instruction bytes, opcode included. The pc moves
// by this much after any instruction that does not load it directly.
func (m AddressingMode) Length() uint16 {
	switch m {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeImmediate, ModeRelative, ModeZeroPage, ModeIndexedZeroPageX, ModeIndexedZeroPageY,
		ModeIndexedIndirectX, ModeIndirectIndexedY:
		return 2
	case ModeAbsolute, ModeIndexedAbsoluteX, ModeIndexedAbsoluteY, ModeIndirect:
		return 3
	default:
		panic(fmt.Sprintf("invalid address mode: %d", m))
	}
}

type Mnemonic uint8

const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	MnemonicCount
)

var mnemonicNames = [MnemonicCount]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (m Mnemonic) String() string {
	if m < MnemonicCount {
		return mnemonicNames[m]
	}
	return fmt.Sprintf("op(%d)", uint8(m))
}

type Opcode struct {
	Code uint8
	Name Mnemonic
	Mode AddressingMode
}

func (o Opcode) String() string {
	return fmt.Sprintf("0x%02x %s %s", o.Code, o.Name, o.Mode)
}

// DecodeError is returned for an opcode byte the table does not know
type DecodeError struct {
	Opcode uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x", e.Opcode)
}

// Operand renders the operand bytes that follow the opcode the way an
// assembler listing would.
func (o Opcode) Operand(op1, op2 uint8) string {
	op12 := uint16(op1) | uint16(op2)<<8
	str := ""
	switch o.Mode {
	case ModeImplied:
	case ModeAccumulator:
		str = "A"
	case ModeImmediate:
		str = fmt.Sprintf("#$%02x", op1)
	case ModeZeroPage:
		str = fmt.Sprintf("$%02x", op1)
	case ModeIndexedZeroPageX:
		str = fmt.Sprintf("$%02x, X", op1)
	case ModeIndexedZeroPageY:
		str = fmt.Sprintf("$%02x, Y", op1)
	case ModeAbsolute:
		str = fmt.Sprintf("$%04x", op12)
	case ModeIndexedAbsoluteX:
		str = fmt.Sprintf("$%04x, X", op12)
	case ModeIndexedAbsoluteY:
		str = fmt.Sprintf("$%04x, Y", op12)
	case ModeIndexedIndirectX:
		str = fmt.Sprintf("($%02x, X)", op1)
	case ModeIndirectIndexedY:
		str = fmt.Sprintf("($%02x), Y", op1)
	case ModeIndirect:
		str = fmt.Sprintf("($%04x)", op12)
	case ModeRelative:
		str = fmt.Sprintf("%+d", int8(op1))
	default:
		panic(fmt.Sprintf("invalid address mode: %d", o.Mode))
	}
	return str
}
