package cpu

import (
	"fmt"

	"github.com/famicore/famicore/nes/common"
)

// bit positions in the packed status byte
const (
	C = 0 // Carry
	Z = 1 // Zero Result
	I = 2 // Interrupt Disable
	D = 3 // Decimal Mode
	B = 4 // Break Command
	E = 5 // Expansion, not stored
	V = 6 // Overflow
	N = 7 // Negative Result

	BC = 1 << C
	BZ = 1 << Z
	BI = 1 << I
	BD = 1 << D
	BB = 1 << B
	BE = 1 << E
	BV = 1 << V
	BN = 1 << N
)

const (
	ResetPc = common.ProgramBase
	ResetSp = 0xFD
)

// Status keeps each processor flag as its own boolean
type Status struct {
	n, v, b, d, i, z, c bool

	name string
}

func (ps *Status) flag(bit uint) *bool {
	switch bit {
	case C:
		return &ps.c
	case Z:
		return &ps.z
	case I:
		return &ps.i
	case D:
		return &ps.d
	case B:
		return &ps.b
	case V:
		return &ps.v
	case N:
		return &ps.n
	default:
		panic(fmt.Sprintf("no status flag at bit %d", bit))
	}
}

func (ps *Status) Set(bit uint, on bool) {
	*ps.flag(bit) = on
}
func (ps *Status) Get(bit uint) bool {
	return *ps.flag(bit)
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Read packs the flags, the expansion bit reads as 0
func (ps *Status) Read() uint8 {
	return 0 |
		b2u(ps.c)<<C |
		b2u(ps.z)<<Z |
		b2u(ps.i)<<I |
		b2u(ps.d)<<D |
		b2u(ps.b)<<B |
		b2u(ps.v)<<V |
		b2u(ps.n)<<N
}

func (ps *Status) Write(value uint8) {
	ps.c = value&BC != 0
	ps.z = value&BZ != 0
	ps.i = value&BI != 0
	ps.d = value&BD != 0
	ps.b = value&BB != 0
	ps.v = value&BV != 0
	ps.n = value&BN != 0
}

func (ps Status) String() string {
	return fmt.Sprintf("%s: 0x%02x (N:%d V:%d B:%d D:%d I:%d Z:%d C:%d)", ps.name, ps.Read(),
		b2u(ps.n), b2u(ps.v), b2u(ps.b), b2u(ps.d), b2u(ps.i), b2u(ps.z), b2u(ps.c))
}

func (ps *Status) init(name string, val uint8) {
	ps.Write(val)
	ps.name = name
}

type Registers struct {
	Pc common.Register16
	Sp common.Register
	Ps Status

	Ac common.Register
	X  common.Register
	Y  common.Register
}

func (r *Registers) Init() {
	r.Pc.Init("Pc", ResetPc)
	r.Sp.Init("Sp", ResetSp)
	r.Ps.init("Ps", 0)
	r.Ac.Init("Ac", 0)
	r.X.Init("X", 0)
	r.Y.Init("Y", 0)
}

// AdvancePc moves past n instruction bytes, wrapping at 16 bits
func (r *Registers) AdvancePc(n uint16) {
	r.Pc.Write(r.Pc.Read() + n)
}

// OffsetPc applies a signed branch displacement, wrapping at 16 bits
func (r *Registers) OffsetPc(delta int8) {
	r.Pc.Write(r.Pc.Read() + uint16(delta))
}

func (r Registers) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s", r.Pc, r.Sp, r.Ps, r.Ac, r.X, r.Y)
}
