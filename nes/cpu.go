package famicom

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/famicore/famicore/nes/common"
	"github.com/famicore/famicore/nes/cpu"
)

func (n *nes) LogAf(align int, format string, a ...interface{}) {
	if n.verbose {
		n.bufStr += fmt.Sprintf("%-*s", align, fmt.Sprintf(format, a...))
	}
}

func (n *nes) Logf(format string, a ...interface{}) {
	if n.verbose {
		s := fmt.Sprintf(format, a...)
		n.bufStr += s

		if strings.IndexByte(s, '\n') >= 0 {
			log.Print(n.bufStr)
			n.bufStr = ""
		}
	}
}

func negative(v uint8) bool {
	return v&0x80 != 0
}

func zero(v uint8) bool {
	return v == 0
}

func (n *nes) setZN(v uint8) {
	n.rg.Ps.Set(cpu.Z, zero(v))
	n.rg.Ps.Set(cpu.N, negative(v))
}

func (n *nes) unimplemented() error {
	return &UnimplementedInstructionError{
		Opcode: n.curr.op.Code,
		Name:   n.curr.op.Name,
		Mode:   n.curr.op.Mode,
		Pc:     n.curr.pc,
	}
}

// exec runs the instruction at the pc. Every handler moves the pc itself,
// either past the instruction or to the jump/branch target.
func (n *nes) exec() error {
	pc := n.rg.Pc.Read()
	code := n.ram.Read8(pc)

	op, err := n.ins.Lookup(code)
	if err != nil {
		n.Logf("Read 0x%02x at 0x%04x which is an invalid instruction!\n", code, pc)
		return errors.Wrapf(err, "pc 0x%04x", pc)
	}

	n.curr = context{op: op, pc: pc, op1: n.ram.Read8(pc + 1), op2: n.ram.Read8(pc + 2)}
	n.LogAf(30, "0x%04x: 0x%02x - %s %s", pc, code, op.Name, op.Operand(n.curr.op1, n.curr.op2))

	ins, ok := n.handlers[op.Name]
	if !ok || !ins.modes.has(op.Mode) {
		n.Logf("unimplemented\n")
		return n.unimplemented()
	}
	if err := ins.eval(); err != nil {
		n.Logf("failed\n")
		return err
	}

	n.executed[code]++
	n.steps++
	n.history.push(historyEntry{pc: pc, op: op, op1: n.curr.op1, op2: n.curr.op2})
	n.Logf("%s\n", n.rg)
	return nil
}

func (n *nes) operand16() uint16 {
	return uint16(n.curr.op1) | uint16(n.curr.op2)<<8
}

// reads a pointer from the zero page, the high byte wraps within it
func (n *nes) zpRead16(addr uint8) uint16 {
	return uint16(n.ram.Read8(uint16(addr))) | uint16(n.ram.Read8(uint16(addr+1)))<<8
}

func (n *nes) getOperandAddr() (uint16, error) {
	op1 := n.curr.op1
	x := n.rg.X.Read()
	y := n.rg.Y.Read()

	switch n.curr.op.Mode {
	case cpu.ModeImmediate:
		return n.curr.pc + 1, nil
	case cpu.ModeZeroPage:
		return uint16(op1), nil
	case cpu.ModeIndexedZeroPageX:
		return uint16(op1 + x), nil
	case cpu.ModeIndexedZeroPageY:
		return uint16(op1 + y), nil
	case cpu.ModeAbsolute:
		return n.operand16(), nil
	case cpu.ModeIndexedAbsoluteX:
		return n.operand16() + uint16(x), nil
	case cpu.ModeIndexedAbsoluteY:
		return n.operand16() + uint16(y), nil
	case cpu.ModeIndexedIndirectX:
		return n.zpRead16(op1 + x), nil
	case cpu.ModeIndirectIndexedY:
		return n.zpRead16(op1) + uint16(y), nil
	case cpu.ModeIndirect:
		// the 6502 does not carry into the high byte when fetching the
		// vector, so ($xxFF) takes its msb from $xx00
		ptr := n.operand16()
		l := uint16(n.ram.Read8(ptr))
		h := uint16(n.ram.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1)))
		return l | h<<8, nil
	default:
		return 0, n.unimplemented()
	}
}

func (n *nes) next() {
	n.rg.AdvancePc(n.curr.op.Mode.Length())
}

// Move Commands:
func (n *nes) load(r *common.Register) error {
	addr, err := n.getOperandAddr()
	if err != nil {
		return err
	}
	r.Write(n.ram.Read8(addr))
	n.setZN(r.Read())
	n.next()
	return nil
}

func (n *nes) store(r *common.Register) error {
	addr, err := n.getOperandAddr()
	if err != nil {
		return err
	}
	n.ram.Write8(addr, r.Read())
	n.next()
	return nil
}

func (n *nes) lda() error { return n.load(&n.rg.Ac) }
func (n *nes) ldx() error { return n.load(&n.rg.X) }
func (n *nes) ldy() error { return n.load(&n.rg.Y) }

func (n *nes) sta() error { return n.store(&n.rg.Ac) }
func (n *nes) stx() error { return n.store(&n.rg.X) }
func (n *nes) sty() error { return n.store(&n.rg.Y) }

func (n *nes) transfer(from, to *common.Register, flags bool) error {
	to.Write(from.Read())
	if flags {
		n.setZN(to.Read())
	}
	n.next()
	return nil
}

func (n *nes) tax() error { return n.transfer(&n.rg.Ac, &n.rg.X, true) }
func (n *nes) tay() error { return n.transfer(&n.rg.Ac, &n.rg.Y, true) }
func (n *nes) txa() error { return n.transfer(&n.rg.X, &n.rg.Ac, true) }
func (n *nes) tya() error { return n.transfer(&n.rg.Y, &n.rg.Ac, true) }
func (n *nes) tsx() error { return n.transfer(&n.rg.Sp, &n.rg.X, true) }
func (n *nes) txs() error { return n.transfer(&n.rg.X, &n.rg.Sp, false) }

// Logical and arithmetic commands:
func (n *nes) result(v uint8) error {
	n.setZN(v)
	n.next()
	return nil
}

func (n *nes) inx() error { return n.result(n.rg.X.Inc()) }
func (n *nes) iny() error { return n.result(n.rg.Y.Inc()) }
func (n *nes) dex() error { return n.result(n.rg.X.Dec()) }
func (n *nes) dey() error { return n.result(n.rg.Y.Dec()) }

// Jump/Flag Commands:
func (n *nes) branch(taken bool) error {
	n.next()
	if taken {
		n.rg.OffsetPc(int8(n.curr.op1))
	}
	return nil
}

func (n *nes) bpl() error { return n.branch(!n.rg.Ps.Get(cpu.N)) }
func (n *nes) bmi() error { return n.branch(n.rg.Ps.Get(cpu.N)) }
func (n *nes) bvc() error { return n.branch(!n.rg.Ps.Get(cpu.V)) }
func (n *nes) bvs() error { return n.branch(n.rg.Ps.Get(cpu.V)) }
func (n *nes) bcc() error { return n.branch(!n.rg.Ps.Get(cpu.C)) }
func (n *nes) bcs() error { return n.branch(n.rg.Ps.Get(cpu.C)) }
func (n *nes) bne() error { return n.branch(!n.rg.Ps.Get(cpu.Z)) }
func (n *nes) beq() error { return n.branch(n.rg.Ps.Get(cpu.Z)) }

func (n *nes) jmp() error {
	addr, err := n.getOperandAddr()
	if err != nil {
		return err
	}
	n.rg.Pc.Write(addr)
	return nil
}

func (n *nes) flag(bit uint, on bool) error {
	n.rg.Ps.Set(bit, on)
	n.next()
	return nil
}

func (n *nes) clc() error { return n.flag(cpu.C, false) }
func (n *nes) sec() error { return n.flag(cpu.C, true) }
func (n *nes) cli() error { return n.flag(cpu.I, false) }
func (n *nes) sei() error { return n.flag(cpu.I, true) }
func (n *nes) cld() error { return n.flag(cpu.D, false) }
func (n *nes) sed() error { return n.flag(cpu.D, true) }
func (n *nes) clv() error { return n.flag(cpu.V, false) }

func (n *nes) nop() error {
	n.next()
	return nil
}

func (n *nes) setupIns() {
	imp := modes(cpu.ModeImplied)
	rel := modes(cpu.ModeRelative)
	mem := modes(cpu.ModeImmediate, cpu.ModeZeroPage, cpu.ModeIndexedZeroPageX, cpu.ModeIndexedZeroPageY,
		cpu.ModeAbsolute, cpu.ModeIndexedAbsoluteX, cpu.ModeIndexedAbsoluteY,
		cpu.ModeIndexedIndirectX, cpu.ModeIndirectIndexedY)

	n.handlers = map[cpu.Mnemonic]instruction{
		cpu.LDA: {n.lda, mem},
		cpu.LDX: {n.ldx, mem},
		cpu.LDY: {n.ldy, mem},
		cpu.STA: {n.sta, mem},
		cpu.STX: {n.stx, mem},
		cpu.STY: {n.sty, mem},

		cpu.TAX: {n.tax, imp},
		cpu.TAY: {n.tay, imp},
		cpu.TXA: {n.txa, imp},
		cpu.TYA: {n.tya, imp},
		cpu.TSX: {n.tsx, imp},
		cpu.TXS: {n.txs, imp},

		cpu.INX: {n.inx, imp},
		cpu.INY: {n.iny, imp},
		cpu.DEX: {n.dex, imp},
		cpu.DEY: {n.dey, imp},

		cpu.BPL: {n.bpl, rel},
		cpu.BMI: {n.bmi, rel},
		cpu.BVC: {n.bvc, rel},
		cpu.BVS: {n.bvs, rel},
		cpu.BCC: {n.bcc, rel},
		cpu.BCS: {n.bcs, rel},
		cpu.BNE: {n.bne, rel},
		cpu.BEQ: {n.beq, rel},

		cpu.JMP: {n.jmp, modes(cpu.ModeAbsolute, cpu.ModeIndirect)},

		cpu.CLC: {n.clc, imp},
		cpu.SEC: {n.sec, imp},
		cpu.CLI: {n.cli, imp},
		cpu.SEI: {n.sei, imp},
		cpu.CLD: {n.cld, imp},
		cpu.SED: {n.sed, imp},
		cpu.CLV: {n.clv, imp},
		cpu.NOP: {n.nop, imp},
	}
}
