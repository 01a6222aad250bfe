package famicom

import (
	"bytes"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/famicore/famicore/nes/common"
	"github.com/famicore/famicore/nes/cpu"
)

func newTestNes(t *testing.T, options ...func(*nes) error) *nes {
	g, err := NewNES(options...)
	if err != nil {
		t.Fatalf("failed to get nes: %v", err)
	}
	return g.(*nes)
}

// loads hex dumps from: https://skilldrick.github.io/easy6502/, eg:
// `8000: a9 01 85 02 a9 cc 8d 00 01 a9 01 aa a1 00 00 00
//
//	8010: a9 05 aa 8e 00 02 a9 05 8d 01 02 a9 08 8d 02 02`
func loadEasyCode(t *testing.T, n *nes, code string) {
	for i, line := range strings.Split(strings.TrimSpace(code), "\n") {
		fields := strings.Fields(line)
		addr, err := strconv.ParseUint(strings.TrimSuffix(fields[0], ":"), 16, 16)
		if err != nil {
			t.Fatalf("bad easyCode line %q: %v", line, err)
		}

		if i == 0 {
			// assumes first line is where the program starts
			n.rg.Pc.Write(uint16(addr))
		}

		for j, f := range fields[1:] {
			b, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				t.Fatalf("bad easyCode byte %q: %v", f, err)
			}
			n.ram.Write8(uint16(addr)+uint16(j), uint8(b))
		}
	}
	n.ram.ClearIOWindow()
}

// runs until the program reaches a BRK
func runUntilBreak(n *nes) error {
	for i := 0; i < 100000; i++ {
		err := n.Step()
		if err == nil {
			continue
		}
		var unimpl *UnimplementedInstructionError
		if errors.As(err, &unimpl) && unimpl.Name == cpu.BRK {
			return nil
		}
		return err
	}
	return errors.New("program did not reach a BRK")
}

type cpuTest struct {
	prefix func(n *nes)
	name   string
	code   string
	result string
}

func cmpMem(n *nes, t *testing.T, checkAddr uint16, expectedVal uint8) {
	checkVal := n.ram.Read8(checkAddr)
	if checkVal != expectedVal {
		t.Errorf("Output of test %s was incorrect!\nGot:\t\t[0x%04x]=%02x\nExpected:\t[0x%04x]=%02x", t.Name(), checkAddr, checkVal, checkAddr, expectedVal)
	}
}

func testCpuTest(n *nes, t *testing.T, cpuTest cpuTest) {
	n.reset()
	loadEasyCode(t, n, cpuTest.code)

	if cpuTest.prefix != nil {
		cpuTest.prefix(n)
	}

	if err := runUntilBreak(n); err != nil {
		t.Fatalf("[%s][%s] failed: %v", t.Name(), cpuTest.name, err)
	}

	if n.rg.String() != cpuTest.result {
		t.Fatalf("[%s][%s] test failed!\nGot:\t\t%s\nExpected:\t%s", t.Name(), cpuTest.name, n.rg.String(), cpuTest.result)
	}
}

func Test_newNes(t *testing.T) {
	n := newTestNes(t, Verbose(false))
	if n.rg.String() != "Pc: 0x8000, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x00, Y: 0x00" {
		t.Errorf("bad initial state: %s", n.rg)
	}

	if _, err := NewNES(CartPath("a.nes"), Rom([]byte{})); err == nil {
		t.Errorf("expected an error for two cartridge sources")
	}
}

func Test_newNes_RunOpTest(t *testing.T) {
	n := newTestNes(t)

	tests := []cpuTest{
		{name: "ldaIMM", code: "8000: a9 aa 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0xaa, X: 0x00, Y: 0x00"},
		{name: "ldaIMM zero", code: "8000: a9 00 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x02 (N:0 V:0 B:0 D:0 I:0 Z:1 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "ldaIMM ff", code: "8000: a9 ff 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0xff, X: 0x00, Y: 0x00"},
		{name: "ldaIMM 40", code: "8000: a9 40 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x40, X: 0x00, Y: 0x00"},
		{name: "ldaZPG", code: "8000: a5 bb 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x77, X: 0x00, Y: 0x00",
			prefix: func(n *nes) { n.ram.Write8(0xbb, 0x77) }},
		{name: "ldaZPX", code: "8000: b5 f8 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x12, X: 0x10, Y: 0x00",
			prefix: func(n *nes) {
				n.ram.Write8(0x08, 0x12)
				n.rg.X.Write(0x10)
			}},
		{name: "ldaABS", code: "8000: ad 88 18 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x88, X: 0x00, Y: 0x00",
			prefix: func(n *nes) { n.ram.Write8(0x1888, 0x88) }},
		{name: "ldaABX", code: "8000: bd fe 01 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x99, X: 0x0d, Y: 0x00",
			prefix: func(n *nes) {
				n.ram.Write8(0x020B, 0x99)
				n.rg.X.Write(0xD)
			}},
		{name: "ldaABY", code: "8000: b9 fe 01 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0xf9, X: 0x00, Y: 0x0d",
			prefix: func(n *nes) {
				n.ram.Write8(0x020B, 0xF9)
				n.rg.Y.Write(0xD)
			}},
		{name: "ldaIIX", code: "8000: a1 00 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0xcc, X: 0x01, Y: 0x00",
			prefix: func(n *nes) {
				n.ram.Write8(0x1, 0x00)
				n.ram.Write8(0x2, 0x03)
				n.ram.Write8(0x300, 0xCC)
				n.rg.X.Write(1)
			}},
		{name: "ldaIIY", code: "8000: b1 10 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x01, X: 0x00, Y: 0x02",
			prefix: func(n *nes) {
				n.ram.Write8(0x10, 0x00)
				n.ram.Write8(0x11, 0x03)
				n.ram.Write8(0x302, 0x01)
				n.rg.Y.Write(2)
			}},
		{name: "ldxIMM", code: "8000: a2 80 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x80, Y: 0x00"},
		{name: "ldxZPY", code: "8000: b6 ff 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x33, Y: 0x02",
			prefix: func(n *nes) {
				n.ram.Write8(0x01, 0x33)
				n.rg.Y.Write(2)
			}},
		{name: "ldyIMM", code: "8000: a0 00 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x02 (N:0 V:0 B:0 D:0 I:0 Z:1 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "tax", code: "8000: a9 81 aa 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x81, X: 0x81, Y: 0x00"},
		{name: "tay txa", code: "8000: a9 05 a8 a2 00 8a 00", result: "Pc: 0x8006, Sp: 0xfd, Ps: 0x02 (N:0 V:0 B:0 D:0 I:0 Z:1 C:0), Ac: 0x00, X: 0x00, Y: 0x05"},
		{name: "tya", code: "8000: a0 7f 98 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x7f, X: 0x00, Y: 0x7f"},
		{name: "tsx", code: "8000: ba 00", result: "Pc: 0x8001, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0xfd, Y: 0x00"},
		{name: "txs", code: "8000: a2 00 9a 00", result: "Pc: 0x8003, Sp: 0x00, Ps: 0x02 (N:0 V:0 B:0 D:0 I:0 Z:1 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "inx wrap", code: "8000: a2 ff e8 00", result: "Pc: 0x8003, Sp: 0xfd, Ps: 0x02 (N:0 V:0 B:0 D:0 I:0 Z:1 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "dey wrap", code: "8000: 88 00", result: "Pc: 0x8001, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x00, Y: 0xff"},
		{name: "iny dex", code: "8000: c8 ca 00", result: "Pc: 0x8002, Sp: 0xfd, Ps: 0x80 (N:1 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0xff, Y: 0x01"},
		{name: "flags", code: "8000: 38 78 f8 ea 00", result: "Pc: 0x8004, Sp: 0xfd, Ps: 0x0d (N:0 V:0 B:0 D:1 I:1 Z:0 C:1), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "clear flags", code: "8000: 38 78 f8 18 58 d8 b8 00", result: "Pc: 0x8007, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "jmpABS", code: "8000: 4c 10 80 a9 01\n8010: 00", result: "Pc: 0x8010, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x00, X: 0x00, Y: 0x00"},
		{name: "count down", code: "8000: 78 a2 ff 9a a0 03 88 d0 fd 00", result: "Pc: 0x8009, Sp: 0xff, Ps: 0x06 (N:0 V:0 B:0 D:0 I:1 Z:1 C:0), Ac: 0x00, X: 0xff, Y: 0x00"},
		{name: "beq bmi", code: "8000: a9 00 f0 02 a9 01 a9 80 30 01 00 a2 07 00", result: "Pc: 0x800d, Sp: 0xfd, Ps: 0x00 (N:0 V:0 B:0 D:0 I:0 Z:0 C:0), Ac: 0x80, X: 0x07, Y: 0x00"},
		{name: "bcc bcs", code: "8000: 38 90 01 b0 01 00 a0 01 00", result: "Pc: 0x8008, Sp: 0xfd, Ps: 0x01 (N:0 V:0 B:0 D:0 I:0 Z:0 C:1), Ac: 0x00, X: 0x00, Y: 0x01"},
	}

	for _, test := range tests {
		testCpuTest(n, t, test)
	}
}

func Test_branchNotEqual(t *testing.T) {
	tests := []struct {
		name   string
		zero   bool
		wantPc uint16
	}{
		{name: "taken", zero: false, wantPc: 0x8000},
		{name: "not taken", zero: true, wantPc: 0x8002},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := newTestNes(t)
			loadEasyCode(t, n, "8000: d0 fe")
			n.rg.Ps.Set(cpu.Z, test.zero)

			if err := n.Step(); err != nil {
				t.Fatal(err)
			}
			if n.rg.Pc.Read() != test.wantPc {
				t.Errorf("pc=0x%04x, expected 0x%04x", n.rg.Pc.Read(), test.wantPc)
			}
		})
	}
}

func Test_storeLoadRoundTrip(t *testing.T) {
	n := newTestNes(t)
	const addr = 0x0300

	for x := 0; x < 256; x++ {
		n.reset()
		val := uint8(x*7 + 1)
		base := uint16(addr - x)
		// LDA #val; STA $0300; LDA #0; LDA base,X; BRK
		code := []uint8{0xa9, val, 0x8d, 0x00, 0x03, 0xa9, 0x00, 0xbd, uint8(base), uint8(base >> 8), 0x00}
		for i, b := range code {
			n.ram.Write8(0x8000+uint16(i), b)
		}
		n.rg.X.Write(uint8(x))

		if err := runUntilBreak(n); err != nil {
			t.Fatalf("x=%d: %v", x, err)
		}
		if n.rg.Ac.Read() != val {
			t.Fatalf("x=%d: A=0x%02x, expected 0x%02x", x, n.rg.Ac.Read(), val)
		}
		cmpMem(n, t, addr, val)
	}
}

func Test_jmpIndirect(t *testing.T) {
	n := newTestNes(t)

	loadEasyCode(t, n, "8000: 6c 20 01")
	n.ram.Write8(0x0120, 0x34)
	n.ram.Write8(0x0121, 0x12)
	if err := n.Step(); err != nil {
		t.Fatal(err)
	}
	if n.rg.Pc.Read() != 0x1234 {
		t.Errorf("pc=0x%04x", n.rg.Pc.Read())
	}

	// the vector never crosses a page
	n.reset()
	loadEasyCode(t, n, "8000: 6c ff 02")
	n.ram.Write8(0x02FF, 0x78)
	n.ram.Write8(0x0200, 0x56)
	n.ram.Write8(0x0300, 0xEE)
	if err := n.Step(); err != nil {
		t.Fatal(err)
	}
	if n.rg.Pc.Read() != 0x5678 {
		t.Errorf("pc=0x%04x", n.rg.Pc.Read())
	}
}

func Test_executionErrors(t *testing.T) {
	n := newTestNes(t)

	loadEasyCode(t, n, "8000: ea 02")
	if err := n.Step(); err != nil {
		t.Fatal(err)
	}
	err := n.Step()
	var decodeErr *cpu.DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Opcode != 0x02 {
		t.Fatalf("got %v, expected a DecodeError", err)
	}
	if !strings.Contains(err.Error(), "0x8001") {
		t.Errorf("error does not name the pc: %v", err)
	}

	n.reset()
	loadEasyCode(t, n, "8000: a9 01 69 01")
	if err := n.Step(); err != nil {
		t.Fatal(err)
	}
	err = n.Step()
	var unimpl *UnimplementedInstructionError
	if !errors.As(err, &unimpl) {
		t.Fatalf("got %v, expected an UnimplementedInstructionError", err)
	}
	want := UnimplementedInstructionError{Opcode: 0x69, Name: cpu.ADC, Mode: cpu.ModeImmediate, Pc: 0x8002}
	if *unimpl != want {
		t.Errorf("got %+v, expected %+v", *unimpl, want)
	}
	if err.Error() != "unimplemented instruction 0x69 (ADC IMM) at 0x8002" {
		t.Errorf("got %q", err.Error())
	}
	if n.rg.Pc.Read() != 0x8002 || n.rg.Ac.Read() != 1 {
		t.Errorf("failed instruction changed state: %s", n.rg)
	}
}

func Test_vramThroughPorts(t *testing.T) {
	n := newTestNes(t)
	// LDA #$21 STA $2006 LDA #$08 STA $2006 LDA #$41 STA $2007 LDA #$42 STA $2007 BRK
	loadEasyCode(t, n, `8000: a9 21 8d 06 20 a9 08 8d 06 20 a9 41 8d 07 20 a9
8010: 42 8d 07 20 00`)

	if err := runUntilBreak(n); err != nil {
		t.Fatal(err)
	}
	if n.ppu.Read8(0x2108) != 0x41 || n.ppu.Read8(0x2109) != 0x42 {
		t.Errorf("vram: 0x%02x 0x%02x", n.ppu.Read8(0x2108), n.ppu.Read8(0x2109))
	}
	if n.ppu.Pointer() != 0x210A {
		t.Errorf("pointer=0x%04x", n.ppu.Pointer())
	}

	// the port window is cleared after every instruction
	cmpMem(n, t, 0x2006, 0)
	cmpMem(n, t, 0x2007, 0)
	if io := n.ram.IOWindow(); io.Written != 0 {
		t.Errorf("written mask left at %08b", io.Written)
	}
}

func Test_zeroWrites(t *testing.T) {
	tests := []struct {
		name       string
		zeroWrites bool
		wantPtr    uint16
	}{
		{name: "default", zeroWrites: false, wantPtr: 0x0021},
		{name: "zero writes", zeroWrites: true, wantPtr: 0x2101},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := newTestNes(t, ZeroWrites(test.zeroWrites))
			// LDA #$21 STA $2006 LDA #$00 STA $2006 STA $2007 BRK
			loadEasyCode(t, n, "8000: a9 21 8d 06 20 a9 00 8d 06 20 8d 07 20 00")
			if err := runUntilBreak(n); err != nil {
				t.Fatal(err)
			}
			if n.ppu.Pointer() != test.wantPtr {
				t.Errorf("pointer=0x%04x, expected 0x%04x", n.ppu.Pointer(), test.wantPtr)
			}
		})
	}
}

func image(prg, chr []byte) []byte {
	buf := []byte{'N', 'E', 'S', 0x1A, byte(len(prg) / 16384), byte(len(chr) / 8192), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = append(buf, prg...)
	return append(buf, chr...)
}

func Test_insertCartridge(t *testing.T) {
	prg := make([]byte, 16384)
	for i := range prg {
		prg[i] = 0xEA
	}
	chr := make([]byte, 8192)
	for i := 0; i < 16; i++ {
		chr[i] = 0xFF
	}

	n := newTestNes(t, Rom(image(prg, chr)))
	cmpMem(n, t, 0x8000, 0xEA)
	cmpMem(n, t, 0xBFFF, 0xEA)
	cmpMem(n, t, 0xC000, 0x00)
	if n.ppu.Tile(0)[7][7] != 3 {
		t.Errorf("tile 0 was not decoded")
	}

	bad := image(make([]byte, 16384), make([]byte, 8192))
	copy(bad, []byte{0, 0, 0, 0})
	err := n.insert(bad)
	var loadErr *common.LoadError
	if !errors.As(err, &loadErr) || !errors.Is(err, common.ErrBadMagic) {
		t.Fatalf("got %v, expected a LoadError", err)
	}
	cmpMem(n, t, 0x8000, 0xEA)
	if n.ppu.Tile(0)[0][0] != 3 {
		t.Errorf("failed load replaced the tiles")
	}

	if g, err := NewNES(Rom(bad)); err == nil || g != nil {
		t.Errorf("NewNES accepted a bad image")
	}
}

type closingDisplay struct {
	budget   int
	presents int
}

func (d *closingDisplay) Present(frame *common.Framebuffer) error {
	d.presents++
	if d.presents > d.budget {
		return common.DisplayClosed("test")
	}
	return nil
}

func Test_runStopsOnClose(t *testing.T) {
	n := newTestNes(t)
	// NOP JMP $8000
	loadEasyCode(t, n, "8000: ea 4c 00 80")

	d := &closingDisplay{budget: 3}
	if err := n.Run(d); err != nil {
		t.Fatalf("expected a clean stop, got %v", err)
	}
	if d.presents != 4 {
		t.Errorf("presented %d frames", d.presents)
	}
	if n.Stats().Steps != 4 {
		t.Errorf("ran %d instructions", n.Stats().Steps)
	}
	if n.ppu.Frame().Frames != 4 {
		t.Errorf("rendered %d frames", n.ppu.Frame().Frames)
	}
}

func Test_runReportsFailures(t *testing.T) {
	n := newTestNes(t)
	loadEasyCode(t, n, "8000: ea 02")

	err := n.Run(&closingDisplay{budget: 10})
	var decodeErr *cpu.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("got %v, expected a DecodeError", err)
	}
}

func Test_stats(t *testing.T) {
	n := newTestNes(t)
	s := n.Stats()
	if s.Valid != 151 || s.Implemented != 59 || s.Executed != 0 || s.Steps != 0 {
		t.Errorf("got %+v", s)
	}

	loadEasyCode(t, n, "8000: 78 a2 ff 9a a0 03 88 d0 fd 00")
	if err := runUntilBreak(n); err != nil {
		t.Fatal(err)
	}
	s = n.Stats()
	if s.Executed != 6 || s.Steps != 10 {
		t.Errorf("got %+v", s)
	}
	if !strings.Contains(s.String(), "RemainingValid: 92") {
		t.Errorf("got %q", s.String())
	}
}

func Test_verboseTrace(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	code := "8000: 78 a2 ff 9a a0 03 88 d0 fd 00"
	quiet := newTestNes(t)
	loadEasyCode(t, quiet, code)
	if err := runUntilBreak(quiet); err != nil {
		t.Fatal(err)
	}

	loud := newTestNes(t, Verbose(true))
	loadEasyCode(t, loud, code)
	if err := runUntilBreak(loud); err != nil {
		t.Fatal(err)
	}

	if quiet.rg.String() != loud.rg.String() {
		t.Errorf("tracing changed the result:\n%s\n%s", quiet.rg, loud.rg)
	}
	trace := buf.String()
	for _, want := range []string{
		"0x8000: 0x78 - SEI",
		"0x8001: 0xa2 - LDX #$ff",
		"0x8007: 0xd0 - BNE -3",
		"Pc: 0x8009, Sp: 0xff",
	} {
		if !strings.Contains(trace, want) {
			t.Errorf("trace is missing %q", want)
		}
	}
}

func Test_history(t *testing.T) {
	h := newHistory(3)
	if len(h.entries()) != 0 {
		t.Fatalf("new history is not empty")
	}

	for pc := uint16(0x8000); pc < 0x8005; pc++ {
		h.push(historyEntry{pc: pc, op: cpu.Opcode{Code: 0xEA, Name: cpu.NOP, Mode: cpu.ModeImplied}})
	}
	entries := h.entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	for i, want := range []uint16{0x8002, 0x8003, 0x8004} {
		if entries[i].pc != want {
			t.Errorf("entry %d: pc 0x%04x, expected 0x%04x", i, entries[i].pc, want)
		}
	}
	if entries[2].String() != "0x8004: NOP " {
		t.Errorf("got %q", entries[2].String())
	}

	h.reset()
	if len(h.entries()) != 0 {
		t.Errorf("reset left entries behind")
	}
}

func Test_runLogsHistory(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	n := newTestNes(t)
	loadEasyCode(t, n, "8000: a2 05 ca d0 fd 69 01")

	if err := n.Run(&closingDisplay{budget: 100}); err == nil {
		t.Fatal("expected ADC to stop the run")
	}
	out := buf.String()
	for _, want := range []string{"execution failed after 11 instructions", "0x8003: BNE -3", "0x8002: DEX"} {
		if !strings.Contains(out, want) {
			t.Errorf("log is missing %q:\n%s", want, out)
		}
	}
}
