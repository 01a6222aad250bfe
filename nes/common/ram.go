package common

import "fmt"

const (
	MemorySize = 0x10000

	// prg data is loaded here and may use the rest of the address space
	ProgramBase    = 0x8000
	ProgramCeiling = MemorySize - ProgramBase

	// ppu registers $2000-$2007
	IOBase = 0x2000
	IOSize = 8
)

// IOSnapshot is the content of the ppu register window after one
// instruction. Written has bit i set when port i was stored to, which
// allows a genuine zero byte to be told apart from no write at all.
type IOSnapshot struct {
	Ports   [IOSize]uint8
	Written uint8
}

// Memory is the flat cpu address space
type Memory struct {
	ram [MemorySize]byte

	ioWritten uint8
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.ram[addr]
}
func (m *Memory) Write8(addr uint16, val uint8) {
	if addr >= IOBase && addr < IOBase+IOSize {
		m.ioWritten |= 1 << (addr - IOBase)
	}
	m.ram[addr] = val
}

// little endian
func (m *Memory) Read16(addr uint16) uint16 {
	return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
}
func (m *Memory) Write16(addr uint16, val uint16) {
	m.Write8(addr, uint8(val&0xFF))
	m.Write8(addr+1, uint8((val&0xFF00)>>8))
}

func (m *Memory) LoadProgram(prg []byte) error {
	if len(prg) > ProgramCeiling {
		return &LoadError{
			What:    "program",
			Details: fmt.Sprintf("%d bytes, limit is %d", len(prg), ProgramCeiling),
			Err:     ErrTooLarge,
		}
	}
	copy(m.ram[ProgramBase:], prg)
	return nil
}

func (m *Memory) IOWindow() IOSnapshot {
	s := IOSnapshot{Written: m.ioWritten}
	copy(s.Ports[:], m.ram[IOBase:IOBase+IOSize])
	return s
}

func (m *Memory) ClearIOWindow() {
	for i := 0; i < IOSize; i++ {
		m.ram[IOBase+i] = 0
	}
	m.ioWritten = 0
}
