package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/famicore/famicore/nes/common"
)

// "NES" + EOF
const NESMagicConstant = 0x1A53454E

const (
	HeaderSize  = 16
	TrainerSize = 512
	PrgUnit     = 16384
	ChrUnit     = 8192
)

type iNESFormat int

const (
	iNESInvalid iNESFormat = iota
	iNES0                  // Archaic iNES format
	iNES1
	iNES2
)

func (f iNESFormat) String() string {
	switch f {
	case iNES0:
		return "archaic iNES"
	case iNES1:
		return "iNES"
	case iNES2:
		return "NES 2.0"
	default:
		return "invalid"
	}
}

type iNESHeader struct {
	NESMagic    int32   // "NES" + EOF
	PRG_ROMSize byte    // in 16kB units
	CHR_ROMSize byte    // in 8kB units (0 means the board uses CHR RAM)
	Flags6      byte    // Mapper, mirroring, battery, trainer
	Flags7      byte    // Mapper, VS/PlayChoice, NES 2.0
	Flags8      byte    // PRG-RAM size
	Flags9      byte    // TV System
	Flags10     byte    // TV System, PRG-RAM presence
	Padding     [5]byte // should be zero filled
}

type iNESConfig struct {
	version iNESFormat
	mapper  byte
	mirror  byte
	battery bool
	trainer bool
	prgSize int
	chrSize int
}

func readHeader(buf []byte) (iNESHeader, error) {
	h := iNESHeader{}
	if len(buf) < HeaderSize {
		return h, &common.LoadError{
			What:    "cartridge header",
			Details: fmt.Sprintf("%d bytes", len(buf)),
			Err:     common.ErrTruncated,
		}
	}
	if err := binary.Read(bytes.NewReader(buf[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return h, &common.LoadError{What: "cartridge header", Err: err}
	}
	if h.NESMagic != NESMagicConstant {
		return h, &common.LoadError{
			What:    "cartridge header",
			Details: fmt.Sprintf("magic number 0x%08x", uint32(h.NESMagic)),
			Err:     common.ErrBadMagic,
		}
	}
	return h, nil
}

func (h *iNESHeader) Version() iNESFormat {
	if h.NESMagic != NESMagicConstant {
		return iNESInvalid
	}
	if h.Flags7&0x0C == 0x08 {
		return iNES2
	}
	if h.Flags7&0x0C == 0 && h.Flags10 == 0 && h.Padding[1] == 0 && h.Padding[2] == 0 &&
		h.Padding[3] == 0 && h.Padding[4] == 0 {
		return iNES1
	}
	return iNES0
}

func (h *iNESHeader) Config() iNESConfig {
	version := h.Version()

	mapper := h.Flags6 >> 4
	if version != iNES0 {
		// archaic dumps often carry garbage in byte 7
		mapper |= h.Flags7 & 0xF0
	}
	mirror1 := h.Flags6 & 1
	mirror2 := (h.Flags6 >> 3) & 1

	return iNESConfig{
		version: version,
		mapper:  mapper,
		mirror:  mirror1 | mirror2<<1,
		battery: (h.Flags6>>1)&1 == 1,
		trainer: h.Flags6&4 == 4,
		prgSize: int(h.PRG_ROMSize) * PrgUnit,
		chrSize: int(h.CHR_ROMSize) * ChrUnit,
	}
}
