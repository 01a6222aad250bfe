package cartridge

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/famicore/famicore/nes/common"
)

// Cartridge is a validated iNES image. Prg and Chr are slices of the
// buffer it was parsed from.
type Cartridge struct {
	Prg []byte
	Chr []byte

	config iNESConfig
}

func (c *Cartridge) Mapper() byte {
	return c.config.mapper
}

func (c *Cartridge) Mirror() byte {
	return c.config.mirror
}

func (c *Cartridge) Battery() bool {
	return c.config.battery
}

func (c *Cartridge) Trainer() bool {
	return c.config.trainer
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s, mapper %d, PRG %d bytes, CHR %d bytes", c.config.version, c.config.mapper, len(c.Prg), len(c.Chr))
}

// Parse validates the whole image before returning, a failure leaves
// nothing half loaded.
func Parse(buf []byte) (*Cartridge, error) {
	header, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	config := header.Config()

	offset := HeaderSize
	if config.trainer {
		offset += TrainerSize
	}

	if config.prgSize > common.ProgramCeiling {
		return nil, &common.LoadError{
			What:    "program data",
			Details: fmt.Sprintf("%d bytes, limit is %d", config.prgSize, common.ProgramCeiling),
			Err:     common.ErrTooLarge,
		}
	}
	if config.chrSize > ChrUnit {
		return nil, &common.LoadError{
			What:    "character data",
			Details: fmt.Sprintf("%d bytes, limit is %d", config.chrSize, ChrUnit),
			Err:     common.ErrTooLarge,
		}
	}

	need := offset + config.prgSize + config.chrSize
	if len(buf) < need {
		return nil, &common.LoadError{
			What:    "cartridge",
			Details: fmt.Sprintf("%d bytes, header asks for %d", len(buf), need),
			Err:     common.ErrTruncated,
		}
	}

	if config.mapper != 0 {
		log.Printf("cartridge uses mapper %d, ignoring it", config.mapper)
	}

	return &Cartridge{
		Prg:    buf[offset : offset+config.prgSize],
		Chr:    buf[offset+config.prgSize : need],
		config: config,
	}, nil
}

func Load(path string) (*Cartridge, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &common.LoadError{What: "cartridge", Details: path, Err: err}
	}

	cart, err := Parse(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return cart, nil
}
