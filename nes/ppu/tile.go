package ppu

import (
	"fmt"

	"github.com/famicore/famicore/nes/common"
)

const (
	TileSize  = 8
	TileBytes = 16
	MaxTiles  = 512
)

// Tile holds 2 bit pixel indexes as [y][x]
type Tile [TileSize][TileSize]uint8

// a tile record is two bitplanes of 8 rows each, the msb of a row
// byte is the leftmost pixel
func decodeTile(data []byte) Tile {
	var t Tile
	for y := uint(0); y < TileSize; y++ {
		lo := data[y]
		hi := data[y+TileSize]
		for x := uint(0); x < TileSize; x++ {
			bit := TileSize - 1 - x
			t[y][x] = (hi>>bit&1)<<1 | (lo>>bit)&1
		}
	}
	return t
}

// DecodeTiles turns chr data into tiles, any tile not covered by chr
// stays blank. A trailing partial record is ignored.
func DecodeTiles(chr []byte) (*[MaxTiles]Tile, error) {
	if len(chr) > MaxTiles*TileBytes {
		return nil, &common.LoadError{
			What:    "character data",
			Details: fmt.Sprintf("%d bytes, limit is %d", len(chr), MaxTiles*TileBytes),
			Err:     common.ErrTooLarge,
		}
	}

	tiles := new([MaxTiles]Tile)
	for i := 0; i < len(chr)/TileBytes; i++ {
		tiles[i] = decodeTile(chr[i*TileBytes : (i+1)*TileBytes])
	}
	return tiles, nil
}
