package ppu

import "image/color"

// no palette ram is emulated, pixel indexes map straight to grey levels
var grayscale = [4]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xFF},
	{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}
