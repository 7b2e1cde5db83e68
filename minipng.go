/*
Package minipng implements a Mini-PNG image decoder.

A Mini-PNG file is the eight byte literal "Mini-PNG" followed by a sequence
of blocks. Each block is a one byte tag, a big-endian 32-bit payload length
and the payload itself:

	'H'  header; width and height as big-endian 32-bit values then a pixel type
	'C'  comment; one byte per character
	'P'  palette; RGB triples, used by palette images only
	'D'  data; concatenated in file order to form the pixel data

Blocks with any other tag are skipped. There is no end marker, the file ends
when the input does.

Four pixel types are defined: 0 is black and white packed eight pixels per
byte most significant bit first, 1 is one byte of grey level per pixel, 2 is
one byte of palette index per pixel and 3 is three bytes of red, green and
blue per pixel.
*/
package minipng

import (
	"fmt"
)

const (
	magic = "Mini-PNG"

	tagHeader  = 'H'
	tagComment = 'C'
	tagPalette = 'P'
	tagData    = 'D'

	headerLength = 9
)

// PixelType selects how the data blocks encode pixels.
type PixelType uint8

// The known pixel types.
const (
	BlackWhite PixelType = iota
	Greyscale
	PaletteIndex
	TrueColor
)

// Valid reports whether p is one of the four known pixel types.
func (p PixelType) Valid() bool {
	return p <= TrueColor
}

func (p PixelType) String() string {
	switch p {
	case BlackWhite:
		return "black and white"
	case Greyscale:
		return "grey level"
	case PaletteIndex:
		return "palette"
	case TrueColor:
		return "24 bit color"
	default:
		return fmt.Sprintf("found invalid mode %d", uint8(p))
	}
}

// footprint returns the number of bytes needed to hold n pixels of type p.
// ok is false if the result does not fit in a uint64 or p is invalid.
func (p PixelType) footprint(n uint64) (uint64, bool) {
	switch p {
	case BlackWhite:
		return n/8 + min(n%8, 1), true
	case Greyscale, PaletteIndex:
		return n, true
	case TrueColor:
		if n > ^uint64(0)/3 {
			return 0, false
		}
		return n * 3, true
	default:
		return 0, false
	}
}
