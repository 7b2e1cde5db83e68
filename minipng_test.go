package minipng

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func block(tag byte, payload []byte) []byte {
	b := make([]byte, 5, 5+len(payload))
	b[0] = tag
	binary.BigEndian.PutUint32(b[1:], uint32(len(payload)))
	return append(b, payload...)
}

func header(width, height uint32, p PixelType) []byte {
	b := make([]byte, headerLength)
	binary.BigEndian.PutUint32(b[0:], width)
	binary.BigEndian.PutUint32(b[4:], height)
	b[8] = byte(p)
	return block(tagHeader, b)
}

func file(blocks ...[]byte) []byte {
	b := []byte(magic)
	for _, blk := range blocks {
		b = append(b, blk...)
	}
	return b
}

func TestPixelTypeString(t *testing.T) {
	tables := []struct {
		p    PixelType
		want string
	}{
		{BlackWhite, "black and white"},
		{Greyscale, "grey level"},
		{PaletteIndex, "palette"},
		{TrueColor, "24 bit color"},
		{PixelType(9), "found invalid mode 9"},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, table.p.String())
	}
}

func TestFootprint(t *testing.T) {
	tables := []struct {
		p      PixelType
		pixels uint64
		want   uint64
		ok     bool
	}{
		{BlackWhite, 0, 0, true},
		{BlackWhite, 1, 1, true},
		{BlackWhite, 8, 1, true},
		{BlackWhite, 9, 2, true},
		{Greyscale, 12, 12, true},
		{PaletteIndex, 12, 12, true},
		{TrueColor, 12, 36, true},
		{TrueColor, 1 << 63, 0, false},
		{PixelType(4), 1, 0, false},
	}

	for _, table := range tables {
		got, ok := table.p.footprint(table.pixels)
		assert.Equal(t, table.ok, ok)
		assert.Equal(t, table.want, got)
	}
}
