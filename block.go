package minipng

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"strings"
)

// Block is one decoded block. It is implemented by Header, Comment, Palette
// and Data only.
type Block interface {
	Tag() byte
	isBlock()
}

// Header holds the image dimensions and pixel type.
type Header struct {
	Width     uint32
	Height    uint32
	PixelType PixelType
}

// Tag returns 'H'.
func (Header) Tag() byte { return tagHeader }

func (Header) isBlock() {}

// Pixels returns the number of pixels described by the header.
func (h Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

func (h Header) String() string {
	return fmt.Sprintf("Image info :\n%dx%d, %s", h.Width, h.Height, h.PixelType)
}

// Comment is free text; each payload byte is one character.
type Comment struct {
	Text string
}

// Tag returns 'C'.
func (Comment) Tag() byte { return tagComment }

func (Comment) isBlock() {}

func (c Comment) String() string {
	return "Comment : " + c.Text
}

// Palette maps pixel indices to colors.
type Palette []color.RGBA

// Tag returns 'P'.
func (Palette) Tag() byte { return tagPalette }

func (Palette) isBlock() {}

func (p Palette) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette : %d colors", len(p))
	for i, c := range p {
		fmt.Fprintf(&sb, "\n%3d #%02x%02x%02x", i, c.R, c.G, c.B)
	}
	return sb.String()
}

// Data is an opaque chunk of pixel data.
type Data []byte

// Tag returns 'D'.
func (Data) Tag() byte { return tagData }

func (Data) isBlock() {}

func decodeHeader(b []byte, off int) (Header, error) {
	if len(b) != headerLength {
		return Header{}, malformed(ErrMalformedHeader, off, "length %d, expected %d", len(b), headerLength)
	}
	return Header{
		Width:     binary.BigEndian.Uint32(b[0:4]),
		Height:    binary.BigEndian.Uint32(b[4:8]),
		PixelType: PixelType(b[8]),
	}, nil
}

func decodeComment(b []byte) Comment {
	// Bytes map directly to code points, so 0x80-0xff read as Latin-1
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return Comment{Text: string(r)}
}

func decodePalette(b []byte, off int) (Palette, error) {
	if len(b)%3 != 0 {
		return nil, malformed(ErrMalformedPalette, off, "length %d is not a multiple of 3", len(b))
	}
	p := make(Palette, len(b)/3)
	for i := range p {
		p[i] = color.RGBA{b[i*3], b[i*3+1], b[i*3+2], 0xff}
	}
	return p, nil
}

func decodeData(b []byte) Data {
	d := make(Data, len(b))
	copy(d, b)
	return d
}

// decodeBlock turns a tagged payload into a Block. ok is false for tags
// that are not understood.
func decodeBlock(tag byte, payload []byte, off int) (Block, bool, error) {
	switch tag {
	case tagHeader:
		h, err := decodeHeader(payload, off)
		return h, true, err
	case tagComment:
		return decodeComment(payload), true, nil
	case tagPalette:
		p, err := decodePalette(payload, off)
		return p, true, err
	case tagData:
		return decodeData(payload), true, nil
	default:
		return nil, false, nil
	}
}
