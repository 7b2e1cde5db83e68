package minipng

import (
	"bytes"
)

// File is the result of parsing; the blocks it contains, grouped by kind
// and kept in file order.
type File struct {
	Header   *Header
	Comments []Comment
	Palette  Palette
	Data     []Data

	// Skipped counts blocks with an unknown tag.
	Skipped int

	hasPalette bool
}

// HasPalette reports whether a palette block was present, it may have had
// no entries.
func (f *File) HasPalette() bool {
	return f.hasPalette
}

// DataLength returns the total number of bytes across all data blocks.
func (f *File) DataLength() uint64 {
	var n uint64
	for _, d := range f.Data {
		n += uint64(len(d))
	}
	return n
}

// Pixels returns all data blocks concatenated in file order.
func (f *File) Pixels() []byte {
	b := make([]byte, 0, f.DataLength())
	for _, d := range f.Data {
		b = append(b, d...)
	}
	return b
}

// ValidMagic reports whether b starts with the Mini-PNG signature.
func ValidMagic(b []byte) bool {
	return len(b) >= len(magic) && bytes.Equal(b[:len(magic)], []byte(magic))
}

// Parse splits b into blocks. It checks framing only; use Validate to check
// the blocks are consistent with each other.
func Parse(b []byte) (*File, error) {
	if !ValidMagic(b) {
		return nil, malformed(ErrBadMagic, 0, "")
	}

	c := newCursor(b)
	c.off = len(magic)

	f := new(File)
	for c.remaining() > 0 {
		off := c.off
		tag, err := c.readU8()
		if err != nil {
			return nil, err
		}
		length, err := c.readU32()
		if err != nil {
			return nil, err
		}
		if tag == tagHeader && length != headerLength {
			return nil, malformed(ErrMalformedHeader, off, "length %d, expected %d", length, headerLength)
		}
		payload, err := c.readN(length)
		if err != nil {
			return nil, err
		}

		block, ok, err := decodeBlock(tag, payload, off)
		if err != nil {
			return nil, err
		}
		if !ok {
			f.Skipped++
			continue
		}

		switch v := block.(type) {
		case Header:
			if f.Header != nil {
				return nil, malformed(ErrDuplicateHeader, off, "")
			}
			f.Header = &v
		case Comment:
			f.Comments = append(f.Comments, v)
		case Palette:
			if f.hasPalette {
				return nil, malformed(ErrDuplicatePalette, off, "")
			}
			f.Palette, f.hasPalette = v, true
		case Data:
			f.Data = append(f.Data, v)
		}
	}

	return f, nil
}
