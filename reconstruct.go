package minipng

import "image/color"

// unpack expands b into eight pixels, most significant bit first.
func unpack(b byte) (p [8]bool) {
	for i := range p {
		p[i] = b&(0x80>>uint(i)) != 0
	}
	return
}

// Reconstruct builds the pixel buffer for h from the concatenated data
// blocks. p is only used by palette images. The blocks should already have
// been checked with Validate.
func Reconstruct(h Header, data []byte, p Palette) (Image, error) {
	if !h.PixelType.Valid() {
		return nil, malformed(ErrInvalidPixelType, -1, "%d", uint8(h.PixelType))
	}
	need, ok := h.PixelType.footprint(h.Pixels())
	if !ok || uint64(len(data)) < need {
		return nil, malformed(ErrInsufficientData, -1, "need %d bytes, have %d", need, len(data))
	}

	width, height := int(h.Width), int(h.Height)
	n := width * height

	switch h.PixelType {
	case BlackWhite:
		m := &BW{Width: width, Height: height, Pix: make([]bool, n)}
		for i := 0; i < n; i += 8 {
			bits := unpack(data[i>>3])
			copy(m.Pix[i:], bits[:])
		}
		return m, nil
	case Greyscale:
		m := &Grey{Width: width, Height: height, Pix: make([]uint8, n)}
		copy(m.Pix, data)
		return m, nil
	case PaletteIndex:
		m := &Paletted{Width: width, Height: height, Pix: make([]uint8, n), Palette: p}
		copy(m.Pix, data)
		return m, nil
	case TrueColor:
		m := &RGB{Width: width, Height: height, Pix: make([]color.RGBA, n)}
		for i := range m.Pix {
			m.Pix[i] = color.RGBA{data[i*3], data[i*3+1], data[i*3+2], 0xff}
		}
		return m, nil
	}

	return nil, malformed(ErrInvalidPixelType, -1, "%d", uint8(h.PixelType))
}
