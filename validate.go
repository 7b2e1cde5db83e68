package minipng

// Validate checks the parsed blocks are consistent: there is a header with
// a known pixel type, a palette if one is needed, and enough data to cover
// every pixel. Data beyond what the header needs is allowed and ignored,
// including a partial last row.
func Validate(f *File) error {
	if f.Header == nil {
		return malformed(ErrMissingHeader, -1, "")
	}
	h := f.Header

	if !h.PixelType.Valid() {
		return malformed(ErrInvalidPixelType, -1, "%d", uint8(h.PixelType))
	}

	if h.PixelType == PaletteIndex && !f.hasPalette {
		return malformed(ErrMissingPalette, -1, "")
	}

	need, ok := h.PixelType.footprint(h.Pixels())
	have := f.DataLength()
	if !ok || have < need {
		return malformed(ErrInsufficientData, -1, "%dx%d %s needs %d bytes, have %d", h.Width, h.Height, h.PixelType, need, have)
	}

	return nil
}
