package minipng

import (
	"errors"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

var errColors = errors.New("minipng: number of colors must be between 1 and 256")

// Quantize reduces m to a palette image of at most n colors using median
// cut. For n of two or more a black and white image maps directly onto a
// black and white palette. A palette image with an index outside its
// palette fails with ErrPaletteIndexOutOfRange.
func Quantize(m Image, n int) (*Paletted, error) {
	if n < 1 || n > maxColors {
		return nil, errColors
	}
	if src, ok := m.(*Paletted); ok {
		if err := src.check(); err != nil {
			return nil, err
		}
	}

	width, height := m.size()
	pm := &Paletted{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
	if len(pm.Pix) == 0 {
		return pm, nil
	}

	var p color.Palette
	if _, ok := m.(*BW); ok && n >= 2 {
		p = color.Palette{color.Gray{}, color.Gray{0xff}}
	} else {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, n), m)
	}

	pm.Palette = make(Palette, len(p))
	for i, c := range p {
		pm.Palette[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.Pix[y*width+x] = uint8(p.Index(m.At(x, y)))
		}
	}

	return pm, nil
}
