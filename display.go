package minipng

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

const (
	glyph = "██"
	reset = "\x1b[0m"

	bwSet   = ' '
	bwClear = 'X'
)

func writeColor(w *bufio.Writer, c color.RGBA) {
	fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm%s", c.R, c.G, c.B, glyph)
}

// check returns an error for the first pixel whose index is outside the
// palette.
func (m *Paletted) check() error {
	for i := range m.Pix {
		if _, ok := m.lookup(i); !ok {
			return malformed(ErrPaletteIndexOutOfRange, -1, "pixel %d has index %d, palette has %d colors", i, m.Pix[i], len(m.Palette))
		}
	}
	return nil
}

func display(w io.Writer, m Image) error {
	width, height := m.size()
	if width == 0 || height == 0 {
		return nil
	}

	var pixel func(w *bufio.Writer, i int)
	colored := true
	switch m := m.(type) {
	case *BW:
		colored = false
		pixel = func(w *bufio.Writer, i int) {
			if m.Pix[i] {
				w.WriteByte(bwSet)
			} else {
				w.WriteByte(bwClear)
			}
		}
	case *Grey:
		pixel = func(w *bufio.Writer, i int) {
			v := m.Pix[i]
			writeColor(w, color.RGBA{v, v, v, 0xff})
		}
	case *Paletted:
		if err := m.check(); err != nil {
			return err
		}
		pixel = func(w *bufio.Writer, i int) {
			c, _ := m.lookup(i)
			writeColor(w, c)
		}
	case *RGB:
		pixel = func(w *bufio.Writer, i int) {
			writeColor(w, m.Pix[i])
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel(bw, y*width+x)
		}
		if colored {
			bw.WriteString(reset)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
