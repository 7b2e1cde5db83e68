package minipng

import (
	"image"
	"image/color"
	"io"
)

// Image is a reconstructed Mini-PNG image. It is implemented by *BW,
// *Grey, *Paletted and *RGB only. Pixels are stored row-major.
type Image interface {
	image.Image

	// PixelType returns the pixel type the image was built from.
	PixelType() PixelType

	// Display renders the image to w one line per row.
	Display(w io.Writer) error

	size() (width, height int)
}

// BW is a black and white image; true is a set bit, which is white.
type BW struct {
	Width, Height int
	Pix           []bool
}

func (m *BW) PixelType() PixelType { return BlackWhite }
func (m *BW) ColorModel() color.Model { return color.GrayModel }
func (m *BW) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }
func (m *BW) size() (width, height int) { return m.Width, m.Height }
func (m *BW) Display(w io.Writer) error { return display(w, m) }

func (m *BW) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.Gray{}
	}
	if m.Pix[y*m.Width+x] {
		return color.Gray{0xff}
	}
	return color.Gray{}
}

// Grey is a greyscale image, one intensity per pixel.
type Grey struct {
	Width, Height int
	Pix           []uint8
}

func (m *Grey) PixelType() PixelType { return Greyscale }
func (m *Grey) ColorModel() color.Model { return color.GrayModel }
func (m *Grey) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }
func (m *Grey) size() (width, height int) { return m.Width, m.Height }
func (m *Grey) Display(w io.Writer) error { return display(w, m) }

func (m *Grey) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.Gray{}
	}
	return color.Gray{m.Pix[y*m.Width+x]}
}

// Paletted is an image of palette indices. Indices are not checked against
// the palette until the image is displayed.
type Paletted struct {
	Width, Height int
	Pix           []uint8
	Palette       Palette
}

func (m *Paletted) PixelType() PixelType { return PaletteIndex }
func (m *Paletted) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }
func (m *Paletted) size() (width, height int) { return m.Width, m.Height }
func (m *Paletted) Display(w io.Writer) error { return display(w, m) }

func (m *Paletted) ColorModel() color.Model {
	p := make(color.Palette, len(m.Palette))
	for i, c := range m.Palette {
		p[i] = c
	}
	return p
}

// At returns transparent black for an index outside the palette.
func (m *Paletted) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	c, _ := m.lookup(y*m.Width + x)
	return c
}

func (m *Paletted) lookup(i int) (color.RGBA, bool) {
	idx := int(m.Pix[i])
	if idx >= len(m.Palette) {
		return color.RGBA{}, false
	}
	return m.Palette[idx], true
}

// RGB is a 24-bit color image.
type RGB struct {
	Width, Height int
	Pix           []color.RGBA
}

func (m *RGB) PixelType() PixelType { return TrueColor }
func (m *RGB) ColorModel() color.Model { return color.RGBAModel }
func (m *RGB) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }
func (m *RGB) size() (width, height int) { return m.Width, m.Height }
func (m *RGB) Display(w io.Writer) error { return display(w, m) }

func (m *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	return m.Pix[y*m.Width+x]
}
