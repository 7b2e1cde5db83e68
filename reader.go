package minipng

import (
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

func init() {
	image.RegisterFormat("minipng", magic, Decode, DecodeConfig)
}

// Load parses, validates and reconstructs b, stopping at the first
// problem.
func Load(b []byte) (*File, Image, error) {
	f, err := parseValid(b)
	if err != nil {
		return nil, nil, err
	}
	m, err := Reconstruct(*f.Header, f.Pixels(), f.Palette)
	if err != nil {
		return nil, nil, err
	}
	return f, m, nil
}

func parseValid(b []byte) (*File, error) {
	f, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

func readAll(r io.Reader) (*File, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseValid(b)
}

// Decode reads a Mini-PNG image from r and returns it as an image.Image.
// The whole of r is read before decoding starts.
func Decode(r io.Reader) (image.Image, error) {
	f, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Reconstruct(*f.Header, f.Pixels(), f.Palette)
}

// DecodeConfig returns the color model and dimensions of a Mini-PNG image
// without reconstructing the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	f, err := readAll(r)
	if err != nil {
		return image.Config{}, err
	}

	var model color.Model
	switch f.Header.PixelType {
	case BlackWhite, Greyscale:
		model = color.GrayModel
	case PaletteIndex:
		model = (&Paletted{Palette: f.Palette}).ColorModel()
	case TrueColor:
		model = color.RGBAModel
	}

	return image.Config{
		ColorModel: model,
		Width:      int(f.Header.Width),
		Height:     int(f.Header.Height),
	}, nil
}
