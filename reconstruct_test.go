package minipng

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	assert.Equal(t, [8]bool{true, false, true, true, false, false, false, false}, unpack(0xb0))
	assert.Equal(t, [8]bool{false, false, false, false, false, false, false, true}, unpack(0x01))
	assert.Equal(t, [8]bool{true, true, true, true, true, true, true, true}, unpack(0xff))
}

func TestReconstructBW(t *testing.T) {
	// Pixels run on across byte boundaries, rows are not padded
	m, err := Reconstruct(Header{3, 3, BlackWhite}, []byte{0xb0, 0x80, 0xff}, nil)
	require.NoError(t, err)

	bw, ok := m.(*BW)
	require.True(t, ok)
	assert.Equal(t, []bool{
		true, false, true,
		true, false, false,
		false, false, true,
	}, bw.Pix)

	assert.Equal(t, color.Gray{0xff}, bw.At(0, 0))
	assert.Equal(t, color.Gray{}, bw.At(1, 0))
	assert.Equal(t, color.Gray{}, bw.At(5, 5))
}

func TestReconstructGrey(t *testing.T) {
	m, err := Reconstruct(Header{2, 2, Greyscale}, []byte{0, 64, 128, 255, 7}, nil)
	require.NoError(t, err)

	g, ok := m.(*Grey)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 64, 128, 255}, g.Pix)
	assert.Equal(t, color.Gray{128}, g.At(0, 1))
	assert.Equal(t, color.GrayModel, g.ColorModel())
}

func TestReconstructPaletted(t *testing.T) {
	p := Palette{{0xff, 0, 0, 0xff}, {0, 0xff, 0, 0xff}}
	m, err := Reconstruct(Header{3, 1, PaletteIndex}, []byte{1, 0, 9}, p)
	require.NoError(t, err)

	pm, ok := m.(*Paletted)
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 0, 9}, pm.Pix)
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, pm.At(0, 0))
	assert.Equal(t, color.RGBA{}, pm.At(2, 0))
	assert.Len(t, pm.ColorModel().(color.Palette), 2)
}

func TestReconstructRGB(t *testing.T) {
	m, err := Reconstruct(Header{2, 1, TrueColor}, []byte{1, 2, 3, 4, 5, 6}, nil)
	require.NoError(t, err)

	rgb, ok := m.(*RGB)
	require.True(t, ok)
	assert.Equal(t, []color.RGBA{{1, 2, 3, 0xff}, {4, 5, 6, 0xff}}, rgb.Pix)
	assert.Equal(t, color.RGBA{4, 5, 6, 0xff}, rgb.At(1, 0))
}

func TestReconstructErrors(t *testing.T) {
	_, err := Reconstruct(Header{1, 1, PixelType(7)}, []byte{0, 0, 0}, nil)
	assert.True(t, errors.Is(err, ErrInvalidPixelType))

	_, err = Reconstruct(Header{2, 2, TrueColor}, []byte{0, 0, 0}, nil)
	assert.True(t, errors.Is(err, ErrInsufficientData))

	_, err = Reconstruct(Header{9, 1, BlackWhite}, []byte{0}, nil)
	assert.True(t, errors.Is(err, ErrInsufficientData))
}

func TestReconstructEmpty(t *testing.T) {
	m, err := Reconstruct(Header{0, 0, BlackWhite}, nil, nil)
	require.NoError(t, err)
	assert.True(t, m.Bounds().Empty())
}
