package image

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAlpha(t *testing.T) {
	opaque := imaging.New(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	assert.False(t, HasAlpha(opaque))

	translucent := imaging.New(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 128})
	assert.True(t, HasAlpha(translucent))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestEncodeDecodePNG(t *testing.T) {
	src := imaging.New(8, 6, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	data, err := Encode(src, ".png")
	require.NoError(t, err)

	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestDecodedJPEGHasNoAlpha(t *testing.T) {
	src := imaging.New(8, 8, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	data, err := Encode(src, ".jpg")
	require.NoError(t, err)

	img, err := Decode(data)
	require.NoError(t, err)
	assert.False(t, HasAlpha(img))
}

func TestFlattenOnWhite(t *testing.T) {
	src := imaging.New(2, 2, color.NRGBA{})
	require.True(t, HasAlpha(src))

	flat := FlattenOnWhite(src)
	assert.False(t, HasAlpha(flat))

	out := imaging.Clone(flat)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, 2, flat.Bounds().Dx())
	assert.Equal(t, 2, flat.Bounds().Dy())
}

func TestFlattenOnWhiteKeepsOpaquePixels(t *testing.T) {
	src := imaging.New(2, 2, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	flat := FlattenOnWhite(src)
	out := imaging.Clone(flat)
	assert.Equal(t, color.NRGBA{R: 40, G: 80, B: 120, A: 255}, out.NRGBAAt(1, 1))
}

func TestEncodeUnsupportedExtension(t *testing.T) {
	src := imaging.New(2, 2, color.NRGBA{A: 255})
	_, err := Encode(src, ".webp")
	assert.Error(t, err)
}
