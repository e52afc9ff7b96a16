package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

const jpegQuality = 95

// Decode decodes PNG, JPEG or WebP bytes into an in-memory image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// HasAlpha reports whether img contains any non-opaque pixels. Formats
// without an alpha channel (like JPEG's YCbCr) always report false.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// FlattenOnWhite composites img over an opaque white background. JPEG has no
// alpha channel, so transparency has to be resolved before encoding.
func FlattenOnWhite(img image.Image) image.Image {
	background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// Encode encodes an image in the format implied by the file extension.
func Encode(img image.Image, ext string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch ext {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return buf.Bytes(), nil
}
