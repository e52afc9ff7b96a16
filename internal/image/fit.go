package image

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// FitExact scales img so it fully covers the target rectangle, then trims the
// overflow evenly from both sides. The result is always exactly
// targetWidth x targetHeight.
func FitExact(img image.Image, targetWidth, targetHeight int) image.Image {
	srcWidth := img.Bounds().Dx()
	srcHeight := img.Bounds().Dy()
	if srcWidth == targetWidth && srcHeight == targetHeight {
		return img
	}

	srcRatio := float64(srcWidth) / float64(srcHeight)
	targetRatio := float64(targetWidth) / float64(targetHeight)

	// Scale along the axis that leaves the other one overflowing, so the
	// scaled image is at least as large as the target in both dimensions.
	var newWidth, newHeight int
	if srcRatio > targetRatio {
		newHeight = targetHeight
		newWidth = int(math.Round(float64(srcWidth) * float64(targetHeight) / float64(srcHeight)))
	} else {
		newWidth = targetWidth
		newHeight = int(math.Round(float64(srcHeight) * float64(targetWidth) / float64(srcWidth)))
	}

	scaled := img
	if newWidth != srcWidth || newHeight != srcHeight {
		scaled = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	left := (newWidth - targetWidth) / 2
	top := (newHeight - targetHeight) / 2
	return imaging.Crop(scaled, image.Rect(left, top, left+targetWidth, top+targetHeight))
}
