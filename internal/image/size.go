package image

import (
	"fmt"
	"math"
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// String formats dimensions the way the API expects them, e.g. "1024x1024".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Ratio returns width divided by height.
func (d Dimensions) Ratio() float64 {
	return float64(d.Width) / float64(d.Height)
}

// The three canvas sizes gpt-image-1 accepts. Order matters: when two
// candidates are equidistant from the requested ratio, the earlier one wins.
var (
	SizeSquare    = Dimensions{Width: 1024, Height: 1024}
	SizePortrait  = Dimensions{Width: 1024, Height: 1536}
	SizeLandscape = Dimensions{Width: 1536, Height: 1024}
)

var supportedSizes = []Dimensions{SizeSquare, SizePortrait, SizeLandscape}

// SelectGenerationSize maps a requested size onto the supported canvas whose
// aspect ratio is closest to the request. A zero width or height means the
// caller didn't specify that dimension; with neither given the square default
// is returned, and with one given the missing side is assumed equal to it.
func SelectGenerationSize(width, height int) Dimensions {
	if width <= 0 && height <= 0 {
		return SizeSquare
	}
	if width <= 0 {
		width = height
	}
	if height <= 0 {
		height = width
	}

	target := float64(width) / float64(height)
	best := supportedSizes[0]
	bestDiff := math.Abs(best.Ratio() - target)
	for _, candidate := range supportedSizes[1:] {
		if diff := math.Abs(candidate.Ratio() - target); diff < bestDiff {
			best = candidate
			bestDiff = diff
		}
	}
	return best
}
