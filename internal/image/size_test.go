package image

import "testing"

func TestSelectGenerationSize(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Dimensions
	}{
		{"no preference defaults to square", 0, 0, SizeSquare},
		{"square", 512, 512, SizeSquare},
		{"large square", 4096, 4096, SizeSquare},
		{"hd landscape", 1920, 1080, SizeLandscape},
		{"hd portrait", 1080, 1920, SizePortrait},
		{"exact portrait ratio", 800, 1200, SizePortrait},
		{"ultrawide", 3440, 1440, SizeLandscape},
		{"very tall", 1000, 3000, SizePortrait},
		{"width only assumes square", 500, 0, SizeSquare},
		{"height only assumes square", 0, 720, SizeSquare},
		// 1280/1024 = 1.25 sits exactly between the square and landscape
		// ratios; the earlier candidate in enumeration order wins.
		{"equidistant keeps earlier candidate", 1280, 1024, SizeSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectGenerationSize(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("SelectGenerationSize(%d, %d) = %s, want %s", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestDimensionsString(t *testing.T) {
	if got := SizePortrait.String(); got != "1024x1536" {
		t.Errorf("String() = %q, want %q", got, "1024x1536")
	}
}
