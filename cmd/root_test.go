package cmd

import "testing"

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name      string
		widthSet  bool
		heightSet bool
		width     int
		height    int
		wantErr   bool
	}{
		{"neither supplied", false, false, 0, 0, false},
		{"both supplied", true, true, 800, 600, false},
		{"width without height", true, false, 500, 0, true},
		{"height without width", false, true, 0, 500, true},
		{"zero width", true, true, 0, 600, true},
		{"negative height", true, true, 800, -1, true},
		{"oversized accepted", true, true, 4096, 4096, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDimensions(tt.widthSet, tt.heightSet, tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDimensions(%v, %v, %d, %d) error=%v, wantErr=%v",
					tt.widthSet, tt.heightSet, tt.width, tt.height, err, tt.wantErr)
			}
		})
	}
}

func TestApplyAlphaPolicy(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		hasAlpha    bool
		wantPath    string
		wantFlatten bool
	}{
		{"no extension gets png", "out", false, "out.png", false},
		{"png keeps alpha", "out.png", true, "out.png", false},
		{"jpg without alpha untouched", "out.jpg", false, "out.jpg", false},
		{"jpg with alpha flattens", "out.jpg", true, "out.jpg", true},
		{"jpeg with alpha flattens", "out.jpeg", true, "out.jpeg", true},
		{"uppercase jpeg flattens", "out.JPEG", true, "out.JPEG", true},
		{"other extension with alpha forced to png", "out.webp", true, "out.png", false},
		{"other extension without alpha untouched", "out.webp", false, "out.webp", false},
		{"dotted directory unaffected", "./pics.d/out.jpg", true, "./pics.d/out.jpg", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPath, gotFlatten := applyAlphaPolicy(tt.path, tt.hasAlpha)
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
			if gotFlatten != tt.wantFlatten {
				t.Errorf("flatten = %v, want %v", gotFlatten, tt.wantFlatten)
			}
		})
	}
}
