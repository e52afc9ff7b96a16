package image

import "context"

// Result contains the generated image bytes and metadata.
type Result struct {
	Data     []byte // Image data (PNG/JPEG/WebP)
	MimeType string // "image/png", "image/jpeg", etc.
}

// GenerateRequest contains parameters for a single generation call.
type GenerateRequest struct {
	Prompt  string
	Size    Dimensions // one of the supported canvas sizes
	Quality string     // API quality hint, e.g. "auto"
	Debug   bool
}

// Generator is the interface to an image-generation service.
type Generator interface {
	// Name returns the provider name for messages and debug output.
	Name() string

	// Generate creates a new image from a text prompt.
	Generate(ctx context.Context, req GenerateRequest) (*Result, error)
}
