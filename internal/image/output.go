package image

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// ListDir returns the entry names of a directory. Injected so filename
// derivation is testable without a real file system.
type ListDir func(dir string) ([]string, error)

var defaultNamePattern = regexp.MustCompile(`^generated_image_(\d+)\.(?i:png|jpe?g)$`)

// NextDefaultFilename scans dir for files named generated_image_<N>.<ext> and
// returns generated_image_<N+1>.png, where N is the highest index found.
// An empty directory yields generated_image_1.png.
func NextDefaultFilename(dir string, list ListDir) (string, error) {
	names, err := list(dir)
	if err != nil {
		return "", fmt.Errorf("listing %s: %w", dir, err)
	}

	highest := 0
	for _, name := range names {
		m := defaultNamePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("generated_image_%d.png", highest+1), nil
}

// OSListDir lists a real directory for use as the ListDir collaborator.
func OSListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
