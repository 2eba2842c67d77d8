// export.go — Multi-resolution export into one directory.
package generator

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Target is one output file and its square pixel size.
type Target struct {
	Name string
	Size int
}

// DefaultTargets are the icon files produced on every run, largest first.
var DefaultTargets = []Target{
	{Name: "icon.png", Size: 1024},
	{Name: "icon-512.png", Size: 512},
	{Name: "icon-256.png", Size: 256},
}

// Export creates dir if needed and writes img once per target, resampling
// from img whenever the target size differs from its width. It returns the
// written paths in target order. The first failure aborts the export;
// files already written are left in place.
func Export(dir string, img image.Image, targets []Target) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		out := img
		if t.Size != img.Bounds().Dx() || t.Size != img.Bounds().Dy() {
			out = Resize(img, t.Size)
		}

		p := filepath.Join(dir, t.Name)
		if err := Generate(p, out); err != nil {
			return paths, fmt.Errorf("write %s: %w", t.Name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
