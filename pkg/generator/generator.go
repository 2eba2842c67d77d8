// Package generator turns a rendered image into files on disk.
//
// All output follows one pipeline: resample the full-resolution image to
// each target size, then encode it in the format implied by the file
// extension.
package generator

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Generate writes img to output. The format is inferred from the extension:
//   - ".png" → PNG image
//   - ".bmp" → BMP image
func Generate(output string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(output))
	if !supported(ext) {
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := Encode(f, ext, img); err != nil {
		return err
	}
	return f.Close()
}

// Encode writes img to w in the format named by ext (".png" or ".bmp").
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return writePNG(w, img)
	case ".bmp":
		return writeBMP(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

func supported(ext string) bool {
	return ext == ".png" || ext == ".bmp"
}
