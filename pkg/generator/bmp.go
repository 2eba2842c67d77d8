// bmp.go — BMP encoder backed by golang.org/x/image/bmp.
package generator

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// writeBMP encodes img as a 32-bit BMP when it carries alpha, 24-bit otherwise.
func writeBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("encode BMP: %w", err)
	}
	return nil
}
