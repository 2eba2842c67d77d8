// png.go — PNG encoder.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// pngEncoder is fixed so repeated runs produce identical bytes.
var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// writePNG encodes img as PNG. Images with any translucent pixel keep
// their alpha channel.
func writePNG(w io.Writer, img image.Image) error {
	if err := pngEncoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
