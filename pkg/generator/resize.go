// resize.go — High-quality downscaling.
package generator

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize returns src scaled to size×size with Catmull-Rom resampling.
// When shrinking, the kernel widens to cover each output pixel's whole
// source footprint.
func Resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
