// Package shape provides a small anti-aliased drawing canvas for composing
// flat vector artwork onto an RGBA raster.
//
// Coordinates are float64 pixels with the origin at the top-left corner and
// y growing downward. Angles are degrees measured clockwise from +X.
package shape

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned box given by its two corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// R is shorthand for Rect{x0, y0, x1, y1}.
func R(x0, y0, x1, y1 float64) Rect { return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1} }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Canvas is a fixed-size RGBA raster that starts fully transparent.
// Every fill composites with draw.Over, so a pixel fully covered by an
// opaque shape takes that shape's colour exactly.
type Canvas struct {
	img *image.RGBA
	ras vector.Rasterizer
}

// New allocates a transparent w×h canvas.
func New(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing raster. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas extent.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// FillRect fills r.
func (c *Canvas) FillRect(r Rect, col color.Color) {
	c.fill(col, func(p *pen) {
		p.moveTo(r.X0, r.Y0)
		p.lineTo(r.X1, r.Y0)
		p.lineTo(r.X1, r.Y1)
		p.lineTo(r.X0, r.Y1)
		p.close()
	})
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r Rect, col color.Color) {
	c.fill(col, func(p *pen) {
		p.ellipse(r)
	})
}

// FillPieSlice fills the wedge of the ellipse inscribed in r between the
// start and end angles.
func (c *Canvas) FillPieSlice(r Rect, start, end float64, col color.Color) {
	ctr := r.Center()
	rx, ry := (r.X1-r.X0)/2, (r.Y1-r.Y0)/2
	c.fill(col, func(p *pen) {
		p.moveTo(ctr.X, ctr.Y)
		sx, sy := arcPoint(ctr, rx, ry, start)
		p.lineTo(sx, sy)
		p.arc(ctr, rx, ry, start, end)
		p.close()
	})
}

// FillRoundedRect fills r as one outline whose corners are quarter circles
// of the given radius.
func (c *Canvas) FillRoundedRect(r Rect, radius float64, col color.Color) {
	c.fill(col, func(p *pen) {
		p.roundedRect(r, radius)
	})
}

// DrawRoundedRect paints r as two crossing strips plus four corner pies.
// The radius is not clamped: one larger than half the shorter side makes
// the pieces overlap.
func (c *Canvas) DrawRoundedRect(r Rect, radius float64, col color.Color) {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1
	d := 2 * radius

	c.FillRect(R(x0+radius, y0, x1-radius, y1), col)
	c.FillRect(R(x0, y0+radius, x1, y1-radius), col)

	c.FillPieSlice(R(x0, y0, x0+d, y0+d), 180, 270, col)
	c.FillPieSlice(R(x1-d, y0, x1, y0+d), 270, 360, col)
	c.FillPieSlice(R(x0, y1-d, x0+d, y1), 90, 180, col)
	c.FillPieSlice(R(x1-d, y1-d, x1, y1), 0, 90, col)
}

// Polyline strokes the open path through pts with the given width. Interior
// vertices get round joints.
func (c *Canvas) Polyline(pts []Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	hw := width / 2
	c.fill(col, func(p *pen) {
		for i := 0; i+1 < len(pts); i++ {
			p.segment(pts[i], pts[i+1], hw)
		}
		for _, v := range pts[1 : len(pts)-1] {
			p.ellipse(R(v.X-hw, v.Y-hw, v.X+hw, v.Y+hw))
		}
	})
}

// fill rasterizes the outline built by fn and composites col through it.
func (c *Canvas) fill(col color.Color, fn func(p *pen)) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	fn(&pen{ras: &c.ras})
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}
