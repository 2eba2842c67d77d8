package shape

import (
	"math"

	"golang.org/x/image/vector"
)

// maxArcStep is the widest sweep emitted as a single cubic.
const maxArcStep = 90.0

// pen builds outlines on a rasterizer. All outlines wind the same way
// (increasing angle) so overlapping subpaths in one fill add up instead of
// cancelling.
type pen struct {
	ras *vector.Rasterizer
}

func (p *pen) moveTo(x, y float64) { p.ras.MoveTo(float32(x), float32(y)) }
func (p *pen) lineTo(x, y float64) { p.ras.LineTo(float32(x), float32(y)) }
func (p *pen) close()              { p.ras.ClosePath() }

func (p *pen) cubeTo(x1, y1, x2, y2, x, y float64) {
	p.ras.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

// arc continues the current subpath along the ellipse (ctr, rx, ry) from
// angle a0 to a1. The pen must already sit at the a0 point.
func (p *pen) arc(ctr Point, rx, ry, a0, a1 float64) {
	sweep := a1 - a0
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / maxArcStep))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		s := a0 + float64(i)*step
		p.arcSegment(ctr, rx, ry, s, s+step)
	}
}

// arcSegment emits one cubic approximating at most a quarter turn.
func (p *pen) arcSegment(ctr Point, rx, ry, a0, a1 float64) {
	t0, t1 := a0*math.Pi/180, a1*math.Pi/180
	k := 4.0 / 3.0 * math.Tan((t1-t0)/4)

	c0, s0 := math.Cos(t0), math.Sin(t0)
	c1, s1 := math.Cos(t1), math.Sin(t1)

	p.cubeTo(
		ctr.X+rx*(c0-k*s0), ctr.Y+ry*(s0+k*c0),
		ctr.X+rx*(c1+k*s1), ctr.Y+ry*(s1-k*c1),
		ctr.X+rx*c1, ctr.Y+ry*s1,
	)
}

func (p *pen) ellipse(r Rect) {
	ctr := r.Center()
	rx, ry := (r.X1-r.X0)/2, (r.Y1-r.Y0)/2
	p.moveTo(ctr.X+rx, ctr.Y)
	p.arc(ctr, rx, ry, 0, 360)
	p.close()
}

func (p *pen) roundedRect(r Rect, rad float64) {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1
	p.moveTo(x0+rad, y0)
	p.lineTo(x1-rad, y0)
	p.arc(Pt(x1-rad, y0+rad), rad, rad, 270, 360)
	p.lineTo(x1, y1-rad)
	p.arc(Pt(x1-rad, y1-rad), rad, rad, 0, 90)
	p.lineTo(x0+rad, y1)
	p.arc(Pt(x0+rad, y1-rad), rad, rad, 90, 180)
	p.lineTo(x0, y0+rad)
	p.arc(Pt(x0+rad, y0+rad), rad, rad, 180, 270)
	p.close()
}

// segment adds the quad covering a stroke of half-width hw from a to b.
func (p *pen) segment(a, b Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw

	// a-n, b-n, b+n, a+n winds with increasing angle for any direction.
	p.moveTo(a.X-nx, a.Y-ny)
	p.lineTo(b.X-nx, b.Y-ny)
	p.lineTo(b.X+nx, b.Y+ny)
	p.lineTo(a.X+nx, a.Y+ny)
	p.close()
}

// arcPoint returns the point at angle a (degrees) on the ellipse.
func arcPoint(ctr Point, rx, ry, a float64) (float64, float64) {
	t := a * math.Pi / 180
	return ctr.X + rx*math.Cos(t), ctr.Y + ry*math.Sin(t)
}
