// Package icon composes the Grove application icon: a dark rounded square
// holding three stylized trees and a ">_" terminal prompt.
//
// All geometry is fixed. Pixel offsets are given at the base resolution
// (Size); the smaller icons are produced by resampling the full-size image.
package icon

import (
	"image"
	"image/color"

	"github.com/xob0t/GroveIcon/pkg/shape"
)

// Base resolution and background geometry.
const (
	Size   = 1024
	Pad    = 120 // inner padding of the rounded rect; the composition does not use it
	Corner = 220
)

// Layout holds every placement parameter of the composition.
type Layout struct {
	Size   int
	Corner float64

	TreeLine   float64 // trees hang off this fraction of the height
	PromptLine float64 // prompt top edge, fraction of the height

	Trees  []TreeSpec
	Prompt PromptSpec
}

// TreeSpec places one tree relative to (horizontal centre, tree line).
type TreeSpec struct {
	DX, DY         float64
	CanopyR        float64
	TrunkW, TrunkH int
	Canopy         color.RGBA
}

// PromptSpec describes the ">_" glyph. DX is measured from the horizontal
// centre; the other offsets from the glyph origin.
type PromptSpec struct {
	DX      float64
	BarH    int     // height of the ">"
	ArrowW  float64 // how far the ">" tip reaches right
	Stroke  float64
	CursorX float64
	CursorW float64
	CursorH float64
	CursorR float64
	Color   color.RGBA
}

// DefaultLayout is the shipped icon.
var DefaultLayout = Layout{
	Size:       Size,
	Corner:     Corner,
	TreeLine:   0.62,
	PromptLine: 0.82,
	Trees: []TreeSpec{
		{DX: 0, DY: -60, CanopyR: 155, TrunkW: 40, TrunkH: 180, Canopy: Green1},
		{DX: -195, DY: 30, CanopyR: 115, TrunkW: 32, TrunkH: 140, Canopy: Green2},
		{DX: 195, DY: 30, CanopyR: 115, TrunkW: 32, TrunkH: 140, Canopy: Green3},
	},
	Prompt: PromptSpec{
		DX:      -60,
		BarH:    50,
		ArrowW:  30,
		Stroke:  10,
		CursorX: 50,
		CursorW: 40,
		CursorH: 8,
		CursorR: 3,
		Color:   Green1,
	},
}

// Compose renders DefaultLayout at full resolution.
func Compose() *image.RGBA {
	return DefaultLayout.Compose()
}

// Compose renders the layout onto a fresh transparent canvas.
func (l Layout) Compose() *image.RGBA {
	s := float64(l.Size)
	c := shape.New(l.Size, l.Size)

	c.DrawRoundedRect(shape.R(0, 0, s, s), l.Corner, BG)

	cx := float64(l.Size / 2)
	base := s * l.TreeLine
	for _, t := range l.Trees {
		DrawTree(c, shape.Pt(cx+t.DX, base+t.DY), t.CanopyR, t.TrunkW, t.TrunkH, t.Canopy, Trunk)
	}

	DrawPrompt(c, shape.Pt(cx+l.Prompt.DX, s*l.PromptLine), l.Prompt)
	return c.Image()
}

// DrawTree draws a rounded trunk hanging 0.3·canopyR below center, then the
// circular canopy on top of it.
func DrawTree(c *shape.Canvas, center shape.Point, canopyR float64, trunkW, trunkH int, canopy, trunk color.Color) {
	tx := center.X - float64(trunkW/2)
	ty := center.Y + canopyR*0.3
	c.FillRoundedRect(shape.R(tx, ty, tx+float64(trunkW), ty+float64(trunkH)), float64(trunkW/4), trunk)

	c.FillEllipse(shape.R(center.X-canopyR, center.Y-canopyR, center.X+canopyR, center.Y+canopyR), canopy)
}

// DrawPrompt draws the ">" arrow with its top-left at origin and the "_"
// cursor bar resting on the arrow's baseline.
func DrawPrompt(c *shape.Canvas, origin shape.Point, p PromptSpec) {
	x, y := origin.X, origin.Y
	h := float64(p.BarH)

	c.Polyline([]shape.Point{
		shape.Pt(x, y),
		shape.Pt(x+p.ArrowW, y+float64(p.BarH/2)),
		shape.Pt(x, y+h),
	}, p.Stroke, p.Color)

	cx := x + p.CursorX
	cy := y + h - p.CursorH/2
	c.FillRoundedRect(shape.R(cx, cy, cx+p.CursorW, cy+p.CursorH), p.CursorR, p.Color)
}
