package barchart

import (
	"math"

	"github.com/midbel/svg"
)

// Rect is a rectangle with rounded corners. W and H are never negative.
type Rect struct {
	X      float64
	Y      float64
	W      float64
	H      float64
	Radius float64
}

// NewRect builds a rectangle from an origin and a size that may be negative,
// in which case the origin is moved to keep the size positive.
func NewRect(x, y, w, h, radius float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Radius: radius,
	}
}

// CornerRadius returns the radius used when drawing: it never exceeds half of
// the width or of the height.
func (r Rect) CornerRadius() float64 {
	rad := math.Min(r.Radius, math.Min(r.W/2, r.H/2))
	return math.Max(rad, 0)
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() svg.Pos {
	return svg.NewPos(r.X+r.W/2, r.Y+r.H/2)
}

type Path struct {
	Rects []Rect
}

func (p *Path) Append(r Rect) {
	p.Rects = append(p.Rects, r)
}

func (p Path) Empty() bool {
	return len(p.Rects) == 0
}

// Element returns all the rectangles of the path as a single svg path.
func (p Path) Element(fill svg.Fill, stroke svg.Stroke) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Fill = fill
	pat.Stroke = stroke
	for _, r := range p.Rects {
		appendRect(&pat, r)
	}
	return pat
}

func appendRect(pat *svg.Path, r Rect) {
	rad := r.CornerRadius()
	if rad == 0 {
		pat.AbsMoveTo(svg.NewPos(r.X, r.Y))
		pat.AbsHorizontalLine(r.X + r.W)
		pat.AbsVerticalLine(r.Y + r.H)
		pat.AbsHorizontalLine(r.X)
		pat.ClosePath()
		return
	}
	arc := func(x, y float64) {
		pat.AbsArcTo(svg.NewPos(x, y), rad, rad, 0, false, true)
	}
	pat.AbsMoveTo(svg.NewPos(r.X+rad, r.Y))
	pat.AbsHorizontalLine(r.X + r.W - rad)
	arc(r.X+r.W, r.Y+rad)
	pat.AbsVerticalLine(r.Y + r.H - rad)
	arc(r.X+r.W-rad, r.Y+r.H)
	pat.AbsHorizontalLine(r.X + rad)
	arc(r.X, r.Y+r.H-rad)
	pat.AbsVerticalLine(r.Y + rad)
	arc(r.X+rad, r.Y)
	pat.ClosePath()
}
