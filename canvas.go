package barchart

import (
	"bufio"
	"html"
	"io"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type TextStyle struct {
	Color  string
	Size   float64
	Anchor string
}

// Canvas receives the draw calls of a chart.
type Canvas interface {
	Text(svg.Pos, string, TextStyle)
	Line(svg.Pos, svg.Pos, svg.Stroke)
	Path(Path, svg.Fill, svg.Stroke)
	BeginGroup(opacity float64)
	EndGroup()
}

type appender interface {
	Append(svg.Element)
}

type layer struct {
	appender
	opacity float64
}

// SVGCanvas builds a svg document from the draw calls it receives. The
// opacity of a group is applied to the fill and the stroke of the paths it
// contains.
type SVGCanvas struct {
	root   svg.SVG
	cur    layer
	layers *slices.Stack[layer]
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	c := SVGCanvas{
		root:   svg.NewSVG(),
		layers: slices.New[layer](),
	}
	c.root.Dim = svg.NewDim(width, height)
	c.cur = layer{
		appender: &c.root,
		opacity:  1,
	}
	return &c
}

func (c *SVGCanvas) Text(pos svg.Pos, str string, style TextStyle) {
	text := svg.NewText(html.EscapeString(str))
	text.Pos = pos
	text.Font = svg.NewFont(style.Size, "sans-serif")
	text.Font.Fill = style.Color
	text.Anchor = style.Anchor
	c.cur.Append(text.AsElement())
}

func (c *SVGCanvas) Line(from, to svg.Pos, stroke svg.Stroke) {
	li := svg.NewLine(from, to)
	li.Stroke = c.fade(stroke)
	c.cur.Append(li.AsElement())
}

func (c *SVGCanvas) Path(pat Path, fill svg.Fill, stroke svg.Stroke) {
	if pat.Empty() {
		return
	}
	if !fill.IsZero() {
		fill.Opacity = c.cur.opacity
	}
	el := pat.Element(fill, c.fade(stroke))
	c.cur.Append(el.AsElement())
}

func (c *SVGCanvas) BeginGroup(opacity float64) {
	var grp svg.Group
	c.cur.Append(grp.AsElement())
	c.layers.Push(c.cur)
	c.cur = layer{
		appender: &grp,
		opacity:  c.cur.opacity * opacity,
	}
}

func (c *SVGCanvas) EndGroup() {
	if c.layers.Len() == 0 {
		return
	}
	c.cur = c.layers.Pop()
}

// Render writes the document built so far to w.
func (c *SVGCanvas) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.root.Render(bw)
	return bw.Flush()
}

// fade applies the opacity of the current group to stroke. A fully
// transparent stroke is removed since a zero opacity is not written out.
func (c *SVGCanvas) fade(stroke svg.Stroke) svg.Stroke {
	if stroke.IsZero() || c.cur.opacity >= 1 {
		return stroke
	}
	if c.cur.opacity <= 0 {
		return svg.Stroke{}
	}
	stroke.Opacity = c.cur.opacity
	return stroke
}
