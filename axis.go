package barchart

import (
	"github.com/midbel/svg"
)

// HairlineWidth is the width of the value gridlines.
const HairlineWidth = 0.5

var gridDash = []int{5, 10}

// drawValueAxis draws a dashed gridline and a label at every tick of the
// value scale.
func drawValueAxis(cv Canvas, sc Scales, cfg Config) {
	text := TextStyle{
		Color: cfg.LabelsColor,
		Size:  fontSize(cfg),
	}
	stroke := svg.NewStroke(cfg.YAxisLinesColor, HairlineWidth)
	stroke.DashArray = gridDash
	for _, f := range sc.Y.Ticks(cfg.YTicks) {
		y := sc.Baseline - sc.Y.Scale(f)
		cv.Text(svg.NewPos(0, y), formatValue(f), text)
		cv.Line(svg.NewPos(sc.X.Min(), y), svg.NewPos(sc.X.Max(), y), stroke)
	}
}

// drawCategoryAxis draws the label of each category along the bottom edge,
// aligned on the left side of its bar.
func drawCategoryAxis(cv Canvas, sc Scales, cfg Config) {
	text := TextStyle{
		Color: cfg.LabelsColor,
		Size:  fontSize(cfg),
	}
	for _, s := range sc.X.Values() {
		x, ok := sc.X.Scale(s)
		if !ok {
			continue
		}
		cv.Text(svg.NewPos(x-sc.BarWidth/2, sc.Height), s, text)
	}
}
