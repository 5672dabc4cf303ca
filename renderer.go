package barchart

import (
	"github.com/midbel/svg"
)

type Status int

const (
	StatusChart Status = iota
	StatusEmpty
	StatusLoading
	StatusMeasuring
)

func (s Status) String() string {
	switch s {
	case StatusChart:
		return "chart"
	case StatusEmpty:
		return "empty"
	case StatusLoading:
		return "loading"
	case StatusMeasuring:
		return "measuring"
	default:
		return "unknown"
	}
}

// Draw issues the draw calls of the chart at the given progress: gridlines
// and value labels, category labels, bars and finally the target markers
// whose opacity follows the progress.
func Draw(cv Canvas, sc Scales, pos []Position, cfg Config, progress float64) {
	drawValueAxis(cv, sc, cfg)
	drawCategoryAxis(cv, sc, cfg)

	geo := BuildGeometry(pos, sc, cfg, progress)
	cv.Path(geo.Bars, svg.NewFill(cfg.ChartColor), svg.Stroke{})
	if !cfg.HasTarget {
		return
	}
	cv.BeginGroup(progress)
	outline := svg.NewStroke(cfg.TargetColor, 1)
	outline.LineJoin = "round"
	cv.Path(geo.Targets, svg.NewFill(""), outline)
	cv.Path(geo.Targets, svg.NewFill(cfg.TargetColor), svg.Stroke{})
	cv.EndGroup()
}

// DrawLoading draws the loading indicator centered on a canvas of the given
// size.
func DrawLoading(cv Canvas, width, height float64) {
	style := TextStyle{
		Color:  DefaultLoadingColor,
		Size:   LoadingFontSize,
		Anchor: "middle",
	}
	cv.Text(svg.NewPos(width/2, height/2), LoadingText, style)
}
