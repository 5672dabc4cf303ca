package barchart

import (
	"math"

	"github.com/midbel/slices"
)

// Position is a point mapped to pixels. Y and Target are heights measured
// from the baseline.
type Position struct {
	X         float64
	Y         float64
	Target    float64
	HasTarget bool
}

func Positions(data []Point, sc Scales) []Position {
	all := make([]Position, len(data))
	for i, p := range data {
		x, _ := sc.X.Scale(p.X)
		all[i] = Position{
			X: x,
			Y: sc.Y.Scale(p.Y),
		}
		if p.HasTarget() {
			all[i].Target = sc.Y.Scale(p.Target)
			all[i].HasTarget = true
		}
	}
	return all
}

// Interpolate maps x from the in values to the out values piecewise
// linearly. Values outside of in are clamped to the first or last output.
func Interpolate(x float64, in, out []float64) float64 {
	n := len(in)
	if n == 0 || n != len(out) {
		return math.NaN()
	}
	if x <= slices.Fst(in) {
		return slices.Fst(out)
	}
	for i := 1; i < n; i++ {
		if x > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span == 0 {
			return out[i]
		}
		return out[i-1] + (x-in[i-1])/span*(out[i]-out[i-1])
	}
	return slices.Lst(out)
}

// Stagger returns the growth factor of the bar at index among n bars for the
// global progress. Each bar starts once the previous ones have started and is
// fully grown when progress reaches 1.
func Stagger(progress float64, index, n int) float64 {
	if n <= 0 {
		return 0
	}
	offset := float64(index) / float64(n)
	return Interpolate(progress-offset, []float64{-1, 0, 1 - offset, 2}, []float64{0, 0, 1, 1})
}

type Geometry struct {
	Bars    Path
	Targets Path
}

// BuildGeometry returns the bars and, when enabled, the target markers at the
// given animation progress.
func BuildGeometry(pos []Position, sc Scales, cfg Config, progress float64) Geometry {
	var geo Geometry
	if !sc.Valid() {
		return geo
	}
	for i, p := range pos {
		var (
			height = p.Y * Stagger(progress, i, len(pos))
			rect   = NewRect(p.X-sc.BarWidth/2, sc.Baseline, sc.BarWidth, -height, cfg.BorderRadius)
		)
		geo.Bars.Append(rect)
	}
	if !cfg.HasTarget {
		return geo
	}
	var (
		width  = sc.BarWidth * 1.5
		height = math.Abs(cfg.TargetHeight * (1 - cfg.TargetTolerance))
	)
	for _, p := range pos {
		if !p.HasTarget {
			continue
		}
		rect := NewRect(p.X-width/2, sc.Baseline-p.Target-height/2, width, height, cfg.BorderRadius/2)
		geo.Targets.Append(rect)
	}
	return geo
}
