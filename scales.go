package barchart

import (
	"math"
	"strconv"
)

// Scales holds everything derived from the data and the canvas size before
// any animation is applied.
type Scales struct {
	X PointScale
	Y LinearScale

	// Max is the upper bound of the value domain.
	Max float64
	// Baseline is the vertical pixel where every bar starts.
	Baseline float64
	BarWidth float64
	Width    float64
	Height   float64
}

// Valid reports whether the scales can produce finite geometry.
func (s Scales) Valid() bool {
	if s.Width <= 0 || s.Height <= 0 || len(s.X.Strings) == 0 {
		return false
	}
	if s.X.Len() <= 0 || s.Y.Len() <= 0 || s.BarWidth <= 0 {
		return false
	}
	for _, f := range []float64{s.Max, s.BarWidth, s.Baseline, s.X.Step()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// AxisMax returns the upper bound of the value domain: the override when one
// is configured, otherwise the largest value or inflated target, rounded.
func AxisMax(data []Point, cfg Config) float64 {
	if cfg.YAxisMax > 0 {
		return cfg.YAxisMax
	}
	if len(data) == 0 {
		return 0
	}
	max := math.Inf(-1)
	for _, p := range data {
		max = math.Max(max, p.Y)
		target := 0.0
		if p.HasTarget() {
			target = p.Target
		}
		max = math.Max(max, target*cfg.TargetTolerance)
	}
	return round(max)
}

// ComputeScales builds the horizontal and vertical scales for a canvas of the
// given size. The left side of the horizontal range is pushed by the width of
// the largest value label so labels and bars never overlap.
func ComputeScales(data []Point, cfg Config, face Face, width, height float64) Scales {
	var (
		max    = AxisMax(data, cfg)
		inset  = cfg.PaddingHorizontal
		labels = make([]string, len(data))
	)
	if face != nil {
		inset += face.TextWidth(formatValue(max))
	}
	for i := range data {
		labels[i] = data[i].X
	}
	sc := Scales{
		Max:      max,
		Baseline: height - cfg.PaddingVertical,
		Width:    width,
		Height:   height,
	}
	sc.X = StringScaler(labels, NewRange(inset, width-cfg.PaddingHorizontal))
	sc.Y = NumberScaler(NewRange(0, max), NewRange(0, sc.Baseline-fontSize(cfg)))
	sc.BarWidth = math.Min(cfg.BarWidth, sc.X.Step())
	return sc
}

func fontSize(cfg Config) float64 {
	if cfg.FontSize <= 0 {
		return FontSize
	}
	return cfg.FontSize
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
