package barchart

import (
	"io"
	"math"
	"time"
)

type Phase int

const (
	PhaseMeasuring Phase = iota
	PhaseAnimating
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseMeasuring:
		return "measuring"
	case PhaseAnimating:
		return "animating"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

type memoKey struct {
	data   uint64
	config uint64
	width  float64
	height float64
}

// BarChart keeps the inputs of a chart and the state derived from them.
// Scales and positions are only recomputed when the data, the configuration
// or the canvas size change. The same changes replay the entrance animation.
type BarChart struct {
	config Config
	face   Face
	data   []Point

	width  float64
	height float64

	dataRev   uint64
	configRev uint64

	memo struct {
		ok     bool
		key    memoKey
		scales Scales
		pos    []Position
	}
	anim *Animation
}

func New(cfg Config, face Face) *BarChart {
	c := BarChart{
		config: cfg,
		face:   face,
	}
	c.anim = NewAnimation(cfg.Delay, cfg.Duration)
	c.anim.Configure(cfg.Delay, cfg.Duration, easeOrDefault(cfg.Ease))
	return &c
}

func (c *BarChart) Config() Config {
	return c.config
}

func (c *BarChart) Data() []Point {
	return c.data
}

func (c *BarChart) SetData(data []Point, now time.Time) uint64 {
	c.data = data
	c.dataRev++
	return c.restart(now)
}

// SetConfig replaces the configuration. Derived scales are recomputed on the
// next draw but the animation keeps going: only the data and the canvas size
// replay it.
func (c *BarChart) SetConfig(cfg Config) {
	c.config = cfg
	c.configRev++
	c.anim.Configure(cfg.Delay, cfg.Duration, easeOrDefault(cfg.Ease))
}

// SetLoading toggles the loading indicator without replaying the animation.
func (c *BarChart) SetLoading(loading bool) {
	c.config.Loading = loading
}

// Layout records the measured size of the canvas, rounded to whole pixels.
// The animation restarts only when the size actually changes.
func (c *BarChart) Layout(width, height float64, now time.Time) uint64 {
	width, height = math.Round(width), math.Round(height)
	if width == c.width && height == c.height {
		return c.anim.Generation()
	}
	c.width, c.height = width, height
	return c.restart(now)
}

func (c *BarChart) Size() (float64, float64) {
	return c.width, c.height
}

func (c *BarChart) Animation() *Animation {
	return c.anim
}

func (c *BarChart) Progress(now time.Time) float64 {
	return c.anim.At(now)
}

func (c *BarChart) Phase(now time.Time) Phase {
	switch {
	case c.width <= 0 || c.height <= 0:
		return PhaseMeasuring
	case c.anim.Done(now):
		return PhaseSettled
	default:
		return PhaseAnimating
	}
}

// Scales returns the scales and positions for the current inputs.
func (c *BarChart) Scales() (Scales, []Position) {
	key := memoKey{
		data:   c.dataRev,
		config: c.configRev,
		width:  c.width,
		height: c.height,
	}
	if c.memo.ok && c.memo.key == key {
		return c.memo.scales, c.memo.pos
	}
	c.memo.key = key
	c.memo.ok = true
	c.memo.scales = ComputeScales(c.data, c.config, c.face, c.width, c.height)
	c.memo.pos = Positions(c.data, c.memo.scales)
	return c.memo.scales, c.memo.pos
}

// Status reports what Draw would render without drawing anything.
func (c *BarChart) Status() Status {
	switch {
	case c.config.Loading:
		return StatusLoading
	case len(c.data) == 0:
		return StatusEmpty
	case c.face == nil:
		return StatusLoading
	case c.width <= 0 || c.height <= 0:
		return StatusMeasuring
	}
	if sc, _ := c.Scales(); !sc.Valid() {
		return StatusEmpty
	}
	return StatusChart
}

// Draw renders the chart as it looks at now.
func (c *BarChart) Draw(cv Canvas, now time.Time) Status {
	status := c.Status()
	switch status {
	case StatusLoading:
		DrawLoading(cv, c.width, c.height)
	case StatusChart:
		sc, pos := c.Scales()
		Draw(cv, sc, pos, c.config, c.Progress(now))
	default:
	}
	return status
}

// Render writes the chart as it looks at now as a SVG document.
func (c *BarChart) Render(w io.Writer, now time.Time) (Status, error) {
	cv := NewSVGCanvas(c.width, c.height)
	status := c.Draw(cv, now)
	return status, cv.Render(w)
}

func (c *BarChart) restart(now time.Time) uint64 {
	return c.anim.Reset(now)
}

func easeOrDefault(name string) EaseFunc {
	ease, err := EaseByName(name)
	if err != nil {
		return QuadInOut
	}
	return ease
}
