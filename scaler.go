package barchart

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type LinearScale struct {
	Domain Range
	Range
}

func NumberScaler(dom, rg Range) LinearScale {
	return LinearScale{
		Domain: dom,
		Range:  rg,
	}
}

// Scale maps v from the domain into the range. A domain without extent maps
// every value to the middle of the range.
func (s LinearScale) Scale(v float64) float64 {
	ext := s.Domain.Len()
	if ext == 0 || math.IsNaN(ext) {
		return s.F + s.Len()/2
	}
	return s.F + (v-s.Domain.F)/ext*s.Len()
}

func (s LinearScale) Space() float64 {
	ext := s.Domain.Len()
	if ext == 0 {
		return 0
	}
	return s.Len() / ext
}

func (s LinearScale) Ticks(count int) []float64 {
	return Ticks(s.Domain.F, s.Domain.T, count)
}

// PointScale places discrete labels on evenly spaced positions. The first
// label sits on the start of the range and the last on its end.
type PointScale struct {
	Range
	Strings []string

	index map[string]int
}

func StringScaler(str []string, rg Range) PointScale {
	s := PointScale{
		Range: rg,
		index: make(map[string]int),
	}
	for _, v := range str {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.Strings)
		s.Strings = append(s.Strings, v)
	}
	return s
}

func (s PointScale) Scale(v string) (float64, bool) {
	x, ok := s.index[v]
	if !ok {
		return math.NaN(), false
	}
	return s.F + float64(x)*s.Step(), true
}

// Step is the distance between two adjacent labels.
func (s PointScale) Step() float64 {
	n := len(s.Strings) - 1
	if n < 1 {
		n = 1
	}
	return s.Len() / float64(n)
}

func (s PointScale) Values() []string {
	return s.Strings
}
