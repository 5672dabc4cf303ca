package barchart

import (
	"math"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count round values between start and stop, both
// included when they fall on a tick. The values are multiples of 1, 2 or 5
// times a power of ten.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	var (
		n   = int(i2-i1) + 1
		all = make([]float64, n)
	)
	for i := range all {
		j := i1 + float64(i)
		if reverse {
			j = i2 - float64(i)
		}
		if inc < 0 {
			all[i] = j / -inc
		} else {
			all[i] = j * inc
		}
	}
	return all
}

// tickSpec returns the first and last tick index and the increment. A
// negative increment is the inverse of the step, which keeps the ticks exact
// for fractional steps.
func tickSpec(start, stop, count float64) (float64, float64, float64) {
	var (
		step   = (stop - start) / math.Max(0, count)
		power  = math.Floor(math.Log10(step))
		err    = step / math.Pow(10, power)
		factor = 1.0
	)
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = round(start * inc)
		i2 = round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = round(start / inc)
		i2 = round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// round rounds half up, toward positive infinity.
func round(f float64) float64 {
	return math.Floor(f + 0.5)
}
