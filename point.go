package barchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type Point struct {
	X      string
	Y      float64
	Target float64
}

func CategoryPoint(x string, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func TargetPoint(x string, y, target float64) Point {
	return Point{
		X:      x,
		Y:      y,
		Target: target,
	}
}

// HasTarget reports whether the point carries a usable target. A zero or NaN
// target counts as missing.
func (p Point) HasTarget() bool {
	return p.Target != 0 && !math.IsNaN(p.Target)
}

// SamplePoints returns n points where the value grows by step and the target
// is one step ahead of the value.
func SamplePoints(n int, step float64) []Point {
	all := make([]Point, n)
	for i := range all {
		all[i] = TargetPoint(strconv.Itoa(i), float64(i)*step, float64(i+1)*step)
	}
	return all
}

type PointError struct {
	Line  int
	Field string
	Err   error
}

func (e PointError) Error() string {
	return fmt.Sprintf("line %d: invalid %s: %s", e.Line, e.Field, e.Err)
}

func (e PointError) Unwrap() error {
	return e.Err
}

// ReadPoints reads x,y[,target] rows. The first row is a header and is
// skipped.
func ReadPoints(r io.Reader) ([]Point, error) {
	var (
		rs     = csv.NewReader(r)
		points []Point
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line, _ := rs.FieldPos(0)
		if len(row) < 2 {
			return nil, PointError{Line: line, Field: "row", Err: fmt.Errorf("expected at least 2 columns, got %d", len(row))}
		}
		pt := CategoryPoint(row[0], 0)
		if pt.Y, err = parseNumber(row[1]); err != nil {
			return nil, PointError{Line: line, Field: "y", Err: err}
		}
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			if pt.Target, err = parseNumber(row[2]); err != nil {
				return nil, PointError{Line: line, Field: "target", Err: err}
			}
		}
		points = append(points, pt)
	}
	return points, nil
}

func parseNumber(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
