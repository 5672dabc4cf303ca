package barchart

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face measures the rendered width of a text.
type Face interface {
	TextWidth(string) float64
}

type basicFace struct {
	face  font.Face
	ratio float64
}

// BasicFace measures text with the fixed 7x13 face scaled to size.
func BasicFace(size float64) Face {
	return basicFace{
		face:  basicfont.Face7x13,
		ratio: size / float64(basicfont.Face7x13.Height),
	}
}

func (f basicFace) TextWidth(str string) float64 {
	adv := font.MeasureString(f.face, str)
	return float64(adv) / 64 * f.ratio
}
