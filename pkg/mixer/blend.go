package mixer

import (
	"image/color"
	"math"
)

func blendWhite(c color.NRGBA, coverage float64) color.NRGBA {
	mix := func(v uint8) uint8 {
		return uint8(math.Round(float64(v)*(1-coverage) + 0xFF*coverage))
	}
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: mix(c.A)}
}
