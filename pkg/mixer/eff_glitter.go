package mixer

import (
	"image/color"
	"math/rand"

	"vsmixer/pkg/raster"
)

// EffectGlitter overwrites count random pixels with an opaque gray in [min, max).
func EffectGlitter(rnd *rand.Rand, count int, min, max uint8) Effect {
	return &glitter{
		rnd:   rnd,
		count: count,
		min:   min,
		max:   max,
	}
}

type glitter struct {
	rnd      *rand.Rand
	count    int
	min, max uint8
}

func (e *glitter) Name() string {
	return "glitter"
}

func (e *glitter) Apply(c *raster.Canvas) error {
	w, h := c.Width(), c.Height()
	for i := 0; i < e.count; i++ {
		x := e.rnd.Intn(w)
		y := e.rnd.Intn(h)
		v := e.min
		if e.max > e.min {
			v += uint8(e.rnd.Intn(int(e.max - e.min)))
		}
		c.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 0xFF})
	}
	return nil
}
