package mixer

import (
	"image"

	"vsmixer/pkg/raster"
)

// Rasterizer is the text collaborator used by the label effect.
type Rasterizer interface {
	Measure(text string) image.Rectangle
	Rasterize(text string, origin image.Point, fn func(x, y int, coverage float64))
}

// EffectLabel draws text in white at the canvas center, then stamps fire on
// every fully lit pixel of the label box. A zero intensity skips the glow.
func EffectLabel(r Rasterizer, text string, fire Fire, intensity uint8) Effect {
	return &label{
		r:         r,
		text:      text,
		fire:      fire,
		intensity: intensity,
	}
}

type label struct {
	r         Rasterizer
	text      string
	fire      Fire
	intensity uint8
}

func (e *label) Name() string {
	return "label"
}

func (e *label) Apply(c *raster.Canvas) error {
	box := e.r.Measure(e.text)
	if box.Empty() {
		return nil
	}

	origin := image.Pt((c.Width()-box.Dx())/2, (c.Height()-box.Dy())/2)
	e.r.Rasterize(e.text, origin, func(x, y int, coverage float64) {
		if c.In(x, y) {
			c.SetNRGBA(x, y, blendWhite(c.NRGBAAt(x, y), coverage))
		}
	})

	if e.intensity == 0 {
		return nil
	}

	// the lit test reads the canvas as it is being stamped, so glow can spread
	box = box.Add(origin).Intersect(c.Bounds())
	for x := box.Min.X; x < box.Max.X; x++ {
		for y := box.Min.Y; y < box.Max.Y; y++ {
			if c.NRGBAAt(x, y).R == 0xFF {
				e.fire.Stamp(c, x, y, e.intensity)
			}
		}
	}

	return nil
}
