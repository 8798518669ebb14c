package mixer

import (
	"math"

	"vsmixer/pkg/raster"
)

// Fire is a radial stamp that brightens red, and half as much green.
type Fire struct {
	Radius int     // stamp covers [-Radius, Radius] on both axes
	Decay  float64 // falloff is exp(-d²/Decay)
}

func DefaultFire() Fire {
	return Fire{Radius: 5, Decay: 10}
}

// Stamp adds the glow centered at x,y. Offsets outside the canvas are skipped.
func (f Fire) Stamp(c *raster.Canvas, x, y int, intensity uint8) {
	for dx := -f.Radius; dx <= f.Radius; dx++ {
		for dy := -f.Radius; dy <= f.Radius; dy++ {
			fx, fy := x+dx, y+dy
			if !c.In(fx, fy) {
				continue
			}
			d2 := float64(dx*dx + dy*dy)
			local := uint8(float64(intensity) * math.Exp(-d2/f.Decay))
			c.AddRG(fx, fy, local, local/2)
		}
	}
}

func EffectSeam(fire Fire, intensity uint8, width int) Effect {
	return &seam{
		fire:      fire,
		intensity: intensity,
		width:     width,
	}
}

// seam glows along the partition line, growing width pixels downwards.
type seam struct {
	fire      Fire
	intensity uint8
	width     int
}

func (e *seam) Name() string {
	return "seam"
}

func (e *seam) Apply(c *raster.Canvas) error {
	w, h := c.Width(), c.Height()
	for x := 0; x < w; x++ {
		y := h - x*h/w
		for dy := 0; dy < e.width; dy++ {
			if y+dy < h {
				e.fire.Stamp(c, x, y+dy, e.intensity)
			}
		}
	}
	return nil
}
