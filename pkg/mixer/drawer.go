package mixer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"vsmixer/pkg/raster"
	"vsmixer/pkg/split"
)

func NewDrawer(opts ...Option) *Drawer {
	d := &Drawer{
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Drawer struct {
	effs     []Effect
	log      *zap.Logger
	progress func(rows, total int)
}

// Composite fills every pixel of c exactly once from the layout.
func (d *Drawer) Composite(c *raster.Canvas, l *split.Layout) {
	w, h := c.Width(), c.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetNRGBA(x, y, l.Sample(x, y))
		}
		if d.progress != nil {
			d.progress(y+1, h)
		}
	}
}

// Canvas composites a new w*h canvas and runs the effect chain over it.
func (d *Drawer) Canvas(l *split.Layout, w, h int) (*raster.Canvas, error) {
	c := raster.NewCanvas(w, h)

	start := time.Now()
	d.Composite(c, l)
	d.log.With(zap.Int("w", w), zap.Int("h", h), zap.Duration("took", time.Since(start))).Debug("composited")

	for _, eff := range d.effs {
		start = time.Now()
		if err := eff.Apply(c); err != nil {
			return nil, fmt.Errorf("effect %s failed: %w", eff.Name(), err)
		}
		d.log.With(zap.String("effect", eff.Name()), zap.Duration("took", time.Since(start))).Debug("applied")
	}

	return c, nil
}
