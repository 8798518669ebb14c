package mixer

import (
	"vsmixer/pkg/raster"
)

// Effect mutates a composited canvas in place.
type Effect interface {
	Name() string
	Apply(c *raster.Canvas) error
}
