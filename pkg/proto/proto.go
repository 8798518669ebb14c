package proto

import (
	"vsmixer/pkg/raster"
)

// Sink consumes a finished canvas. The canvas must not be mutated afterwards.
type Sink interface {
	Name() string
	Write(c *raster.Canvas) error
}
