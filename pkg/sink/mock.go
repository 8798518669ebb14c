package sink

import (
	"go.uber.org/zap"

	"vsmixer/pkg/proto"
	"vsmixer/pkg/raster"
)

// Mock only logs what it receives.
func Mock(logger *zap.Logger) proto.Sink {
	return &Mocker{l: logger}
}

type Mocker struct {
	l    *zap.Logger
	last *raster.Canvas
}

func (m *Mocker) Name() string {
	return "mock"
}

func (m *Mocker) Write(c *raster.Canvas) error {
	m.last = c
	m.l.With(zap.Int("w", c.Width()), zap.Int("h", c.Height())).Info("write-canvas")
	return nil
}

// Last returns the most recent canvas written.
func (m *Mocker) Last() *raster.Canvas {
	return m.last
}
