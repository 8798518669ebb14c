package mixer

import (
	"go.uber.org/zap"
)

type Option func(d *Drawer)

// WithEffect appends effects, they run in the given order after compositing.
func WithEffect(e ...Effect) Option {
	return func(d *Drawer) {
		d.effs = append(d.effs, e...)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Drawer) {
		d.log = logger
	}
}

// WithProgress registers fn to be called after every composited row.
func WithProgress(fn func(rows, total int)) Option {
	return func(d *Drawer) {
		d.progress = fn
	}
}
