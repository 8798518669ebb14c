package pipeline

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"vsmixer/pkg/mixer"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/sink"
	"vsmixer/pkg/split"
)

func NewParams() *Params {
	return &Params{
		Width:         1000,
		Height:        1000,
		Partition:     split.Triangle,
		Scale:         split.Stretch,
		Fire:          mixer.DefaultFire(),
		FireIntensity: 200,
		SeamWidth:     5,
		Label:         "VS",
		LabelSize:     120,
		LabelFire:     150,
		GlitterCount:  500,
		GlitterMin:    150,
		GlitterMax:    255,
		SideFile:      sink.DefaultSideFile,
	}
}

// Params is everything one run can vary.
type Params struct {
	Width     int
	Height    int
	Partition split.Mode
	Scale     split.Scale

	Fire          mixer.Fire
	FireIntensity uint8 // seam glow, 0 disables the seam
	SeamWidth     int

	Label     string // empty disables the label
	LabelSize float64
	LabelFire uint8 // glow on lit label pixels, 0 disables it

	GlitterCount int
	GlitterMin   uint8
	GlitterMax   uint8 // exclusive
	Seed         int64 // 0 seeds from the clock

	Output   string // PNG path, empty prints base64 to stdout
	SideFile string // copy of the base64 text, empty disables it
}

func (p *Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return &proto.ArgumentError{Reason: fmt.Sprintf("canvas size %dx%d must be positive", p.Width, p.Height)}
	case p.Fire.Radius < 0:
		return &proto.ArgumentError{Reason: "fire radius must not be negative"}
	case p.Fire.Decay <= 0:
		return &proto.ArgumentError{Reason: "fire decay must be positive"}
	case p.SeamWidth < 0:
		return &proto.ArgumentError{Reason: "seam width must not be negative"}
	case p.Label != "" && p.LabelSize <= 0:
		return &proto.ArgumentError{Reason: "label size must be positive"}
	case p.GlitterCount < 0:
		return &proto.ArgumentError{Reason: "glitter count must not be negative"}
	case p.GlitterCount > 0 && p.GlitterMin >= p.GlitterMax:
		return &proto.ArgumentError{Reason: fmt.Sprintf("glitter range [%d, %d) is empty", p.GlitterMin, p.GlitterMax)}
	}
	return nil
}

// Sink picks the output for this run.
func (p *Params) Sink(fs afero.Fs, stdout io.Writer, logger *zap.Logger) proto.Sink {
	if p.Output != "" {
		return sink.NewFile(fs, p.Output, logger)
	}
	return sink.NewBase64(fs, stdout, p.SideFile, logger)
}
