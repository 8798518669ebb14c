package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vsmixer/pkg/pipeline"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/sink"
	"vsmixer/pkg/source"
	"vsmixer/pkg/split"
)

const usageLine = "Usage: vsmix [flags] <image1> <image2> [output.png]"

type stdio struct {
	out io.Writer
	err io.Writer
}

type options struct {
	params    *pipeline.Params
	sources   [2]string
	partition string
	scale     string
	size      int
	progress  bool
	dryRun    bool
	debug     bool
}

func parse(args []string, errOut io.Writer) (*options, error) {
	p := pipeline.NewParams()
	o := &options{params: p}

	fs := flag.NewFlagSet("vsmix", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(errOut, usageLine)
		fs.PrintDefaults()
	}

	fs.IntVar(&o.size, "size", p.Width, "canvas width and height")
	fs.IntVar(&p.Width, "width", 0, "canvas width, overrides size")
	fs.IntVar(&p.Height, "height", 0, "canvas height, overrides size")
	fs.StringVar(&o.partition, "partition", p.Partition.String(), "partition mode: diagonal or triangle")
	fs.StringVar(&o.scale, "scale", p.Scale.String(), "scale mode: stretch or fit")
	fs.Uint8Var(&p.FireIntensity, "fire", p.FireIntensity, "seam glow intensity, 0 disables the seam")
	fs.IntVar(&p.Fire.Radius, "fire-radius", p.Fire.Radius, "fire stamp radius in pixels")
	fs.IntVar(&p.SeamWidth, "seam-width", p.SeamWidth, "seam thickness in pixels")
	fs.StringVar(&p.Label, "label", p.Label, "label text, empty disables it")
	fs.Float64Var(&p.LabelSize, "label-size", p.LabelSize, "label size in pixels")
	fs.Uint8Var(&p.LabelFire, "label-fire", p.LabelFire, "label glow intensity, 0 disables it")
	fs.IntVar(&p.GlitterCount, "glitter", p.GlitterCount, "number of glitter pixels")
	fs.Uint8Var(&p.GlitterMin, "glitter-min", p.GlitterMin, "lowest glitter intensity")
	fs.Uint8Var(&p.GlitterMax, "glitter-max", p.GlitterMax, "glitter intensity upper bound, exclusive")
	fs.Int64Var(&p.Seed, "seed", 0, "glitter seed, 0 seeds from the clock")
	fs.StringVar(&p.SideFile, "side-file", p.SideFile, "file receiving a copy of the base64 output, empty disables it")
	fs.BoolVar(&o.progress, "progress", false, "show progress on stderr")
	fs.BoolVar(&o.dryRun, "dry-run", false, "composite without writing any output")
	fs.BoolVar(&o.debug, "debug", false, "set debug")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &proto.ArgumentError{Reason: err.Error()}
	}

	rest := fs.Args()
	if len(rest) != 2 && len(rest) != 3 {
		return nil, &proto.ArgumentError{Reason: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(rest))}
	}
	o.sources = [2]string{rest[0], rest[1]}
	if len(rest) == 3 {
		p.Output = rest[2]
	}

	if p.Width == 0 {
		p.Width = o.size
	}
	if p.Height == 0 {
		p.Height = o.size
	}

	var err error
	if p.Partition, err = split.ParseMode(o.partition); err != nil {
		return nil, &proto.ArgumentError{Reason: err.Error()}
	}
	if p.Scale, err = split.ParseScale(o.scale); err != nil {
		return nil, &proto.ArgumentError{Reason: err.Error()}
	}

	return o, p.Validate()
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	enc, level := zap.NewProductionEncoderConfig(), zap.InfoLevel
	if debug {
		enc, level = zap.NewDevelopmentEncoderConfig(), zap.DebugLevel
	}
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level))
}

// run executes one invocation and returns the process exit code.
func run(args []string, fs afero.Fs, std stdio) int {
	o, err := parse(args, std.err)
	if err != nil {
		var ae *proto.ArgumentError
		switch {
		case errors.Is(err, flag.ErrHelp):
		case errors.As(err, &ae):
			_, _ = fmt.Fprintln(std.err, ae.Reason)
			_, _ = fmt.Fprintln(std.err, usageLine)
		default:
			_, _ = fmt.Fprintln(std.err, err)
			return 1
		}
		return 0
	}

	logger := newLogger(o.debug, std.err)
	defer func() {
		_ = logger.Sync()
	}()

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			if o.debug {
				return &fxevent.ZapLogger{Logger: logger}
			}
			return fxevent.NopLogger
		}),
		fx.Provide(
			func() (*pipeline.Params, afero.Fs, *zap.Logger, stdio) {
				return o.params, fs, logger, std
			},
			func(fs afero.Fs, std stdio, logger *zap.Logger) *source.Loader {
				if o.progress {
					return source.NewLoader(fs, logger, source.WithProgress(std.err))
				}
				return source.NewLoader(fs, logger)
			},
			func(p *pipeline.Params, l *source.Loader, std stdio, logger *zap.Logger) *pipeline.Pipeline {
				if o.progress {
					return pipeline.New(p, l, logger, pipeline.WithProgress(std.err))
				}
				return pipeline.New(p, l, logger)
			},
			func(p *pipeline.Params, fs afero.Fs, std stdio, logger *zap.Logger) proto.Sink {
				if o.dryRun {
					return sink.Mock(logger)
				}
				return p.Sink(fs, std.out, logger)
			},
		),
		fx.Invoke(func(p *pipeline.Pipeline, out proto.Sink) error {
			return p.Run(o.sources[0], o.sources[1], out)
		}),
	)

	if err := app.Err(); err != nil {
		logger.With(zap.Error(err)).Error("run failed")
		return 1
	}

	return 0
}
