package pipeline

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"vsmixer/pkg/glyph"
	"vsmixer/pkg/mixer"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/source"
	"vsmixer/pkg/split"
)

func New(params *Params, loader *source.Loader, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		params: params,
		loader: loader,
		log:    logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Option func(p *Pipeline)

// WithProgress shows a compositing bar on w.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progress = w
	}
}

// Pipeline turns two source images into one matchup image.
type Pipeline struct {
	params   *Params
	loader   *source.Loader
	log      *zap.Logger
	progress io.Writer
}

// Run composites the images at pathA and pathB and hands the result to out.
// Nothing is written unless every step before it succeeded.
func (p *Pipeline) Run(pathA, pathB string, out proto.Sink) error {
	if err := p.params.Validate(); err != nil {
		return err
	}

	imgA, err := p.loader.Load(pathA)
	if err != nil {
		return err
	}

	imgB, err := p.loader.Load(pathB)
	if err != nil {
		return err
	}

	w, h := p.params.Width, p.params.Height
	layout := split.NewLayout(imgA, imgB, w, h, p.params.Partition, p.params.Scale)

	effs, closer, err := p.effects()
	if err != nil {
		return err
	}
	defer closer()

	opts := []mixer.Option{mixer.WithLogger(p.log), mixer.WithEffect(effs...)}
	if p.progress != nil {
		bar := progressbar.NewOptions(h,
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionSetDescription("compositing"),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, mixer.WithProgress(func(rows, _ int) {
			_ = bar.Set(rows)
		}))
	}

	c, err := mixer.NewDrawer(opts...).Canvas(layout, w, h)
	if err != nil {
		return err
	}

	p.log.With(zap.String("sink", out.Name())).Debug("handing off canvas")
	return out.Write(c)
}

func (p *Pipeline) effects() ([]mixer.Effect, func(), error) {
	var effs []mixer.Effect
	closer := func() {}

	if p.params.FireIntensity > 0 && p.params.SeamWidth > 0 {
		effs = append(effs, mixer.EffectSeam(p.params.Fire, p.params.FireIntensity, p.params.SeamWidth))
	}

	if p.params.Label != "" {
		r, err := glyph.New(p.params.LabelSize)
		if err != nil {
			return nil, nil, errors.Wrap(err, "load label font")
		}
		closer = func() {
			_ = r.Close()
		}
		effs = append(effs, mixer.EffectLabel(r, p.params.Label, p.params.Fire, p.params.LabelFire))
	}

	if p.params.GlitterCount > 0 {
		seed := p.params.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p.log.With(zap.Int64("seed", seed)).Debug("glitter seeded")
		rnd := rand.New(rand.NewSource(seed))
		effs = append(effs, mixer.EffectGlitter(rnd, p.params.GlitterCount, p.params.GlitterMin, p.params.GlitterMax))
	}

	return effs, closer, nil
}
