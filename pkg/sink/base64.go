package sink

import (
	"fmt"
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"vsmixer/pkg/bitmap"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/raster"
)

// DefaultSideFile receives a copy of the base64 text printed to stdout.
const DefaultSideFile = "base64.txt"

// NewBase64 returns a sink printing the base64 PNG to out, and saving the
// same text to sideFile unless it is empty.
func NewBase64(fs afero.Fs, out io.Writer, sideFile string, logger *zap.Logger) proto.Sink {
	return &Base64{fs: fs, out: out, sideFile: sideFile, log: logger}
}

type Base64 struct {
	fs       afero.Fs
	out      io.Writer
	sideFile string
	log      *zap.Logger
}

func (b *Base64) Name() string {
	return "base64"
}

func (b *Base64) Write(c *raster.Canvas) error {
	s, err := bitmap.EncodeBase64(c.NRGBA())
	if err != nil {
		return &proto.EncodeError{Target: "stdout", Err: err}
	}

	if _, err := fmt.Fprintln(b.out, s); err != nil {
		return &proto.EncodeError{Target: "stdout", Err: err}
	}

	if b.sideFile != "" {
		if err := writeFile(b.fs, b.sideFile, []byte(s)); err != nil {
			return &proto.EncodeError{Target: b.sideFile, Err: err}
		}
	}

	b.log.With(zap.String("side", b.sideFile), zap.String("size", bytesize.New(float64(len(s))).String())).Info("printed")
	return nil
}
