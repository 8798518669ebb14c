package sink

import (
	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"vsmixer/pkg/bitmap"
	"vsmixer/pkg/proto"
	"vsmixer/pkg/raster"
)

// NewFile returns a sink writing a PNG to path.
func NewFile(fs afero.Fs, path string, logger *zap.Logger) proto.Sink {
	return &File{fs: fs, path: path, log: logger}
}

type File struct {
	fs   afero.Fs
	path string
	log  *zap.Logger
}

func (f *File) Name() string {
	return "file"
}

func (f *File) Write(c *raster.Canvas) error {
	bs, err := bitmap.Encode(c.NRGBA())
	if err != nil {
		return &proto.EncodeError{Target: f.path, Err: err}
	}

	if err := writeFile(f.fs, f.path, bs); err != nil {
		return &proto.EncodeError{Target: f.path, Err: err}
	}

	f.log.With(zap.String("path", f.path), zap.String("size", bytesize.New(float64(len(bs))).String())).Info("written")
	return nil
}
