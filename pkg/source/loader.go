package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"vsmixer/pkg/proto"
	"vsmixer/pkg/raster"
)

var gifMagic = []byte("GIF")

// IsGIF reports whether head starts with the GIF signature.
func IsGIF(head []byte) bool {
	return bytes.HasPrefix(head, gifMagic)
}

func NewLoader(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader reads source images from a filesystem, or over HTTP for http(s) URLs.
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Load decodes the image at path. Animated GIFs yield their first frame.
func (l *Loader) Load(path string) (*image.NRGBA, error) {
	rc, err := l.open(path)
	if err != nil {
		return nil, &proto.DecodeError{Path: path, Err: err}
	}

	defer func() {
		_ = rc.Close()
	}()

	cr := &countingReader{r: rc}
	img, err := Decode(cr)
	if err != nil {
		return nil, &proto.DecodeError{Path: path, Err: err}
	}

	l.log.With(
		zap.String("path", path),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
		zap.String("size", bytesize.New(float64(cr.n)).String()),
	).Debug("source loaded")

	return img, nil
}

// Sniff reports whether the file at path is a GIF.
func (l *Loader) Sniff(path string) (bool, error) {
	rc, err := l.open(path)
	if err != nil {
		return false, err
	}

	defer func() {
		_ = rc.Close()
	}()

	head := make([]byte, len(gifMagic))
	n, err := io.ReadFull(rc, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}

	return IsGIF(head[:n]), nil
}

// Decode reads one image. GIFs are decoded to their first frame only.
func Decode(r io.Reader) (*image.NRGBA, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gifMagic))

	var img image.Image
	var err error
	if IsGIF(head) {
		img, err = gif.Decode(br)
	} else {
		img, err = imaging.Decode(br, imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return raster.FromImage(img), nil
}

func (l *Loader) open(path string) (io.ReadCloser, error) {
	if isURL(path) {
		return l.fetch(path)
	}
	return l.fs.Open(path)
}

func (l *Loader) fetch(url string) (io.ReadCloser, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, err
	}

	body := resp.RawBody()
	if resp.IsError() {
		_ = body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status())
	}

	if l.progress == nil {
		return body, nil
	}

	bar := newBytesBar(l.progress, resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
	return readCloser{Reader: io.TeeReader(body, bar), Closer: body}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
