// Package glyph rasterizes short labels into coverage samples.
package glyph

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterizer draws text with one font face at a fixed pixel size.
type Rasterizer struct {
	face font.Face
}

// New returns a rasterizer for Go Bold at size pixels.
func New(size float64) (*Rasterizer, error) {
	return NewFromTTF(gobold.TTF, size)
}

func NewFromTTF(ttf []byte, size float64) (*Rasterizer, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create face")
	}

	return &Rasterizer{face: face}, nil
}

func (r *Rasterizer) Close() error {
	return r.face.Close()
}

// Measure returns the ink box of text drawn with its top-left ink corner at 0,0.
func (r *Rasterizer) Measure(text string) image.Rectangle {
	b, _ := font.BoundString(r.face, text)
	return image.Rect(0, 0, (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil())
}

// Rasterize calls fn for every pixel the text touches, with coverage in (0, 1].
// origin is the top-left corner of the ink box returned by Measure.
func (r *Rasterizer) Rasterize(text string, origin image.Point, fn func(x, y int, coverage float64)) {
	b, _ := font.BoundString(r.face, text)
	size := r.Measure(text).Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.Point26_6{X: -b.Min.X, Y: -b.Min.Y},
	}
	d.DrawString(text)

	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if a := mask.AlphaAt(x, y).A; a > 0 {
				fn(origin.X+x, origin.Y+y, float64(a)/0xFF)
			}
		}
	}
}
