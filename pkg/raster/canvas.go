package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

func NewCanvas(w, h int) *Canvas {
	r := image.Rect(0, 0, w, h)
	return &Canvas{
		pixels: make([]byte, 4*w*h),
		stride: 4 * w,
		bounds: r,
	}
}

// Canvas is an 8-bit RGBA (non-premultiplied) raster with its origin at 0,0.
// It implements the draw.Image interface.
type Canvas struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// FromImage copies any image into a new RGBA8 raster with its origin moved to 0,0.
func FromImage(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

func (c *Canvas) Width() int {
	return c.bounds.Dx()
}

func (c *Canvas) Height() int {
	return c.bounds.Dy()
}

// Bounds implements the image.Image (and draw.Image) interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image (and draw.Image) interface.
func (c *Canvas) At(x, y int) color.Color {
	if !c.In(x, y) {
		return color.NRGBA{}
	}
	return c.NRGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, cl color.Color) {
	if c.In(x, y) {
		c.SetNRGBA(x, y, color.NRGBAModel.Convert(cl).(color.NRGBA))
	}
}

func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.bounds.Max.X && y >= 0 && y < c.bounds.Max.Y
}

func (c *Canvas) offset(x, y int) int {
	return y*c.stride + 4*x
}

// NRGBAAt reads a pixel, the caller guarantees x,y are in bounds.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	i := c.offset(x, y)
	p := c.pixels[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetNRGBA overwrites a pixel, the caller guarantees x,y are in bounds.
func (c *Canvas) SetNRGBA(x, y int, cl color.NRGBA) {
	i := c.offset(x, y)
	p := c.pixels[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = cl.R, cl.G, cl.B, cl.A
}

// AddRG adds r and g to the red and green channels, clamping at 255.
func (c *Canvas) AddRG(x, y int, r, g uint8) {
	i := c.offset(x, y)
	c.pixels[i] = SaturatingAdd(c.pixels[i], r)
	c.pixels[i+1] = SaturatingAdd(c.pixels[i+1], g)
}

// NRGBA returns a view sharing the canvas pixels, for encoders.
func (c *Canvas) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.pixels,
		Stride: c.stride,
		Rect:   c.bounds,
	}
}

func SaturatingAdd(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xFF {
		return uint8(s)
	}
	return 0xFF
}
