package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturatingAdd(t *testing.T) {
	cases := []struct {
		a, b, want uint8
	}{
		{0, 0, 0},
		{100, 100, 200},
		{200, 55, 255},
		{200, 56, 255},
		{255, 255, 255},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SaturatingAdd(c.a, c.b), "%d+%d", c.a, c.b)
	}
}

func TestCanvasSetAt(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.Equal(t, image.Rect(0, 0, 4, 3), c.Bounds())
	assert.Equal(t, color.NRGBA{}, c.At(3, 2))

	c.Set(3, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 4}, c.NRGBAAt(3, 2))

	// out of range writes are dropped
	c.Set(4, 0, color.White)
	c.Set(-1, 0, color.White)
	assert.Equal(t, color.NRGBA{}, c.At(4, 0))
}

func TestCanvasAddRG(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetNRGBA(0, 0, color.NRGBA{R: 250, G: 10, B: 7, A: 9})
	c.AddRG(0, 0, 10, 5)
	assert.Equal(t, color.NRGBA{R: 255, G: 15, B: 7, A: 9}, c.NRGBAAt(0, 0))
}

func TestCanvasNRGBAShares(t *testing.T) {
	c := NewCanvas(2, 2)
	v := c.NRGBA()
	v.SetNRGBA(1, 1, color.NRGBA{R: 9, A: 255})
	assert.Equal(t, uint8(9), c.NRGBAAt(1, 1).R)
}

func TestFromImageMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.Set(5, 5, color.RGBA{R: 255, A: 255})

	dst := FromImage(src)
	require.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, dst.NRGBAAt(0, 0))
}
