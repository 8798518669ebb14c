package split

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/samber/lo"
)

// Frame places one source image on a w*h canvas.
type Frame struct {
	src  *image.NRGBA
	w, h int
	box  image.Rectangle // covered area, in frame coordinates
	flip bool
}

// NewFrame expects src to have its origin at 0,0.
func NewFrame(src *image.NRGBA, w, h int, scale Scale, flip bool) Frame {
	f := Frame{
		src:  src,
		w:    w,
		h:    h,
		box:  image.Rect(0, 0, w, h),
		flip: flip,
	}

	if scale == AspectFit {
		fw, fh := fitSize(src.Bounds().Size(), image.Pt(int(float64(w)*Margin), int(float64(h)*Margin)))
		f.src = imaging.Resize(src, fw, fh, imaging.Lanczos)
		off := image.Pt((w-fw)/2, (h-fh)/2)
		f.box = image.Rectangle{Min: off, Max: off.Add(image.Pt(fw, fh))}
	}

	return f
}

// fitSize scales size uniformly so that it fits into box, up or down.
func fitSize(size, box image.Point) (int, int) {
	box = image.Pt(max(box.X, 1), max(box.Y, 1))
	ratio := math.Min(float64(box.X)/float64(size.X), float64(box.Y)/float64(size.Y))
	w := int(math.Round(float64(size.X) * ratio))
	h := int(math.Round(float64(size.Y) * ratio))
	return lo.Clamp(w, 1, box.X), lo.Clamp(h, 1, box.Y)
}

// Map returns the source pixel sampled at canvas pixel x,y. ok is false when
// x,y falls outside the area the source covers.
func (f Frame) Map(x, y int) (sx, sy int, ok bool) {
	fx, fy := x, y
	if f.flip {
		fx, fy = f.w-1-x, f.h-1-y
	}

	if !image.Pt(fx, fy).In(f.box) {
		return 0, 0, false
	}

	sw, sh := f.src.Bounds().Dx(), f.src.Bounds().Dy()
	sx = lo.Clamp((fx-f.box.Min.X)*sw/f.box.Dx(), 0, sw-1)
	sy = lo.Clamp((fy-f.box.Min.Y)*sh/f.box.Dy(), 0, sh-1)
	return sx, sy, true
}

// Layout is the partition of a canvas between two framed sources.
type Layout struct {
	w, h   int
	frames [2]Frame
}

func NewLayout(a, b *image.NRGBA, w, h int, mode Mode, scale Scale) *Layout {
	return &Layout{
		w: w,
		h: h,
		frames: [2]Frame{
			Left:  NewFrame(a, w, h, scale, false),
			Right: NewFrame(b, w, h, scale, mode == Triangle),
		},
	}
}

// Sample returns the color of canvas pixel x,y.
func (l *Layout) Sample(x, y int) color.NRGBA {
	f := l.frames[Owner(x, y, l.w, l.h)]
	sx, sy, ok := f.Map(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return f.src.NRGBAAt(sx, sy)
}
