// Package split partitions a canvas along its anti-diagonal and maps every
// destination pixel back to a pixel of the source that owns it.
package split

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Margin is the share of the frame an aspect-fitted source may occupy.
const Margin = 0.9

type Region int

const (
	// Left is the top-left triangle, owned by the first source.
	Left Region = iota
	// Right is the bottom-right triangle, owned by the second source.
	Right
)

// Owner reports which region the pixel x,y of a w*h canvas belongs to.
// Pixels exactly on the line from the top-right to the bottom-left corner
// belong to Right.
func Owner(x, y, w, h int) Region {
	if y < h-x*h/w {
		return Left
	}
	return Right
}

type Mode int

const (
	// Diagonal frames both sources upright over the whole canvas.
	Diagonal Mode = iota
	// Triangle frames each source from the right-angle corner of its own
	// triangle, so the second source is seen rotated by 180 degrees.
	Triangle
)

func (m Mode) String() string {
	return lo.Ternary(m == Triangle, "triangle", "diagonal")
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "diagonal":
		return Diagonal, nil
	case "triangle":
		return Triangle, nil
	}
	return Diagonal, errors.Errorf("unknown partition mode %q", s)
}

type Scale int

const (
	// Stretch maps the source proportionally onto the frame, ignoring aspect ratio.
	Stretch Scale = iota
	// AspectFit resizes the source uniformly into Margin of the frame and
	// centers it, leaving the rest transparent.
	AspectFit
)

func (s Scale) String() string {
	return lo.Ternary(s == AspectFit, "fit", "stretch")
}

func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(s) {
	case "stretch":
		return Stretch, nil
	case "fit", "aspect-fit":
		return AspectFit, nil
	}
	return Stretch, errors.Errorf("unknown scale mode %q", s)
}
