// Package transform implements geometric operations on tiled grids. Every
// operation reads its source and writes a new plain image through
// GetPixel/SetPixel only.
package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpfielding/tilegrid/pkg/grid"
)

var (
	ErrFactor    = errors.New("transform: scale factor must not be zero")
	ErrDirection = errors.New("transform: unknown direction")
)

// Direction is the axis a Flip mirrors across.
type Direction int

const (
	Vertical   Direction = iota // top row becomes bottom row
	Horizontal                  // left column becomes right column
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "vertical" or "horizontal" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrDirection, s)
	}
}

// ParseRotation accepts "clockwise"/"cw" or "counterclockwise"/"ccw" and
// reports whether the rotation is clockwise.
func ParseRotation(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "clockwise", "cw":
		return true, nil
	case "counterclockwise", "counter-clockwise", "ccw":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrDirection, s)
	}
}

// copyPixel moves one pixel from (sy, sx) in src to (dy, dx) in dst.
func copyPixel(dst *grid.Image, dy, dx int, src grid.Raster, sy, sx int) error {
	p, err := src.GetPixel(sy, sx)
	if err != nil {
		return err
	}
	return dst.SetPixel(dy, dx, p)
}

// Scale enlarges by factor when factor > 1 by repeating each pixel into a
// factor by factor block. A negative factor shrinks by keeping every
// |factor|-th row and column starting at zero. A factor of 1 or -1 copies.
func Scale(src grid.Raster, factor int) (*grid.Image, error) {
	switch {
	case factor == 0:
		return nil, ErrFactor
	case factor < 0:
		return shrink(src, -factor)
	default:
		return enlarge(src, factor)
	}
}

func enlarge(src grid.Raster, factor int) (*grid.Image, error) {
	out, err := grid.New(src.Height()*factor, src.Width()*factor, src.Grayscale())
	if err != nil {
		return nil, err
	}
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if err := copyPixel(out, y, x, src, y/factor, x/factor); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func shrink(src grid.Raster, factor int) (*grid.Image, error) {
	h := (src.Height() + factor - 1) / factor
	w := (src.Width() + factor - 1) / factor
	out, err := grid.New(h, w, src.Grayscale())
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err := copyPixel(out, y, x, src, y*factor, x*factor); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Crop copies the height by width region whose top-left corner is (top, left).
func Crop(src grid.Raster, top, left, height, width int) (*grid.Image, error) {
	if top < 0 || left < 0 || top+height > src.Height() || left+width > src.Width() {
		return nil, fmt.Errorf("%w: crop %dx%d at (%d,%d) from %dx%d",
			grid.ErrOutOfRange, height, width, top, left, src.Height(), src.Width())
	}
	out, err := grid.New(height, width, src.Grayscale())
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := copyPixel(out, y, x, src, top+y, left+x); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Flip mirrors src across the given axis.
func Flip(src grid.Raster, d Direction) (*grid.Image, error) {
	h, w := src.Height(), src.Width()
	out, err := grid.New(h, w, src.Grayscale())
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sy, sx := y, x
			switch d {
			case Vertical:
				sy = h - 1 - y
			case Horizontal:
				sx = w - 1 - x
			default:
				return nil, fmt.Errorf("%w: %v", ErrDirection, d)
			}
			if err := copyPixel(out, y, x, src, sy, sx); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Rotate turns src a quarter turn. The output is width by height.
func Rotate(src grid.Raster, clockwise bool) (*grid.Image, error) {
	h, w := src.Height(), src.Width()
	out, err := grid.New(w, h, src.Grayscale())
	if err != nil {
		return nil, err
	}
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			// transpose, then mirror columns (clockwise) or rows
			sy, sx := x, y
			if clockwise {
				sy = h - 1 - x
			} else {
				sx = w - 1 - y
			}
			if err := copyPixel(out, y, x, src, sy, sx); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
