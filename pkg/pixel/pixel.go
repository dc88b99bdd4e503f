// Package pixel holds the grayscale and RGB pixel values stored in a tiled grid.
package pixel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrChannels = errors.New("pixel: channel count must be 1 or 3")
	ErrEncoding = errors.New("pixel: invalid canonical encoding")
)

// Pixel is a single grayscale value or an R,G,B triple.
// The zero Pixel has no channels and marks a slot that was never written.
type Pixel struct {
	n uint8
	v [3]int
}

// Gray creates a single channel pixel.
func Gray(v int) Pixel {
	return Pixel{n: 1, v: [3]int{v}}
}

// RGB creates a three channel pixel.
func RGB(r, g, b int) Pixel {
	return Pixel{n: 3, v: [3]int{r, g, b}}
}

// FromValues builds a pixel from 1 or 3 channel values.
func FromValues(vals []int) (Pixel, error) {
	switch len(vals) {
	case 1:
		return Gray(vals[0]), nil
	case 3:
		return RGB(vals[0], vals[1], vals[2]), nil
	default:
		return Pixel{}, fmt.Errorf("%w: got %d", ErrChannels, len(vals))
	}
}

// Channels returns 1 for grayscale, 3 for color and 0 for the zero Pixel.
func (p Pixel) Channels() int {
	return int(p.n)
}

// Values returns a copy of the channel values.
func (p Pixel) Values() []int {
	out := make([]int, p.n)
	copy(out, p.v[:p.n])
	return out
}

func (p Pixel) IsGray() bool {
	return p.n == 1
}

func (p Pixel) IsZero() bool {
	return p.n == 0
}

// Equal reports whether both pixels have the same channel count and values.
func (p Pixel) Equal(o Pixel) bool {
	return p == o
}

// String returns the canonical encoding: "7" for grayscale, "R1#G2#B3" for color.
func (p Pixel) String() string {
	switch p.n {
	case 1:
		return strconv.Itoa(p.v[0])
	case 3:
		return "R" + strconv.Itoa(p.v[0]) + "#G" + strconv.Itoa(p.v[1]) + "#B" + strconv.Itoa(p.v[2])
	default:
		return ""
	}
}

// Parse decodes the canonical encoding produced by String.
func Parse(s string) (Pixel, error) {
	if !strings.HasPrefix(s, "R") {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Pixel{}, fmt.Errorf("%w: %q", ErrEncoding, s)
		}
		return Gray(v), nil
	}
	parts := strings.Split(s, "#")
	if len(parts) != 3 {
		return Pixel{}, fmt.Errorf("%w: %q", ErrEncoding, s)
	}
	var vals [3]int
	for i, prefix := range []string{"R", "G", "B"} {
		num, ok := strings.CutPrefix(parts[i], prefix)
		if !ok {
			return Pixel{}, fmt.Errorf("%w: %q", ErrEncoding, s)
		}
		v, err := strconv.Atoi(num)
		if err != nil {
			return Pixel{}, fmt.Errorf("%w: %q", ErrEncoding, s)
		}
		vals[i] = v
	}
	return RGB(vals[0], vals[1], vals[2]), nil
}
