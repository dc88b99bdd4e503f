// Package export converts tiled grids to image.Image and saves them in the
// common binary formats.
package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/jpfielding/tilegrid/pkg/grid"
)

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// ToImage converts r to *image.Gray when it is grayscale and *image.NRGBA
// otherwise. Channel values outside 0-255 are clamped.
func ToImage(r grid.Raster) (image.Image, error) {
	bounds := image.Rect(0, 0, r.Width(), r.Height())
	if r.Grayscale() {
		img := image.NewGray(bounds)
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				p, err := r.GetPixel(y, x)
				if err != nil {
					return nil, err
				}
				img.SetGray(x, y, color.Gray{Y: clamp(p.Values()[0])})
			}
		}
		return img, nil
	}

	img := image.NewNRGBA(bounds)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p, err := r.GetPixel(y, x)
			if err != nil {
				return nil, err
			}
			v := p.Values()
			if len(v) != 3 {
				return nil, fmt.Errorf("export: grayscale pixel %s in color image at (%d,%d)", p, y, x)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: clamp(v[0]), G: clamp(v[1]), B: clamp(v[2]), A: 0xff})
		}
	}
	return img, nil
}

// Save writes r to path; the format follows the extension (png, jpg, gif,
// tif, bmp).
func Save(path string, r grid.Raster) error {
	img, err := ToImage(r)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
