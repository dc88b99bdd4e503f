/*
Package grid stores raster images as a row-major sequence of fixed 4 by 4
tiles.

An Image owns every tile and every pixel independently. Compressing an Image
produces a Compressed grid where identical pixels inside a tile, and identical
tiles across the image, share one storage cell. Writes to a Compressed grid
are copy-on-write so an alias never observes a write made through another
position.
*/
package grid

import (
	"fmt"

	"github.com/jpfielding/tilegrid/pkg/pixel"
)

const (
	TileSize   = 4
	TilePixels = TileSize * TileSize

	// MaxTiles caps the tile table so oversized headers fail instead of
	// exhausting memory; 1<<24 tiles is 4096x4096 tiles or 16384x16384 pixels.
	MaxTiles = 1 << 24
)

// Raster is the read surface shared by Image and Compressed.
type Raster interface {
	Height() int
	Width() int
	Grayscale() bool
	GetPixel(y, x int) (pixel.Pixel, error)
}

// layout is the tile table and geometry common to both grid modes.
type layout struct {
	height int
	width  int
	gray   bool
	tiles  []*Tile
}

func newLayout(height, width int, gray bool) (layout, error) {
	if height <= 0 || width <= 0 || height%TileSize != 0 || width%TileSize != 0 {
		return layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	rows, cols := height/TileSize, width/TileSize
	if cols > MaxTiles/rows {
		return layout{}, fmt.Errorf("%w: %dx%d needs more than %d tiles", ErrInvalidDimensions, height, width, MaxTiles)
	}
	return layout{
		height: height,
		width:  width,
		gray:   gray,
		tiles:  make([]*Tile, rows*cols),
	}, nil
}

func (l *layout) Height() int { return l.height }
func (l *layout) Width() int { return l.width }
func (l *layout) Grayscale() bool { return l.gray }

// TileCount is the fixed length of the tile table.
func (l *layout) TileCount() int { return len(l.tiles) }

// TilesPerRow is the number of tile columns.
func (l *layout) TilesPerRow() int { return l.width / TileSize }

func (l *layout) locate(y, x int) (Addr, error) {
	if y < 0 || y >= l.height || x < 0 || x >= l.width {
		return Addr{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, y, x, l.height, l.width)
	}
	return Locate(y, x, l.TilesPerRow()), nil
}

// GetPixel returns the pixel at row y, column x.
func (l *layout) GetPixel(y, x int) (pixel.Pixel, error) {
	a, err := l.locate(y, x)
	if err != nil {
		return pixel.Pixel{}, err
	}
	t := l.tiles[a.Tile]
	if t == nil {
		return pixel.Pixel{}, fmt.Errorf("%w: tile %d at (%d,%d)", ErrUninitialized, a.Tile, y, x)
	}
	p, err := t.Get(a.Row, a.Col)
	if err != nil {
		return pixel.Pixel{}, fmt.Errorf("(%d,%d): %w", y, x, err)
	}
	return p, nil
}

// Populated reports whether every slot of every tile has been written.
func (l *layout) Populated() bool {
	for _, t := range l.tiles {
		if t == nil || !t.Populated() {
			return false
		}
	}
	return true
}

func (l *layout) equal(o *layout) bool {
	if l.height != o.height || l.width != o.width {
		return false
	}
	for i := range l.tiles {
		if !l.tiles[i].Equal(o.tiles[i]) {
			return false
		}
	}
	return true
}

// Equal compares any two rasters pixel by pixel, so an Image can be checked
// against a Compressed grid. An unreadable pixel only matches another
// unreadable pixel.
func Equal(a, b Raster) bool {
	if a.Height() != b.Height() || a.Width() != b.Width() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			pa, errA := a.GetPixel(y, x)
			pb, errB := b.GetPixel(y, x)
			if (errA == nil) != (errB == nil) || !pa.Equal(pb) {
				return false
			}
		}
	}
	return true
}
