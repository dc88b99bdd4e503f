package grid

import (
	"fmt"
	"log/slog"
)

// Options selects which deduplication passes Compress runs.
type Options struct {
	Pixel bool // alias equal pixels inside each tile
	Tile  bool // alias equal tiles across the image
}

// Compress copies a fully populated image into a Compressed grid and aliases
// repeated content. No pixel value changes.
//
// The pixel pass runs first: each slot of a tile ends up sharing the cell of
// the last value-equal slot in row-major order. The tile pass then walks
// every pair i < j in tile order and points position i at tile j whenever
// their content is equal, so position i ends up sharing the last equal tile
// after it.
func (m *Image) Compress(opts Options) (*Compressed, error) {
	for i, t := range m.tiles {
		if t == nil || !t.Populated() {
			return nil, fmt.Errorf("%w: tile %d", ErrInvalidCompressionInput, i)
		}
	}

	c := &Compressed{layout: layout{
		height: m.height,
		width:  m.width,
		gray:   m.gray,
		tiles:  make([]*Tile, len(m.tiles)),
	}}
	for i, t := range m.tiles {
		c.tiles[i] = t.Clone()
	}

	if opts.Pixel {
		for _, t := range c.tiles {
			t.dedupe()
		}
	}
	if opts.Tile {
		for i := range c.tiles {
			for j := i + 1; j < len(c.tiles); j++ {
				if c.tiles[i].Equal(c.tiles[j]) {
					c.tiles[i] = c.tiles[j]
				}
			}
		}
	}
	c.countRefs()

	slog.Debug("compressed image",
		"height", c.height, "width", c.width,
		"pixel", opts.Pixel, "tile", opts.Tile,
		"stats", c.Stats().String())
	return c, nil
}
