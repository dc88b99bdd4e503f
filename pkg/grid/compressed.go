package grid

import (
	"fmt"

	"github.com/jpfielding/tilegrid/pkg/pixel"
)

// Compressed is a tiled grid where positions may alias shared tiles and
// shared pixels. Aliases are copy-on-write: SetPixel clones a shared tile
// before writing and never mutates a pixel cell in place.
type Compressed struct {
	layout
	refs map[*Tile]int
}

// Stats summarizes how much storage a Compressed grid shares.
type Stats struct {
	Tiles          int // logical tile positions
	DistinctTiles  int // stored tiles
	Pixels         int // logical pixel positions
	DistinctPixels int // stored pixel cells across distinct tiles
}

func (s Stats) String() string {
	return fmt.Sprintf("tiles %d/%d pixels %d/%d", s.DistinctTiles, s.Tiles, s.DistinctPixels, s.Pixels)
}

func (c *Compressed) countRefs() {
	c.refs = make(map[*Tile]int, len(c.tiles))
	for _, t := range c.tiles {
		c.refs[t]++
	}
}

// SetPixel writes p at row y, column x. A tile shared with other positions
// is split off first so the aliases keep their values.
func (c *Compressed) SetPixel(y, x int, p pixel.Pixel) error {
	a, err := c.locate(y, x)
	if err != nil {
		return err
	}
	t := c.tiles[a.Tile]
	switch {
	case t == nil:
		t = NewTile()
		c.tiles[a.Tile] = t
		c.refs[t] = 1
	case c.refs[t] > 1:
		c.refs[t]--
		t = t.Clone()
		c.tiles[a.Tile] = t
		c.refs[t] = 1
	}
	return t.Set(a.Row, a.Col, p)
}

// Equal reports whether o has the same dimensions and tile content,
// regardless of how either side shares storage.
func (c *Compressed) Equal(o *Compressed) bool {
	return c.layout.equal(&o.layout)
}

// SameTile reports whether tile positions i and j share one stored tile.
func (c *Compressed) SameTile(i, j int) bool {
	return c.tiles[i] != nil && c.tiles[i] == c.tiles[j]
}

// SamePixel reports whether two slots (row-major 0..15) of tile position i
// share one stored pixel.
func (c *Compressed) SamePixel(i, a, b int) bool {
	t := c.tiles[i]
	if t == nil || a < 0 || a >= TilePixels || b < 0 || b >= TilePixels {
		return false
	}
	return t.slots[a] != nil && t.slots[a] == t.slots[b]
}

// Stats counts logical positions against distinct storage.
func (c *Compressed) Stats() Stats {
	s := Stats{
		Tiles:  len(c.tiles),
		Pixels: c.height * c.width,
	}
	seen := make(map[*Tile]struct{}, len(c.tiles))
	for _, t := range c.tiles {
		if t == nil {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		s.DistinctTiles++
		s.DistinctPixels += t.DistinctPixels()
	}
	return s
}

// SharedTile is one stored tile and the positions that alias it.
type SharedTile struct {
	Tile      *Tile // independent copy of the stored content
	Positions []int // tile positions in ascending order
}

// DistinctTiles returns each stored tile once, in order of first position.
// The tiles are copies, so modifying them never reaches the grid.
func (c *Compressed) DistinctTiles() []SharedTile {
	var out []SharedTile
	index := make(map[*Tile]int, len(c.tiles))
	for i, t := range c.tiles {
		if t == nil {
			continue
		}
		n, ok := index[t]
		if !ok {
			n = len(out)
			index[t] = n
			out = append(out, SharedTile{Tile: t.Clone()})
		}
		out[n].Positions = append(out[n].Positions, i)
	}
	return out
}

// Decompress returns a plain Image holding independent copies of every tile.
func (c *Compressed) Decompress() *Image {
	m := &Image{layout: layout{
		height: c.height,
		width:  c.width,
		gray:   c.gray,
		tiles:  make([]*Tile, len(c.tiles)),
	}}
	for i, t := range c.tiles {
		if t != nil {
			m.tiles[i] = t.Clone()
		}
	}
	return m
}
