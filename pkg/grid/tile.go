package grid

import (
	"fmt"
	"strings"

	"github.com/jpfielding/tilegrid/pkg/pixel"
)

// Tile is a 4 by 4 block of pixel slots addressed row-major. A nil slot has
// never been written. Slots hold pointers so a compressed tile can point
// several slots at one stored pixel.
type Tile struct {
	slots [TilePixels]*pixel.Pixel
}

// NewTile returns a tile with every slot empty.
func NewTile() *Tile {
	return &Tile{}
}

func tileIndex(row, col int) (int, error) {
	if row < 0 || row >= TileSize || col < 0 || col >= TileSize {
		return 0, fmt.Errorf("%w: tile slot (%d,%d)", ErrOutOfRange, row, col)
	}
	return row*TileSize + col, nil
}

// Get returns the pixel at the local row and column.
func (t *Tile) Get(row, col int) (pixel.Pixel, error) {
	i, err := tileIndex(row, col)
	if err != nil {
		return pixel.Pixel{}, err
	}
	if t.slots[i] == nil {
		return pixel.Pixel{}, fmt.Errorf("%w: tile slot (%d,%d)", ErrUninitialized, row, col)
	}
	return *t.slots[i], nil
}

// Set stores an independent copy of p at the local row and column.
func (t *Tile) Set(row, col int, p pixel.Pixel) error {
	i, err := tileIndex(row, col)
	if err != nil {
		return err
	}
	t.slots[i] = &p
	return nil
}

// Populated reports whether all 16 slots hold a pixel.
func (t *Tile) Populated() bool {
	for _, p := range t.slots {
		if p == nil {
			return false
		}
	}
	return true
}

// Equal compares the content of all 16 slots. Two absent tiles are equal.
func (t *Tile) Equal(o *Tile) bool {
	if t == nil || o == nil {
		return t == o
	}
	for i := range t.slots {
		a, b := t.slots[i], o.slots[i]
		if a == nil || b == nil {
			if a != b {
				return false
			}
			continue
		}
		if !a.Equal(*b) {
			return false
		}
	}
	return true
}

// Clone deep copies the tile. The copy shares no storage with t but keeps
// t's slot sharing pattern.
func (t *Tile) Clone() *Tile {
	c := &Tile{}
	cells := make(map[*pixel.Pixel]*pixel.Pixel, TilePixels)
	for i, p := range t.slots {
		if p == nil {
			continue
		}
		cp, ok := cells[p]
		if !ok {
			v := *p
			cp = &v
			cells[p] = cp
		}
		c.slots[i] = cp
	}
	return c
}

// DistinctPixels counts the distinct storage cells referenced by the tile.
func (t *Tile) DistinctPixels() int {
	seen := make(map[*pixel.Pixel]struct{}, TilePixels)
	for _, p := range t.slots {
		if p != nil {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

// String joins the canonical encoding of every slot with commas.
func (t *Tile) String() string {
	var sb strings.Builder
	for i, p := range t.slots {
		if i > 0 {
			sb.WriteByte(',')
		}
		if p != nil {
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}

// dedupe points every slot at the last value-equal slot in row-major order.
func (t *Tile) dedupe() {
	for i := range t.slots {
		for k := range t.slots {
			if t.slots[k].Equal(*t.slots[i]) {
				t.slots[i] = t.slots[k]
			}
		}
	}
}
