package grid

import (
	"github.com/jpfielding/tilegrid/pkg/pixel"
)

// Image is a plain tiled grid: every tile and pixel has its own storage.
type Image struct {
	layout
}

// New creates an image with every tile absent. height and width must be
// positive multiples of TileSize.
func New(height, width int, gray bool) (*Image, error) {
	l, err := newLayout(height, width, gray)
	if err != nil {
		return nil, err
	}
	return &Image{layout: l}, nil
}

// SetPixel writes p at row y, column x, creating the tile if needed. The
// other slots of a freshly created tile stay empty.
func (m *Image) SetPixel(y, x int, p pixel.Pixel) error {
	a, err := m.locate(y, x)
	if err != nil {
		return err
	}
	if m.tiles[a.Tile] == nil {
		m.tiles[a.Tile] = NewTile()
	}
	return m.tiles[a.Tile].Set(a.Row, a.Col, p)
}

// Tile returns the tile at index i, or nil if it was never written.
func (m *Image) Tile(i int) *Tile {
	return m.tiles[i]
}

// Equal reports whether o has the same dimensions and tile content.
func (m *Image) Equal(o *Image) bool {
	return m.layout.equal(&o.layout)
}

// Clone deep copies the image.
func (m *Image) Clone() *Image {
	c := &Image{layout: layout{
		height: m.height,
		width:  m.width,
		gray:   m.gray,
		tiles:  make([]*Tile, len(m.tiles)),
	}}
	for i, t := range m.tiles {
		if t != nil {
			c.tiles[i] = t.Clone()
		}
	}
	return c
}
