package grid

// Addr locates one pixel inside the tile-indexed storage.
type Addr struct {
	Tile int // row-major tile index
	Row  int // row within the tile
	Col  int // column within the tile
}

// Locate converts a global (y, x) into its tile address for a grid that is
// tilesPerRow tiles wide. Callers range-check first.
func Locate(y, x, tilesPerRow int) Addr {
	return Addr{
		Tile: (y/TileSize)*tilesPerRow + x/TileSize,
		Row:  y % TileSize,
		Col:  x % TileSize,
	}
}

// Global is the inverse of Locate.
func (a Addr) Global(tilesPerRow int) (y, x int) {
	y = (a.Tile/tilesPerRow)*TileSize + a.Row
	x = (a.Tile%tilesPerRow)*TileSize + a.Col
	return y, x
}

