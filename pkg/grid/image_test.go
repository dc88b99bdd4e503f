package grid

import (
	"testing"

	"github.com/jpfielding/tilegrid/pkg/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill writes fn(y, x) at every coordinate of m.
func fill(t *testing.T, m *Image, fn func(y, x int) pixel.Pixel) *Image {
	t.Helper()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			require.NoError(t, m.SetPixel(y, x, fn(y, x)))
		}
	}
	return m
}

func newFilled(t *testing.T, h, w int, gray bool, fn func(y, x int) pixel.Pixel) *Image {
	t.Helper()
	m, err := New(h, w, gray)
	require.NoError(t, err)
	return fill(t, m, fn)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		h, w    int
		tiles   int
		wantErr bool
	}{
		{"Single", 4, 4, 1, false},
		{"Wide", 4, 12, 3, false},
		{"Square", 8, 8, 4, false},
		{"Zero", 0, 4, 0, true},
		{"Negative", -4, 4, 0, true},
		{"NotMultipleH", 6, 4, 0, true},
		{"NotMultipleW", 4, 5, 0, true},
		{"OverMaxTiles", 4 * 4096, 4 * 4097, 0, true},
		{"ProductOverflows", 4000000000, 4000000000, 0, true},
		{"HugeWidth", 4, 4611686018427387904, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.h, tt.w, true)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tiles, m.TileCount())
			assert.Equal(t, tt.h, m.Height())
			assert.Equal(t, tt.w, m.Width())
			assert.True(t, m.Grayscale())
			assert.False(t, m.Populated())
		})
	}
}

func TestSetGetPixel(t *testing.T) {
	m, err := New(8, 12, false)
	require.NoError(t, err)

	_, err = m.GetPixel(5, 5)
	assert.ErrorIs(t, err, ErrUninitialized)

	require.NoError(t, m.SetPixel(5, 9, pixel.RGB(1, 2, 3)))
	p, err := m.GetPixel(5, 9)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGB(1, 2, 3), p)

	// the tile now exists but its other slots are still empty
	_, err = m.GetPixel(4, 8)
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.NotNil(t, m.Tile(5))
	assert.Nil(t, m.Tile(0))

	// overwrite
	require.NoError(t, m.SetPixel(5, 9, pixel.RGB(9, 9, 9)))
	p, err = m.GetPixel(5, 9)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGB(9, 9, 9), p)
}

func TestWriteThenRead(t *testing.T) {
	m := newFilled(t, 8, 8, true, func(y, x int) pixel.Pixel { return pixel.Gray(y*8 + x) })
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p, err := m.GetPixel(y, x)
			require.NoError(t, err)
			assert.Equal(t, pixel.Gray(y*8+x), p)
		}
	}
	assert.True(t, m.Populated())
}

func TestOutOfRange(t *testing.T) {
	m := newFilled(t, 4, 8, true, func(y, x int) pixel.Pixel { return pixel.Gray(1) })
	coords := [][2]int{{4, 0}, {0, 8}, {-1, 0}, {0, -1}, {4, 8}, {100, 100}}
	for _, c := range coords {
		_, err := m.GetPixel(c[0], c[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "get %v", c)
		assert.ErrorIs(t, m.SetPixel(c[0], c[1], pixel.Gray(0)), ErrOutOfRange, "set %v", c)
	}
}

func TestImageEqual(t *testing.T) {
	gradient := func(y, x int) pixel.Pixel { return pixel.Gray(x + y) }
	a := newFilled(t, 8, 8, true, gradient)
	b := newFilled(t, 8, 8, true, gradient)
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// only the last tile differs
	require.NoError(t, b.SetPixel(7, 7, pixel.Gray(0)))
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	other := newFilled(t, 4, 16, true, gradient)
	assert.False(t, a.Equal(other))
}

func TestImageClone(t *testing.T) {
	a := newFilled(t, 4, 4, true, func(y, x int) pixel.Pixel { return pixel.Gray(3) })
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.SetPixel(0, 0, pixel.Gray(4)))
	p, err := a.GetPixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, pixel.Gray(3), p)
}

func TestRasterEqual(t *testing.T) {
	a := newFilled(t, 8, 4, false, func(y, x int) pixel.Pixel { return pixel.RGB(y, x, 0) })
	c, err := a.Compress(Options{Pixel: true, Tile: true})
	require.NoError(t, err)
	assert.True(t, Equal(a, c))
	assert.True(t, Equal(c, a))

	empty, err := New(8, 4, false)
	require.NoError(t, err)
	assert.False(t, Equal(a, empty))

	wide, err := New(4, 8, false)
	require.NoError(t, err)
	assert.False(t, Equal(empty, wide))
}
