package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want string
	}{
		{"Gray", Gray(7), "7"},
		{"GrayZero", Gray(0), "0"},
		{"Color", RGB(1, 22, 255), "R1#G22#B255"},
		{"Black", RGB(0, 0, 0), "R0#G0#B0"},
		{"Unset", Pixel{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Gray(5).Equal(Gray(5)))
	assert.False(t, Gray(5).Equal(Gray(6)))
	assert.True(t, RGB(1, 2, 3).Equal(RGB(1, 2, 3)))
	assert.False(t, RGB(1, 2, 3).Equal(RGB(3, 2, 1)))
	// same leading channel, different channel count
	assert.False(t, Gray(1).Equal(RGB(1, 0, 0)))
	assert.False(t, RGB(1, 0, 0).Equal(Gray(1)))
}

func TestFromValues(t *testing.T) {
	p, err := FromValues([]int{9})
	require.NoError(t, err)
	assert.Equal(t, Gray(9), p)

	p, err = FromValues([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, RGB(1, 2, 3), p)
	assert.Equal(t, []int{1, 2, 3}, p.Values())
	assert.Equal(t, 3, p.Channels())

	_, err = FromValues([]int{1, 2})
	assert.ErrorIs(t, err, ErrChannels)
	_, err = FromValues(nil)
	assert.ErrorIs(t, err, ErrChannels)
}

func TestValuesIsCopy(t *testing.T) {
	p := RGB(10, 20, 30)
	vals := p.Values()
	vals[0] = 99
	assert.Equal(t, "R10#G20#B30", p.String())
}

func TestParse(t *testing.T) {
	for _, s := range []string{"0", "255", "R0#G0#B0", "R12#G0#B255"} {
		p, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
	}

	for _, s := range []string{"", "x", "R1#G2", "R1#B2#G3", "R1#G2#Bz"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrEncoding, s)
	}
}

func TestKinds(t *testing.T) {
	assert.True(t, Gray(3).IsGray())
	assert.False(t, RGB(3, 3, 3).IsGray())
	assert.True(t, Pixel{}.IsZero())
	assert.False(t, Gray(0).IsZero())
}
