package colormap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_EndpointsAndClamping(t *testing.T) {
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, Grayscale.Lookup(0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, Grayscale.Lookup(1))
	// Out-of-range values clamp.
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, Grayscale.Lookup(-5))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, Grayscale.Lookup(2))
}

func TestLookup_Interpolates(t *testing.T) {
	got := Grayscale.Lookup(0.5)
	assert.InDelta(t, 128, int(got.R), 1)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.R, got.B)
	assert.EqualValues(t, 255, got.A)
}

func TestLookup_HitsMiddleStops(t *testing.T) {
	assert.Equal(t, color.NRGBA{33, 145, 140, 255}, Viridis.Lookup(0.5))
	assert.Equal(t, color.NRGBA{221, 221, 221, 255}, CoolWarm.Lookup(0.5))
}

func TestNew_Validation(t *testing.T) {
	_, err := New("one", []Stop{{0, color.NRGBA{}}})
	assert.Error(t, err)

	_, err = New("oob", []Stop{{-0.5, color.NRGBA{}}, {1, color.NRGBA{}}})
	assert.Error(t, err)

	m, err := New("unsorted", []Stop{{1, color.NRGBA{R: 255}}, {0, color.NRGBA{}}})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, m.Lookup(0))
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		m, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.Name)
	}

	_, err := ByName("jet")
	assert.Error(t, err)
}
