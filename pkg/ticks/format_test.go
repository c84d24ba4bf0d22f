package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIPrefix(t *testing.T) {
	tests := []struct {
		name   string
		maxAbs float64
		scale  float64
		prefix string
	}{
		{"unit", 5, 1, ""},
		{"kilo", 2500, 1e-3, "k"},
		{"mega", 5e6, 1e-6, "M"},
		{"giga", 2e9, 1e-9, "G"},
		{"milli", 0.003, 1e3, "m"},
		{"micro", 4.2e-5, 1e6, "µ"},
		{"nano", 1e-8, 1e9, "n"},
		{"zero", 0, 1, ""},
		{"negative", -2500, 1e-3, "k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, prefix := SIPrefix(tt.maxAbs)
			assert.InEpsilon(t, tt.scale, scale, 1e-9)
			assert.Equal(t, tt.prefix, prefix)
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "4", FormatValue(4, 2, 1))
	assert.Equal(t, "4.5", FormatValue(4.5, 0.5, 1))
	assert.Equal(t, "0.25", FormatValue(0.25, 0.05, 1))
	// 1500 with a kilo prefix renders as 1.5.
	scale, _ := SIPrefix(2000)
	assert.Equal(t, "1.5", FormatValue(1500, 500, scale))
}

func TestDensityLimit(t *testing.T) {
	assert.Equal(t, 0.8, DensityLimit(0))
	assert.Equal(t, 0.7, DensityLimit(1))
	assert.Equal(t, 0.6, DensityLimit(2))
	assert.Equal(t, 0.6, DensityLimit(50))
}

func TestFilterByDensity(t *testing.T) {
	sets := []Set{
		{Level: Level{Spacing: 2}, Values: []float64{0, 2, 4, 6, 8, 10}},
		{Level: Level{Spacing: 1}, Values: []float64{1, 3, 5, 7, 9}},
		{Level: Level{Spacing: 0.2}, Values: make([]float64, 40)},
	}
	wide := func(float64) float32 { return 30 }

	// 6 labels * 30px = 180 of 600 for the major level; adding the minor
	// level stays under the 0.7 limit, the sub-minor level would not.
	kept := FilterByDensity(sets, 600, wide)
	require.Len(t, kept, 2)
	assert.Equal(t, sets[0].Values, kept[0].Values)

	// A tiny axis keeps only the major level.
	kept = FilterByDensity(sets, 200, wide)
	require.Len(t, kept, 1)

	// Labels measuring zero never trigger suppression.
	kept = FilterByDensity(sets, 600, func(float64) float32 { return 0 })
	assert.Len(t, kept, 3)
}
