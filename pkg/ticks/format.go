package ticks

import (
	"fmt"
	"math"
)

var siPrefixes = [...]struct {
	mag    float64
	prefix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// SIPrefix picks the SI prefix for axis labels so the largest displayed
// value stays in [1, 1000). It returns the multiplier to apply to data
// values and the prefix string to append to the axis unit.
func SIPrefix(maxAbs float64) (scale float64, prefix string) {
	if maxAbs == 0 || math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
		return 1, ""
	}
	maxAbs = math.Abs(maxAbs)
	for _, p := range siPrefixes {
		if maxAbs >= p.mag {
			return 1 / p.mag, p.prefix
		}
	}
	last := siPrefixes[len(siPrefixes)-1]
	return 1 / last.mag, last.prefix
}

// FormatValue renders a tick value scaled by an SIPrefix multiplier, with
// just enough decimals to distinguish neighbors at the given spacing.
func FormatValue(v, spacing, scale float64) string {
	v *= scale
	spacing *= scale
	decimals := 0
	if spacing > 0 && spacing < 1 {
		decimals = int(math.Ceil(-math.Log10(spacing)))
		if decimals > 9 {
			decimals = 9
		}
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// DensityLimit returns the maximum fraction of the axis length that may be
// occupied by tick labels of a level, given how many labels higher levels
// have already placed.
func DensityLimit(priorLabels int) float64 {
	switch {
	case priorLabels == 0:
		return 0.8
	case priorLabels == 1:
		return 0.7
	default:
		return 0.6
	}
}

// FilterByDensity drops lower tick levels once their labels would crowd
// the axis. labelPx measures the rendered extent of one label along the
// axis. The first level is always kept; each further level is kept only if
// the accumulated label extent stays within DensityLimit of the axis
// length, and dropping a level drops everything below it.
func FilterByDensity(sets []Set, lengthPx float32, labelPx func(v float64) float32) []Set {
	if len(sets) <= 1 || lengthPx <= 0 {
		return sets
	}
	var occupied float32
	prior := 0
	for _, v := range sets[0].Values {
		occupied += labelPx(v)
	}
	prior += len(sets[0].Values)

	kept := sets[:1]
	for _, s := range sets[1:] {
		extra := float32(0)
		for _, v := range s.Values {
			extra += labelPx(v)
		}
		if float64((occupied+extra)/lengthPx) > DensityLimit(prior) {
			break
		}
		occupied += extra
		prior += len(s.Values)
		kept = append(kept, s)
	}
	return kept
}
