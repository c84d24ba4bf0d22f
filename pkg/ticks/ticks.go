// Package ticks generates axis tick positions and labels for a visible
// data range rendered over a known pixel length. Up to three spacing
// levels are produced (major, minor, sub-minor); lower levels never repeat
// positions already emitted by a higher level.
package ticks

import (
	"math"

	"github.com/chewxy/math32"
)

// Level describes one tick spacing tier.
type Level struct {
	Spacing float64
	Offset  float64
}

// Set is the tick positions generated for one level. Values are strictly
// increasing and lie within the requested range.
type Set struct {
	Level  Level
	Values []float64
}

// minTickPx is the smallest useful pixel distance between ticks of a
// level; tiers packed tighter than this are not generated.
const minTickPx = 8

// Spacings returns 1 to 3 tick levels for the range [min, max] drawn over
// lengthPx device pixels. The major spacing is the 1/2/5 power-of-ten step
// nearest to range/log(lengthPx); minor and sub-minor subdivide it while
// they still resolve to at least minTickPx on screen.
func Spacings(min, max float64, lengthPx float32) []Level {
	dif := math.Abs(max - min)
	if dif == 0 || math.IsNaN(dif) || math.IsInf(dif, 0) || lengthPx <= 1 {
		return nil
	}

	optimal := dif / float64(math32.Log(lengthPx))
	p10 := math.Pow(10, math.Floor(math.Log10(optimal)))

	// Nearest 1/2/5 bracket on a log scale.
	major := p10
	best := math.Inf(1)
	for _, m := range [...]float64{1, 2, 5, 10} {
		cand := m * p10
		d := math.Abs(math.Log10(cand) - math.Log10(optimal))
		if d < best {
			best = d
			major = cand
		}
	}

	levels := []Level{{Spacing: major}}
	for _, sub := range subdivisions(major) {
		if pxPer(sub, dif, lengthPx) < minTickPx {
			break
		}
		levels = append(levels, Level{Spacing: sub})
		if len(levels) == 3 {
			break
		}
	}
	return levels
}

// subdivisions returns the candidate lower tiers for a major spacing,
// largest first.
func subdivisions(major float64) [2]float64 {
	mant := major / math.Pow(10, math.Floor(math.Log10(major)))
	switch {
	case closeTo(mant, 2):
		return [2]float64{major / 2, major / 10}
	case closeTo(mant, 5):
		return [2]float64{major / 5, major / 10}
	default: // 1 or 10
		return [2]float64{major / 5, major / 10}
	}
}

func closeTo(v, target float64) bool {
	return math.Abs(v-target) < 1e-9*target
}

func pxPer(spacing, dif float64, lengthPx float32) float64 {
	return spacing / dif * float64(lengthPx)
}

// Values generates the tick positions for [min, max] over lengthPx pixels,
// one Set per level from Spacings. A position already produced by a higher
// level is dropped when it falls within 1% of that level's spacing.
func Values(min, max float64, lengthPx float32) []Set {
	if max < min {
		min, max = max, min
	}
	levels := Spacings(min, max, lengthPx)
	sets := make([]Set, 0, len(levels))
	var used []float64

	for _, lv := range levels {
		vals := positions(min, max, lv)
		kept := vals[:0]
		for _, v := range vals {
			if containsWithin(used, v, lv.Spacing/100) {
				continue
			}
			kept = append(kept, v)
		}
		used = append(used, kept...)
		sets = append(sets, Set{Level: lv, Values: kept})
	}
	return sets
}

// positions enumerates the grid points of one level inside [min, max].
func positions(min, max float64, lv Level) []float64 {
	start := math.Ceil((min-lv.Offset)/lv.Spacing)*lv.Spacing + lv.Offset
	n := int(math.Floor((max-start)/lv.Spacing)) + 1
	if n <= 0 {
		return nil
	}
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := start + float64(i)*lv.Spacing
		if v > max {
			break
		}
		// Snap values within rounding noise of zero.
		if math.Abs(v) < lv.Spacing*1e-10 {
			v = 0
		}
		// Accumulated rounding can land the first value just below min.
		if v < min {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

func containsWithin(vals []float64, v, tol float64) bool {
	for _, u := range vals {
		if math.Abs(u-v) <= tol {
			return true
		}
	}
	return false
}

// LogValues generates ticks for a logarithmic axis. min and max are given
// in log10 space (the displayed coordinate). When the linear generator
// yields fewer than 3 levels, minor ticks are re-derived from the decade
// crossings at multiples 2..9.
func LogValues(min, max float64, lengthPx float32) []Set {
	if max < min {
		min, max = max, min
	}
	sets := Values(min, max, lengthPx)
	if len(sets) >= 3 {
		return sets
	}

	var minors []float64
	for d := math.Floor(min); d <= math.Ceil(max); d++ {
		for m := 2; m <= 9; m++ {
			v := d + math.Log10(float64(m))
			if v >= min && v <= max {
				minors = append(minors, v)
			}
		}
	}
	if len(minors) > 0 {
		sets = append(sets, Set{Level: Level{Spacing: math.Log10(2)}, Values: minors})
	}
	return sets
}
