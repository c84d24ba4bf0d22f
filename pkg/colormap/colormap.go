// Package colormap maps normalized data values to colors for image items
// and intensity plots.
package colormap

import (
	"fmt"
	"image/color"
	"sort"
)

// Stop is one control point of a color map.
type Stop struct {
	Pos   float64 // in [0, 1]
	Color color.NRGBA
}

// Map interpolates linearly between control points. The zero value is not
// usable; construct maps with New or take a built-in.
type Map struct {
	Name  string
	stops []Stop
}

// New builds a map from control points. At least two stops are required
// and positions must be within [0, 1]; stops are sorted by position.
func New(name string, stops []Stop) (Map, error) {
	if len(stops) < 2 {
		return Map{}, fmt.Errorf("colormap %q: need at least 2 stops, got %d", name, len(stops))
	}
	s := make([]Stop, len(stops))
	copy(s, stops)
	sort.Slice(s, func(i, j int) bool { return s[i].Pos < s[j].Pos })
	if s[0].Pos < 0 || s[len(s)-1].Pos > 1 {
		return Map{}, fmt.Errorf("colormap %q: stop positions must be in [0,1]", name)
	}
	return Map{Name: name, stops: s}, nil
}

// Lookup returns the color at t, clamped to [0, 1].
func (m Map) Lookup(t float64) color.NRGBA {
	if len(m.stops) == 0 {
		return color.NRGBA{A: 255}
	}
	if t <= m.stops[0].Pos {
		return m.stops[0].Color
	}
	last := m.stops[len(m.stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	i := sort.Search(len(m.stops), func(i int) bool { return m.stops[i].Pos >= t })
	a, b := m.stops[i-1], m.stops[i]
	f := (t - a.Pos) / (b.Pos - a.Pos)
	return color.NRGBA{
		R: lerp(a.Color.R, b.Color.R, f),
		G: lerp(a.Color.G, b.Color.G, f),
		B: lerp(a.Color.B, b.Color.B, f),
		A: lerp(a.Color.A, b.Color.A, f),
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}

func mustMap(name string, stops []Stop) Map {
	m, err := New(name, stops)
	if err != nil {
		panic(err)
	}
	return m
}

var builtins = map[string]Map{
	"grayscale": Grayscale,
	"viridis":   Viridis,
	"turbo":     Turbo,
	"coolwarm":  CoolWarm,
}

// ByName returns a built-in map. Unknown names are an error.
func ByName(name string) (Map, error) {
	m, ok := builtins[name]
	if !ok {
		return Map{}, fmt.Errorf("colormap: unknown map %q", name)
	}
	return m, nil
}

// Names lists the built-in maps in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Grayscale runs from black to white.
var Grayscale = mustMap("grayscale", []Stop{
	{0, color.NRGBA{0, 0, 0, 255}},
	{1, color.NRGBA{255, 255, 255, 255}},
})

// Viridis is a perceptually uniform map from dark purple to yellow.
var Viridis = mustMap("viridis", []Stop{
	{0.00, color.NRGBA{68, 1, 84, 255}},
	{0.25, color.NRGBA{59, 82, 139, 255}},
	{0.50, color.NRGBA{33, 145, 140, 255}},
	{0.75, color.NRGBA{94, 201, 98, 255}},
	{1.00, color.NRGBA{253, 231, 37, 255}},
})

// Turbo is a rainbow-like map with better perceptual ordering than jet.
var Turbo = mustMap("turbo", []Stop{
	{0.00, color.NRGBA{48, 18, 59, 255}},
	{0.25, color.NRGBA{62, 156, 254, 255}},
	{0.50, color.NRGBA{164, 252, 59, 255}},
	{0.75, color.NRGBA{249, 131, 36, 255}},
	{1.00, color.NRGBA{122, 4, 2, 255}},
})

// CoolWarm is a diverging blue-white-red map for signed data.
var CoolWarm = mustMap("coolwarm", []Stop{
	{0.0, color.NRGBA{59, 76, 192, 255}},
	{0.5, color.NRGBA{221, 221, 221, 255}},
	{1.0, color.NRGBA{180, 4, 38, 255}},
})
