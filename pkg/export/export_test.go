package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/items"
)

func TestSave_PNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	c := items.NewCurve("signal")
	require.NoError(t, c.SetData([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1}))
	s := items.NewScatter("points")
	require.NoError(t, s.SetData([]float64{0.5, 1.5}, []float64{0.5, 0.5}))

	err := Save(path, Options{Title: "test", XLabel: "t", YLabel: "v"}, c, s)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSave_AllSupportedTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.svg")

	b := items.NewBar("hist")
	require.NoError(t, b.SetData([]float64{0, 1, 2}, []float64{3, 1, 2}))
	e := items.NewErrorBar("err")
	require.NoError(t, e.SetData(
		[]float64{0, 1}, []float64{1, 2}, []float64{0.1, 0.2}, []float64{0.1, 0.3}))

	require.NoError(t, Save(path, Options{}, b, e))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_FixedRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	c := items.NewCurve("signal")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{0, 1}))

	r := geom.NewRect(-5, -5, 5, 5)
	require.NoError(t, Save(path, Options{Range: &r}, c))

	bad := geom.Rect{X0: 1, Y0: 0, X1: 1, Y1: 1}
	assert.Error(t, Save(path, Options{Range: &bad}, c))
}

func TestSave_SkipsInvisibleItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	c := items.NewCurve("signal")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{0, 1}))
	c.SetVisible(false)

	require.NoError(t, Save(path, Options{}, c))
}

func TestSave_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	c := items.NewCurve("signal")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{0, 1}))

	err := Save(filepath.Join(dir, "plot.bogus"), Options{}, c)
	assert.Error(t, err)
}
