package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "#141414", cfg.Theme.Background)
	assert.Len(t, cfg.Theme.Palette, 5)
	assert.Equal(t, float32(6), cfg.Axis.TickLength)
	assert.Equal(t, 3, cfg.Axis.MaxTickLevels)
	assert.True(t, cfg.Canvas.AutoRange)
	assert.Equal(t, 0.02, cfg.Canvas.MinPadding)
	assert.Equal(t, 0.1, cfg.Canvas.MaxPadding)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "#141414", cfg.Theme.Background)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
theme:
  background: "#000000"
  palette:
    - "#ff0000"

axis:
  tick_length: 10
  label_unit: "V"

canvas:
  auto_range: false
  min_padding: 0.01
  max_padding: 0.2
`
	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "#000000", cfg.Theme.Background)
	assert.Equal(t, []string{"#ff0000"}, cfg.Theme.Palette)
	assert.Equal(t, float32(10), cfg.Axis.TickLength)
	assert.Equal(t, "V", cfg.Axis.LabelUnit)
	assert.False(t, cfg.Canvas.AutoRange)
	assert.Equal(t, 0.01, cfg.Canvas.MinPadding)

	// Unset fields fall back to defaults.
	assert.Equal(t, "#969696", cfg.Theme.Foreground)
	assert.Equal(t, float32(10), cfg.Axis.LabelSize)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("theme: [not a map")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString(`
canvas:
  min_padding: 0.5
  max_padding: 0.1
`)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Axis.LabelUnit = "Hz"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Theme.Background = "blue"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Axis.MaxTickLevels = 4
	assert.Error(t, cfg.Validate())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ffa500")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 165, B: 0, A: 255}, c)

	c, err = ParseColor("#00000080")
	require.NoError(t, err)
	assert.EqualValues(t, 128, c.A)

	_, err = ParseColor("ffa500")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestPaletteColor_Cycles(t *testing.T) {
	cfg := Default()
	n := len(cfg.Theme.Palette)
	assert.Equal(t, cfg.PaletteColor(0), cfg.PaletteColor(n))
}
