package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents plot styling and behavior configuration.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Axis   AxisConfig   `yaml:"axis"`
	Canvas CanvasConfig `yaml:"canvas"`
	Legend LegendConfig `yaml:"legend"`
	ROI    ROIConfig    `yaml:"roi"`
}

// ThemeConfig contains plot colors as #RRGGBB hex strings.
type ThemeConfig struct {
	Background string   `yaml:"background"`
	Foreground string   `yaml:"foreground"`
	Grid       string   `yaml:"grid"`
	Palette    []string `yaml:"palette"` // cycled over items without an explicit color
}

// AxisConfig contains tick and label parameters.
type AxisConfig struct {
	TickLength    float32 `yaml:"tick_length"`     // major tick line length in px
	LabelSize     float32 `yaml:"label_size"`      // tick label text size
	LabelUnit     string  `yaml:"label_unit"`      // unit appended after the SI prefix
	MaxTickLevels int     `yaml:"max_tick_levels"` // 1..3
}

// CanvasConfig contains view-box behavior parameters.
type CanvasConfig struct {
	AutoRange  bool    `yaml:"auto_range"`
	MinPadding float64 `yaml:"min_padding"`
	MaxPadding float64 `yaml:"max_padding"`
}

// LegendConfig contains legend placement and styling.
type LegendConfig struct {
	Show     bool    `yaml:"show"`
	TextSize float32 `yaml:"text_size"`
}

// ROIConfig contains region-of-interest styling.
type ROIConfig struct {
	Color      string  `yaml:"color"`
	HandleSize float32 `yaml:"handle_size"` // corner handle extent in px
}

// Default returns a configuration with sensible values: a dark
// oscilloscope-like theme with auto-ranging enabled.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Background: "#141414",
			Foreground: "#969696",
			Grid:       "#282828",
			Palette: []string{
				"#ffa500", // orange
				"#64c8ff", // light blue
				"#50c878", // green
				"#e05050", // red
				"#c864ff", // purple
			},
		},
		Axis: AxisConfig{
			TickLength:    6,
			LabelSize:     10,
			MaxTickLevels: 3,
		},
		Canvas: CanvasConfig{
			AutoRange:  true,
			MinPadding: 0.02,
			MaxPadding: 0.1,
		},
		Legend: LegendConfig{
			Show:     true,
			TextSize: 11,
		},
		ROI: ROIConfig{
			Color:      "#64c8ff",
			HandleSize: 8,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults fills fields a partial file left unset.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Theme.Background == "" {
		c.Theme.Background = def.Theme.Background
	}
	if c.Theme.Foreground == "" {
		c.Theme.Foreground = def.Theme.Foreground
	}
	if c.Theme.Grid == "" {
		c.Theme.Grid = def.Theme.Grid
	}
	if len(c.Theme.Palette) == 0 {
		c.Theme.Palette = def.Theme.Palette
	}
	if c.Axis.TickLength == 0 {
		c.Axis.TickLength = def.Axis.TickLength
	}
	if c.Axis.LabelSize == 0 {
		c.Axis.LabelSize = def.Axis.LabelSize
	}
	if c.Axis.MaxTickLevels == 0 {
		c.Axis.MaxTickLevels = def.Axis.MaxTickLevels
	}
	if c.Canvas.MinPadding == 0 {
		c.Canvas.MinPadding = def.Canvas.MinPadding
	}
	if c.Canvas.MaxPadding == 0 {
		c.Canvas.MaxPadding = def.Canvas.MaxPadding
	}
	if c.Legend.TextSize == 0 {
		c.Legend.TextSize = def.Legend.TextSize
	}
	if c.ROI.Color == "" {
		c.ROI.Color = def.ROI.Color
	}
	if c.ROI.HandleSize == 0 {
		c.ROI.HandleSize = def.ROI.HandleSize
	}
}

// Validate rejects configurations no renderer can honor.
func (c *Config) Validate() error {
	if c.Canvas.MinPadding < 0 || c.Canvas.MaxPadding < 0 {
		return fmt.Errorf("config: padding must be non-negative")
	}
	if c.Canvas.MinPadding > c.Canvas.MaxPadding {
		return fmt.Errorf("config: min_padding %v exceeds max_padding %v",
			c.Canvas.MinPadding, c.Canvas.MaxPadding)
	}
	if c.Axis.MaxTickLevels < 1 || c.Axis.MaxTickLevels > 3 {
		return fmt.Errorf("config: max_tick_levels must be 1..3, got %d", c.Axis.MaxTickLevels)
	}
	if c.Axis.TickLength < 0 || c.Axis.LabelSize <= 0 {
		return fmt.Errorf("config: axis sizes must be positive")
	}
	for _, hex := range append([]string{c.Theme.Background, c.Theme.Foreground, c.Theme.Grid, c.ROI.Color}, c.Theme.Palette...) {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor converts an #RRGGBB or #RRGGBBAA string to a color.
func ParseColor(hex string) (color.NRGBA, error) {
	var r, g, b, a uint8
	a = 255
	switch len(hex) {
	case 7:
		if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("config: bad color %q: %w", hex, err)
		}
	case 9:
		if _, err := fmt.Sscanf(hex, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("config: bad color %q: %w", hex, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("config: bad color %q: want #RRGGBB or #RRGGBBAA", hex)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// PaletteColor returns the i-th palette color, cycling.
func (c *Config) PaletteColor(i int) color.NRGBA {
	if len(c.Theme.Palette) == 0 {
		return color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	}
	col, err := ParseColor(c.Theme.Palette[i%len(c.Theme.Palette)])
	if err != nil {
		return color.NRGBA{R: 255, G: 165, B: 0, A: 255}
	}
	return col
}
