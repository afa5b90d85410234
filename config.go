package ggbrand

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/gogpu/gg"
)

// BrandConfig holds organization-level branding overrides loaded from a
// YAML file. Every field is optional; zero values leave the preset
// defaults in place.
type BrandConfig struct {
	Theme ThemeConfig `yaml:"theme"`
	Logo  LogoConfig  `yaml:"logo"`
	Fonts FontsConfig `yaml:"fonts"`
}

// ThemeConfig overrides preset theme parameters. Colors are hex strings.
type ThemeConfig struct {
	Name            string   `yaml:"name"`
	Background      string   `yaml:"background"`
	PanelBackground string   `yaml:"panelBackground"`
	GridColor       string   `yaml:"gridColor"`
	AxisColor       string   `yaml:"axisColor"`
	TextColor       string   `yaml:"textColor"`
	BaseFontSize    float64  `yaml:"baseFontSize"`
	FontFamilies    []string `yaml:"fontFamilies"`
}

// LogoConfig sets defaults for OverlayLogo calls driven by this config.
type LogoConfig struct {
	Variant     string   `yaml:"variant"`
	Resolution  string   `yaml:"resolution"`
	Alpha       *float64 `yaml:"alpha"`
	AssetDir    string   `yaml:"assetDir"`
	SandboxRoot string   `yaml:"sandboxRoot"`
	MaxFileSize int64    `yaml:"maxFileSize"`
}

// FontsConfig overrides the font preference list.
type FontsConfig struct {
	Families []string `yaml:"families"`
}

// LoadBrandConfig reads and parses a YAML brand config file.
// Returns ErrConfigNotFound if the file does not exist and
// ErrConfigParse if the YAML is invalid.
func LoadBrandConfig(path string) (*BrandConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read brand config: %w", err)
	}

	var cfg BrandConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// BuildTheme resolves the config into a concrete theme: start from the
// named preset (default when unnamed), then apply each override.
func (c *BrandConfig) BuildTheme() (Theme, error) {
	name := c.Theme.Name
	if name == "" {
		name = "default"
	}
	t, err := ThemeByName(name)
	if err != nil {
		return Theme{}, err
	}

	if c.Theme.Background != "" {
		t.Background = gg.Hex(c.Theme.Background)
	}
	if c.Theme.PanelBackground != "" {
		t.PanelBackground = gg.Hex(c.Theme.PanelBackground)
	}
	if c.Theme.GridColor != "" {
		t.GridColor = gg.Hex(c.Theme.GridColor)
	}
	if c.Theme.AxisColor != "" {
		t.AxisColor = gg.Hex(c.Theme.AxisColor)
	}
	if c.Theme.TextColor != "" {
		t.TextColor = gg.Hex(c.Theme.TextColor)
	}
	if c.Theme.BaseFontSize > 0 {
		t.BaseFontSize = c.Theme.BaseFontSize
	}
	if len(c.Theme.FontFamilies) > 0 {
		t.FontFamilies = append([]string(nil), c.Theme.FontFamilies...)
	}
	if len(c.Fonts.Families) > 0 {
		t.FontFamilies = append([]string(nil), c.Fonts.Families...)
	}
	return t, nil
}

// LogoOptions resolves the config's logo section into OverlayLogo
// options supplied ahead of any per-call options.
func (c *BrandConfig) LogoOptions() []LogoOption {
	var opts []LogoOption
	if c.Logo.Variant != "" {
		opts = append(opts, WithLogoVariant(LogoVariant(c.Logo.Variant)))
	}
	if c.Logo.Resolution != "" {
		opts = append(opts, WithLogoResolution(LogoResolution(c.Logo.Resolution)))
	}
	if c.Logo.Alpha != nil {
		opts = append(opts, WithAlpha(*c.Logo.Alpha))
	}
	if c.Logo.AssetDir != "" {
		opts = append(opts, WithAssetDir(c.Logo.AssetDir))
	}
	if c.Logo.SandboxRoot != "" {
		opts = append(opts, WithSandboxRoot(c.Logo.SandboxRoot))
	}
	if c.Logo.MaxFileSize > 0 {
		opts = append(opts, WithMaxFileSize(c.Logo.MaxFileSize))
	}
	return opts
}
