package ggbrand

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brand.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBrandConfig(t *testing.T) {
	path := writeConfig(t, `
theme:
  name: dark
  background: "#101010"
  baseFontSize: 16
logo:
  variant: full
  alpha: 0.85
  maxFileSize: 1048576
fonts:
  families: [Arial, Helvetica]
`)

	cfg, err := LoadBrandConfig(path)
	if err != nil {
		t.Fatalf("LoadBrandConfig() error = %v", err)
	}
	if cfg.Theme.Name != "dark" {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if cfg.Logo.Alpha == nil || *cfg.Logo.Alpha != 0.85 {
		t.Errorf("Logo.Alpha = %v", cfg.Logo.Alpha)
	}
	if cfg.Logo.MaxFileSize != 1048576 {
		t.Errorf("Logo.MaxFileSize = %d", cfg.Logo.MaxFileSize)
	}
}

func TestLoadBrandConfig_Missing(t *testing.T) {
	_, err := LoadBrandConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadBrandConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed")
	_, err := LoadBrandConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestBrandConfig_BuildTheme(t *testing.T) {
	path := writeConfig(t, `
theme:
  name: report
  background: "#F0F0F0"
  textColor: "#222222"
`)
	cfg, err := LoadBrandConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	th, err := cfg.BuildTheme()
	if err != nil {
		t.Fatalf("BuildTheme() error = %v", err)
	}
	if th.Name != "report" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != gg.Hex("#F0F0F0") {
		t.Errorf("Background = %v, override not applied", th.Background)
	}
	if th.TextColor != gg.Hex("#222222") {
		t.Errorf("TextColor = %v, override not applied", th.TextColor)
	}
	// Untouched fields keep the preset value.
	if th.GridColor != ThemeReport().GridColor {
		t.Errorf("GridColor = %v, want preset value", th.GridColor)
	}
}

func TestBrandConfig_BuildThemeDefaults(t *testing.T) {
	cfg := &BrandConfig{}
	th, err := cfg.BuildTheme()
	if err != nil {
		t.Fatalf("BuildTheme() error = %v", err)
	}
	if th.Name != "default" {
		t.Errorf("empty config theme = %q, want default", th.Name)
	}
}

func TestBrandConfig_BuildThemeUnknown(t *testing.T) {
	cfg := &BrandConfig{Theme: ThemeConfig{Name: "neon"}}
	if _, err := cfg.BuildTheme(); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}

func TestBrandConfig_LogoOptions(t *testing.T) {
	alpha := 0.5
	cfg := &BrandConfig{Logo: LogoConfig{Variant: "full", Alpha: &alpha}}

	opts := cfg.LogoOptions()
	if len(opts) != 2 {
		t.Fatalf("LogoOptions len = %d, want 2", len(opts))
	}

	// Applying the options then overlaying must honor them.
	p, err := OverlayLogo(NewPlot(), opts...)
	if err != nil {
		t.Fatalf("OverlayLogo with config options error = %v", err)
	}
	if p.StepCount() != 1 {
		t.Errorf("StepCount = %d, want 1", p.StepCount())
	}
}
