package ggbrand

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SavePreset fixes the output dimensions for a figure destination.
type SavePreset struct {
	Name   string
	Width  int
	Height int

	// JPEGQuality applies when the output path has a .jpg/.jpeg
	// extension. Zero selects the default (90).
	JPEGQuality int
}

// Figure-saving presets for the organization's standard outputs.
var (
	// PresetReport targets printed board reports (7:5 at print scale).
	PresetReport = SavePreset{Name: "report", Width: 2100, Height: 1500}

	// PresetSlide targets 16:9 presentation decks.
	PresetSlide = SavePreset{Name: "slide", Width: 1280, Height: 720}

	// PresetWeb targets intranet dashboards.
	PresetWeb = SavePreset{Name: "web", Width: 800, Height: 600}

	// PresetSocial targets link-preview cards.
	PresetSocial = SavePreset{Name: "social", Width: 1200, Height: 630, JPEGQuality: 85}
)

// savePresets indexes the presets by name.
var savePresets = map[string]SavePreset{
	PresetReport.Name: PresetReport,
	PresetSlide.Name:  PresetSlide,
	PresetWeb.Name:    PresetWeb,
	PresetSocial.Name: PresetSocial,
}

// PresetByName looks up a save preset.
// Returns ErrUnknownPreset if no preset has that name.
func PresetByName(name string) (SavePreset, error) {
	p, ok := savePresets[name]
	if !ok {
		return SavePreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames returns the names of all save presets.
func PresetNames() []string {
	names := make([]string, 0, len(savePresets))
	for name := range savePresets {
		names = append(names, name)
	}
	return names
}

const defaultJPEGQuality = 90

// SavePlot renders the plot at the preset's dimensions and writes it to
// path. The encoder follows the file extension: .png, .jpg, or .jpeg.
// Returns ErrUnsupportedOutput for any other extension.
func SavePlot(p *Plot, path string, preset SavePreset) error {
	if p == nil {
		return fmt.Errorf("%w: nil plot", ErrInvalidPlotInput)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutput, ext)
	}

	dc, err := p.Resized(preset.Width, preset.Height).Render()
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	switch ext {
	case ".png":
		err = dc.EncodePNG(f)
	default:
		quality := preset.JPEGQuality
		if quality <= 0 {
			quality = defaultJPEGQuality
		}
		err = dc.EncodeJPEG(f, quality)
	}
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", ext, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close output file: %w", err)
	}

	Logger().Info("figure written",
		"path", path,
		"preset", preset.Name,
		"size", fmt.Sprintf("%dx%d", preset.Width, preset.Height))
	return nil
}
