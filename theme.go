package ggbrand

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Theme is a complete set of visual parameters for a branded chart:
// surface colors, grid and axis styling, and typography preferences.
// Themes are plain values; modifying a copy never affects a preset.
type Theme struct {
	Name string

	// Surfaces.
	Background      gg.RGBA
	PanelBackground gg.RGBA

	// Chart furniture.
	GridColor     gg.RGBA
	AxisColor     gg.RGBA
	TextColor     gg.RGBA
	GridLineWidth float64

	// Typography. FontFamilies is an ordered preference list; the first
	// family found installed on the host wins (see FontCache).
	FontFamilies []string
	BaseFontSize float64

	// Margin is the panel inset in pixels at render size.
	Margin float64
}

// ThemeDefault returns the standard Meridian Health chart theme:
// light paper background, subtle grid, teal-forward accents.
func ThemeDefault() Theme {
	return Theme{
		Name:            "default",
		Background:      BrandPaper,
		PanelBackground: gg.White,
		GridColor:       BrandGreyLight,
		AxisColor:       BrandGreyDark,
		TextColor:       BrandInk,
		GridLineWidth:   1,
		FontFamilies:    []string{"Frutiger", "Arial", "Helvetica", "DejaVu Sans"},
		BaseFontSize:    12,
		Margin:          48,
	}
}

// ThemeDark returns the dark variant used on dashboards and wall screens.
func ThemeDark() Theme {
	return Theme{
		Name:            "dark",
		Background:      gg.Hex("#10181B"),
		PanelBackground: gg.Hex("#162226"),
		GridColor:       gg.Hex("#2C3A40"),
		AxisColor:       BrandGrey,
		TextColor:       BrandPaper,
		GridLineWidth:   1,
		FontFamilies:    []string{"Frutiger", "Arial", "Helvetica", "DejaVu Sans"},
		BaseFontSize:    12,
		Margin:          48,
	}
}

// ThemeReport returns the print-oriented theme for board reports:
// pure white surfaces, heavier axis lines, larger base type.
func ThemeReport() Theme {
	return Theme{
		Name:            "report",
		Background:      gg.White,
		PanelBackground: gg.White,
		GridColor:       BrandGreyLight,
		AxisColor:       BrandInk,
		TextColor:       BrandInk,
		GridLineWidth:   1.5,
		FontFamilies:    []string{"Frutiger", "Times New Roman", "DejaVu Serif"},
		BaseFontSize:    14,
		Margin:          64,
	}
}

// themeFactories maps theme names to their preset constructors.
var themeFactories = map[string]func() Theme{
	"default": ThemeDefault,
	"dark":    ThemeDark,
	"report":  ThemeReport,
}

// ThemeByName looks up a preset theme.
// Returns ErrUnknownTheme if no preset has that name.
func ThemeByName(name string) (Theme, error) {
	f, ok := themeFactories[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return f(), nil
}

// ThemeNames returns the names of all preset themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themeFactories))
	for name := range themeFactories {
		names = append(names, name)
	}
	return names
}

// apply paints the theme's base surfaces onto a fresh drawing context.
// Called by Plot.Render before any user step runs.
func (t Theme) apply(dc *gg.Context) {
	dc.ClearWithColor(t.Background)
	if t.PanelBackground != t.Background && t.Margin > 0 {
		w := float64(dc.Width())
		h := float64(dc.Height())
		if w > 2*t.Margin && h > 2*t.Margin {
			dc.SetColor(t.PanelBackground.Color())
			dc.DrawRectangle(t.Margin, t.Margin, w-2*t.Margin, h-2*t.Margin)
			_ = dc.Fill()
		}
	}
}
