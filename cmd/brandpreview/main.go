// Command brandpreview renders a sample branded chart so designers can
// check theme, palette, and logo settings before wiring them into
// reporting pipelines.
//
// Usage:
//
//	brandpreview --theme dark --palette vivid --preset slide --out preview.png
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"github.com/meridianhealth/ggbrand"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "brandpreview:", err)
		os.Exit(1)
	}
}

func run() error {
	themeName := pflag.String("theme", "default", "theme preset: "+join(ggbrand.ThemeNames()))
	paletteName := pflag.String("palette", "brand", "palette: "+join(ggbrand.PaletteNames()))
	presetName := pflag.String("preset", "web", "save preset: "+join(ggbrand.PresetNames()))
	logoVariant := pflag.String("logo-variant", "mark", "logo variant: mark or full")
	logoPath := pflag.String("logo", "", "override logo file (validated before use)")
	alpha := pflag.Float64("alpha", 1.0, "logo opacity in [0,1]")
	configPath := pflag.String("config", "", "optional brand config YAML")
	out := pflag.String("out", "preview.png", "output file (.png, .jpg)")
	verbose := pflag.BoolP("verbose", "v", false, "log pipeline diagnostics")
	pflag.Parse()

	if *verbose {
		ggbrand.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	theme, err := ggbrand.ThemeByName(*themeName)
	if err != nil {
		return err
	}
	palette, err := ggbrand.PaletteByName(*paletteName)
	if err != nil {
		return err
	}
	preset, err := ggbrand.PresetByName(*presetName)
	if err != nil {
		return err
	}

	var logoOpts []ggbrand.LogoOption
	if *configPath != "" {
		cfg, err := ggbrand.LoadBrandConfig(*configPath)
		if err != nil {
			return err
		}
		if theme, err = cfg.BuildTheme(); err != nil {
			return err
		}
		logoOpts = cfg.LogoOptions()
	}
	logoOpts = append(logoOpts,
		ggbrand.WithLogoVariant(ggbrand.LogoVariant(*logoVariant)),
		ggbrand.WithAlpha(*alpha),
	)
	if *logoPath != "" {
		logoOpts = append(logoOpts, ggbrand.WithLogoPath(*logoPath))
	}

	p := ggbrand.NewPlot(ggbrand.WithTheme(theme)).With(demoChart(theme, palette))

	p, err = ggbrand.OverlayLogo(p, logoOpts...)
	if err != nil {
		return err
	}

	if err := ggbrand.SavePlot(p, *out, preset); err != nil {
		return err
	}
	fmt.Println("wrote", *out)
	return nil
}

// demoChart draws a small bar chart from fixed sample data, styled by
// the theme and colored by the palette.
func demoChart(theme ggbrand.Theme, palette ggbrand.Palette) ggbrand.RenderStep {
	values := []float64{0.55, 0.8, 0.35, 0.95, 0.6, 0.72}

	return func(dc *gg.Context) error {
		w := float64(dc.Width())
		h := float64(dc.Height())
		m := theme.Margin
		plotW := w - 2*m
		plotH := h - 2*m

		// Horizontal grid lines.
		dc.SetColor(theme.GridColor.Color())
		dc.SetLineWidth(theme.GridLineWidth)
		for i := 1; i <= 4; i++ {
			y := m + plotH*float64(i)/5
			dc.DrawLine(m, y, m+plotW, y)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}

		// Bars.
		n := len(values)
		slot := plotW / float64(n)
		barW := slot * 0.7
		for i, v := range values {
			x := m + slot*float64(i) + (slot-barW)/2
			barH := plotH * v
			dc.SetColor(palette.ColorAt(i).Color())
			dc.DrawRectangle(x, m+plotH-barH, barW, barH)
			if err := dc.Fill(); err != nil {
				return err
			}
		}

		// Axis lines.
		dc.SetColor(theme.AxisColor.Color())
		dc.SetLineWidth(theme.GridLineWidth + 0.5)
		dc.DrawLine(m, m+plotH, m+plotW, m+plotH)
		if err := dc.Stroke(); err != nil {
			return err
		}
		dc.DrawLine(m, m, m, m+plotH)
		return dc.Stroke()
	}
}

func join(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
