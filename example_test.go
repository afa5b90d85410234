package ggbrand_test

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/meridianhealth/ggbrand"
)

// ExampleOverlayLogo builds a themed plot, stamps the default mark logo
// in the bottom-left corner, and renders it.
func ExampleOverlayLogo() {
	p := ggbrand.NewPlot(
		ggbrand.WithSize(600, 400),
		ggbrand.WithTheme(ggbrand.ThemeDefault()),
	)
	p = p.With(func(dc *gg.Context) error {
		dc.SetColor(ggbrand.BrandTeal.Color())
		dc.DrawCircle(300, 200, 80)
		return dc.Fill()
	})

	p, err := ggbrand.OverlayLogo(p, ggbrand.WithAlpha(0.9))
	if err != nil {
		fmt.Println("overlay failed:", err)
		return
	}

	if _, err := p.Render(); err != nil {
		fmt.Println("render failed:", err)
		return
	}
	fmt.Println("steps:", p.StepCount())
	// Output: steps: 2
}

// ExamplePalette_Colors draws series colors from a curated palette.
func ExamplePalette_Colors() {
	palette, err := ggbrand.PaletteByName("brand")
	if err != nil {
		fmt.Println(err)
		return
	}
	colors := palette.Colors(3)
	fmt.Println("series colors:", len(colors))
	// Output: series colors: 3
}
