package ggbrand

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Meridian Health brand colors.
var (
	// Primary colors.
	BrandTeal = gg.Hex("#006A71") // primary identity color
	BrandNavy = gg.Hex("#003057") // headings, emphasis

	// Secondary colors.
	BrandSky   = gg.Hex("#41B6E6")
	BrandGreen = gg.Hex("#00A499")
	BrandAmber = gg.Hex("#FFB81C")
	BrandRed   = gg.Hex("#DA291C") // reserved for alerts in clinical charts
	BrandPlum  = gg.Hex("#702F8A")

	// Neutrals.
	BrandInk       = gg.Hex("#1D1D1B")
	BrandGreyDark  = gg.Hex("#4A5459")
	BrandGrey      = gg.Hex("#919EA4")
	BrandGreyLight = gg.Hex("#D9DEE1")
	BrandPaper     = gg.Hex("#FAFBFB")
)

// PaletteKind classifies how a palette's colors relate to each other.
type PaletteKind int

const (
	// Qualitative palettes hold unordered categorical colors.
	// Requesting more colors than the palette holds recycles from the start.
	Qualitative PaletteKind = iota

	// Sequential palettes order colors from light to dark.
	// Requesting n colors interpolates evenly along the ramp.
	Sequential

	// Diverging palettes run dark-light-dark through a neutral midpoint.
	Diverging
)

// Palette is a named, ordered set of brand colors.
type Palette struct {
	Name   string
	Kind   PaletteKind
	colors []gg.RGBA
}

// Len returns the number of base colors in the palette.
func (p Palette) Len() int { return len(p.colors) }

// ColorAt returns the i-th palette color.
// Qualitative palettes recycle; ramp palettes clamp to their endpoints.
func (p Palette) ColorAt(i int) gg.RGBA {
	if len(p.colors) == 0 {
		return BrandInk
	}
	if p.Kind == Qualitative {
		return p.colors[((i%len(p.colors))+len(p.colors))%len(p.colors)]
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.colors) {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}

// Colors returns n colors drawn from the palette.
//
// Qualitative palettes return their colors in order, recycling when n
// exceeds the palette size. Sequential and diverging palettes
// interpolate n evenly spaced stops along the color ramp, so the first
// and last returned colors are always the ramp endpoints.
func (p Palette) Colors(n int) []gg.RGBA {
	if n <= 0 || len(p.colors) == 0 {
		return nil
	}
	out := make([]gg.RGBA, n)
	if p.Kind == Qualitative {
		for i := range out {
			out[i] = p.colors[i%len(p.colors)]
		}
		return out
	}
	if n == 1 {
		out[0] = p.colors[0]
		return out
	}
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = p.rampAt(t)
	}
	return out
}

// rampAt samples the ramp at t in [0, 1] with linear interpolation
// between adjacent stops.
func (p Palette) rampAt(t float64) gg.RGBA {
	if t <= 0 {
		return p.colors[0]
	}
	if t >= 1 {
		return p.colors[len(p.colors)-1]
	}
	pos := t * float64(len(p.colors)-1)
	i := int(pos)
	frac := pos - float64(i)
	return lerpRGBA(p.colors[i], p.colors[i+1], frac)
}

// lerpRGBA linearly interpolates between two colors.
func lerpRGBA(a, b gg.RGBA, t float64) gg.RGBA {
	return gg.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Curated brand palettes.
var (
	// PaletteBrand is the default qualitative palette for categorical series.
	PaletteBrand = Palette{
		Name: "brand",
		Kind: Qualitative,
		colors: []gg.RGBA{
			BrandTeal, BrandSky, BrandAmber, BrandPlum, BrandGreen, BrandNavy,
		},
	}

	// PaletteMuted is a lower-contrast qualitative palette for dense charts.
	PaletteMuted = Palette{
		Name: "muted",
		Kind: Qualitative,
		colors: []gg.RGBA{
			gg.Hex("#5B8F95"), gg.Hex("#8CC5DE"), gg.Hex("#E0C98A"),
			gg.Hex("#A589B5"), gg.Hex("#7FBFB7"), gg.Hex("#6B8099"),
		},
	}

	// PaletteVivid is a high-contrast qualitative palette for slides.
	PaletteVivid = Palette{
		Name: "vivid",
		Kind: Qualitative,
		colors: []gg.RGBA{
			gg.Hex("#00838C"), gg.Hex("#1FA7FF"), gg.Hex("#FFB81C"),
			gg.Hex("#8A2BE2"), gg.Hex("#00C2A8"), gg.Hex("#DA291C"),
		},
	}

	// PaletteBlues is a sequential light-to-dark blue ramp.
	PaletteBlues = Palette{
		Name: "blues",
		Kind: Sequential,
		colors: []gg.RGBA{
			gg.Hex("#E8F4F8"), gg.Hex("#A9D6E5"), gg.Hex("#61A5C2"),
			gg.Hex("#2C7DA0"), gg.Hex("#014F86"), gg.Hex("#003057"),
		},
	}

	// PaletteTeals is a sequential ramp in the primary brand hue.
	PaletteTeals = Palette{
		Name: "teals",
		Kind: Sequential,
		colors: []gg.RGBA{
			gg.Hex("#E6F2F3"), gg.Hex("#B3D9DB"), gg.Hex("#66B0B5"),
			gg.Hex("#26878E"), gg.Hex("#006A71"), gg.Hex("#00454A"),
		},
	}

	// PaletteRedBlue is a diverging ramp for above/below-target metrics.
	PaletteRedBlue = Palette{
		Name: "redblue",
		Kind: Diverging,
		colors: []gg.RGBA{
			gg.Hex("#DA291C"), gg.Hex("#F0937C"), gg.Hex("#F5E9E3"),
			gg.Hex("#A9D6E5"), gg.Hex("#2C7DA0"), gg.Hex("#003057"),
		},
	}
)

// palettes indexes the curated palettes by name.
var palettes = map[string]Palette{
	PaletteBrand.Name:   PaletteBrand,
	PaletteMuted.Name:   PaletteMuted,
	PaletteVivid.Name:   PaletteVivid,
	PaletteBlues.Name:   PaletteBlues,
	PaletteTeals.Name:   PaletteTeals,
	PaletteRedBlue.Name: PaletteRedBlue,
}

// PaletteByName looks up a curated palette.
// Returns ErrUnknownPalette if no palette has that name.
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// PaletteNames returns the names of all curated palettes.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	return names
}
