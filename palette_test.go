package ggbrand

import (
	"errors"
	"testing"
)

func TestPaletteByName(t *testing.T) {
	tests := []struct {
		name    string
		palette string
		wantErr bool
	}{
		{"brand", "brand", false},
		{"muted", "muted", false},
		{"vivid", "vivid", false},
		{"blues", "blues", false},
		{"teals", "teals", false},
		{"redblue", "redblue", false},
		{"unknown", "neon", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PaletteByName(tt.palette)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPalette) {
					t.Errorf("error = %v, want ErrUnknownPalette", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PaletteByName(%q) error = %v", tt.palette, err)
			}
			if p.Name != tt.palette {
				t.Errorf("Name = %q, want %q", p.Name, tt.palette)
			}
			if p.Len() == 0 {
				t.Error("palette has no colors")
			}
		})
	}
}

func TestPalette_ColorsQualitative(t *testing.T) {
	p := PaletteBrand

	got := p.Colors(3)
	if len(got) != 3 {
		t.Fatalf("Colors(3) len = %d", len(got))
	}
	for i := range got {
		if got[i] != p.ColorAt(i) {
			t.Errorf("Colors(3)[%d] != ColorAt(%d)", i, i)
		}
	}

	// Recycling past the palette size.
	n := p.Len() + 2
	extended := p.Colors(n)
	if len(extended) != n {
		t.Fatalf("Colors(%d) len = %d", n, len(extended))
	}
	if extended[p.Len()] != extended[0] {
		t.Error("qualitative palette did not recycle from the start")
	}
}

func TestPalette_ColorsRamp(t *testing.T) {
	for _, p := range []Palette{PaletteBlues, PaletteTeals, PaletteRedBlue} {
		t.Run(p.Name, func(t *testing.T) {
			got := p.Colors(9)
			if len(got) != 9 {
				t.Fatalf("Colors(9) len = %d", len(got))
			}
			if got[0] != p.ColorAt(0) {
				t.Error("ramp does not start at the first stop")
			}
			if got[8] != p.ColorAt(p.Len()-1) {
				t.Error("ramp does not end at the last stop")
			}
		})
	}
}

func TestPalette_ColorsEdgeCases(t *testing.T) {
	if got := PaletteBrand.Colors(0); got != nil {
		t.Errorf("Colors(0) = %v, want nil", got)
	}
	if got := PaletteBrand.Colors(-3); got != nil {
		t.Errorf("Colors(-3) = %v, want nil", got)
	}
	if got := PaletteBlues.Colors(1); len(got) != 1 {
		t.Errorf("Colors(1) len = %d, want 1", len(got))
	}
}

func TestLerpRGBA(t *testing.T) {
	a := BrandTeal
	b := BrandNavy
	if got := lerpRGBA(a, b, 0); got != a {
		t.Errorf("lerp(0) = %v, want %v", got, a)
	}
	if got := lerpRGBA(a, b, 1); got != b {
		t.Errorf("lerp(1) = %v, want %v", got, b)
	}
	mid := lerpRGBA(a, b, 0.5)
	if mid.R < min(a.R, b.R) || mid.R > max(a.R, b.R) {
		t.Errorf("lerp(0.5).R = %v outside endpoints", mid.R)
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if len(names) != len(palettes) {
		t.Fatalf("PaletteNames len = %d, want %d", len(names), len(palettes))
	}
	for _, name := range names {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("listed palette %q not resolvable: %v", name, err)
		}
	}
}
