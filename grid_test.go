package ggbrand

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestArrange_Layout(t *testing.T) {
	tests := []struct {
		name         string
		cols         int
		sizes        [][2]int
		wantW, wantH int
	}{
		{"2x1", 2, [][2]int{{100, 80}, {100, 80}}, 200, 80},
		{"2x2 uneven count", 2, [][2]int{{100, 80}, {100, 80}, {100, 80}}, 200, 160},
		{"single column", 1, [][2]int{{100, 80}, {100, 80}}, 100, 160},
		{"mixed sizes use max cell", 2, [][2]int{{100, 80}, {150, 60}}, 300, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plots := make([]*Plot, len(tt.sizes))
			for i, s := range tt.sizes {
				plots[i] = NewPlot(WithSize(s[0], s[1]))
			}

			composite, err := Arrange(tt.cols, plots...)
			if err != nil {
				t.Fatalf("Arrange() error = %v", err)
			}
			w, h := composite.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("composite = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}

			if _, err := composite.Render(); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
		})
	}
}

func TestArrange_Validation(t *testing.T) {
	if _, err := Arrange(0, NewPlot()); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("cols=0 error = %v, want ErrInvalidGrid", err)
	}
	if _, err := Arrange(2); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("no plots error = %v, want ErrInvalidGrid", err)
	}
	if _, err := Arrange(2, NewPlot(), nil); !errors.Is(err, ErrInvalidPlotInput) {
		t.Errorf("nil plot error = %v, want ErrInvalidPlotInput", err)
	}
}

func TestArrange_SubPlotErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	bad := NewPlot(WithSize(50, 50)).With(func(dc *gg.Context) error { return boom })

	composite, err := Arrange(1, bad)
	if err != nil {
		t.Fatalf("Arrange() error = %v", err)
	}
	if _, err := composite.Render(); !errors.Is(err, boom) {
		t.Errorf("Render() error = %v, want wrapped boom", err)
	}
}

func TestArrange_IndependentOfCallerSlice(t *testing.T) {
	boom := errors.New("boom")
	plots := []*Plot{
		NewPlot(WithSize(50, 50)),
		NewPlot(WithSize(50, 50)),
	}

	composite, err := Arrange(2, plots...)
	if err != nil {
		t.Fatal(err)
	}

	// Swapping a sub-plot in the caller's slice after composition must
	// not reach the composite's render.
	plots[1] = NewPlot(WithSize(50, 50)).With(func(dc *gg.Context) error { return boom })
	if _, err := composite.Render(); err != nil {
		t.Errorf("Render() error = %v, composite aliases the caller slice", err)
	}
}

func TestArrange_UsesFirstTheme(t *testing.T) {
	a := NewPlot(WithTheme(ThemeDark()), WithSize(50, 50))
	b := NewPlot(WithSize(50, 50))

	composite, err := Arrange(2, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if composite.Theme().Name != "dark" {
		t.Errorf("composite theme = %q, want dark", composite.Theme().Name)
	}
}
