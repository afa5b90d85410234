package ggbrand

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/meridianhealth/ggbrand/internal/imaging"
)

// Arrange composes plots into a grid with the given column count,
// returning a new plot whose canvas holds every sub-plot in reading
// order. Cell size is the largest sub-plot size; smaller sub-plots are
// scaled up to fill their cell. The first plot's theme paints the
// composite background.
//
// The input plots are not modified; each is rendered independently when
// the composite renders.
func Arrange(cols int, plots ...*Plot) (*Plot, error) {
	if cols < 1 {
		return nil, fmt.Errorf("%w: cols %d", ErrInvalidGrid, cols)
	}
	if len(plots) == 0 {
		return nil, fmt.Errorf("%w: no plots", ErrInvalidGrid)
	}
	for i, p := range plots {
		if p == nil {
			return nil, fmt.Errorf("%w: nil plot at index %d", ErrInvalidPlotInput, i)
		}
	}

	cellW, cellH := 0, 0
	for _, p := range plots {
		w, h := p.Size()
		if w > cellW {
			cellW = w
		}
		if h > cellH {
			cellH = h
		}
	}

	rows := (len(plots) + cols - 1) / cols
	// Copy before capture: the variadic slice may alias a caller slice
	// that changes after Arrange returns.
	subs := append([]*Plot(nil), plots...)

	composite := NewPlot(
		WithSize(cols*cellW, rows*cellH),
		WithTheme(plots[0].Theme()),
	)
	step := func(dc *gg.Context) error {
		for i, sub := range subs {
			sdc, err := sub.Render()
			if err != nil {
				return fmt.Errorf("sub-plot %d: %w", i, err)
			}
			img := imaging.Scale(sdc.Image(), cellW, cellH)
			buf := gg.ImageBufFromImage(img)
			x := float64((i % cols) * cellW)
			y := float64((i / cols) * cellH)
			dc.DrawImage(buf, x, y)
		}
		return nil
	}
	return composite.With(step), nil
}
