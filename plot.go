package ggbrand

import (
	"fmt"

	"github.com/gogpu/gg"
)

// RenderStep draws one layer of a plot onto a gg drawing context.
// Steps run in the order they were appended.
type RenderStep func(dc *gg.Context) error

// Plot is an immutable chain of render steps over the host plotting
// library. Every builder method returns a new Plot; the receiver is
// never modified, so a Plot value can be shared and branched freely.
type Plot struct {
	width  int
	height int
	theme  Theme
	steps  []RenderStep
}

// PlotOption configures a Plot during creation.
type PlotOption func(*Plot)

// WithSize sets the default render dimensions in pixels.
func WithSize(width, height int) PlotOption {
	return func(p *Plot) {
		p.width = width
		p.height = height
	}
}

// WithTheme sets the plot's theme.
func WithTheme(t Theme) PlotOption {
	return func(p *Plot) {
		p.theme = t
	}
}

// NewPlot creates an empty plot with the default theme and an
// 800x600 canvas unless options say otherwise.
func NewPlot(opts ...PlotOption) *Plot {
	p := &Plot{
		width:  800,
		height: 600,
		theme:  ThemeDefault(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// clone returns a copy of the plot with an independent step slice.
func (p *Plot) clone() *Plot {
	steps := make([]RenderStep, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return &Plot{
		width:  p.width,
		height: p.height,
		theme:  p.theme,
		steps:  steps,
	}
}

// With returns a new plot with one more render step appended.
// The receiver is unchanged. Nil steps are ignored.
func (p *Plot) With(step RenderStep) *Plot {
	out := p.clone()
	if step != nil {
		out.steps = append(out.steps, step)
	}
	return out
}

// WithAll returns a new plot with the given steps appended in order.
func (p *Plot) WithAll(steps ...RenderStep) *Plot {
	out := p.clone()
	for _, step := range steps {
		if step != nil {
			out.steps = append(out.steps, step)
		}
	}
	return out
}

// Resized returns a copy of the plot with different render dimensions.
func (p *Plot) Resized(width, height int) *Plot {
	out := p.clone()
	out.width = width
	out.height = height
	return out
}

// Themed returns a copy of the plot with a different theme.
func (p *Plot) Themed(t Theme) *Plot {
	out := p.clone()
	out.theme = t
	return out
}

// Size returns the plot's render dimensions in pixels.
func (p *Plot) Size() (width, height int) { return p.width, p.height }

// Theme returns the plot's theme.
func (p *Plot) Theme() Theme { return p.theme }

// StepCount returns the number of render steps in the chain.
func (p *Plot) StepCount() int { return len(p.steps) }

// Render draws the plot: theme surfaces first, then every step in
// order. A step error aborts rendering.
func (p *Plot) Render() (*gg.Context, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plot", ErrInvalidPlotInput)
	}
	if p.width <= 0 || p.height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidPlotInput, p.width, p.height)
	}

	dc := gg.NewContext(p.width, p.height)
	p.theme.apply(dc)

	for i, step := range p.steps {
		if err := step(dc); err != nil {
			return nil, fmt.Errorf("render step %d: %w", i, err)
		}
	}
	return dc, nil
}
