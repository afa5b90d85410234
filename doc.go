// Package ggbrand applies Meridian Health visual branding to charts
// rendered with the gg plotting library.
//
// # Overview
//
// ggbrand is a thin branding layer on top of github.com/gogpu/gg. It
// supplies the organization's theme presets and curated color palettes,
// a logo overlay pipeline with defensive file handling, brand font
// detection, and figure-saving presets. It never draws data itself;
// plots are built as immutable step chains and rendered through gg.
//
// # Quick Start
//
//	import "github.com/meridianhealth/ggbrand"
//
//	// Build a themed plot
//	p := ggbrand.NewPlot(
//	    ggbrand.WithSize(800, 600),
//	    ggbrand.WithTheme(ggbrand.ThemeDefault()),
//	)
//	p = p.With(func(dc *gg.Context) error {
//	    // ... chart drawing ...
//	    return nil
//	})
//
//	// Stamp the default mark logo in the bottom-left corner
//	p, err := ggbrand.OverlayLogo(p)
//
//	// Save with a dimension preset
//	err = ggbrand.SavePlot(p, "report.png", ggbrand.PresetReport)
//
// # Logo Overlay
//
// OverlayLogo resolves a bundled logo asset (or a caller-supplied path),
// validates the path against traversal and symlink attacks, verifies the
// file's magic bytes, decodes it, and appends a compositing step to the
// plot. A failure at any stage aborts the overlay and leaves the input
// plot untouched.
//
// # Coordinate System
//
// Logo placement uses normalized parent coordinates (0-1) with the
// origin at the bottom-left of the rendered panel, independent of
// absolute pixel size. The compositor converts to gg's top-left pixel
// space at render time.
package ggbrand

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
