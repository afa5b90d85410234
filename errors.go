package ggbrand

import "errors"

// Sentinel errors for branding operations.
var (
	// ErrInvalidPlotInput indicates the input is not a usable plot value.
	ErrInvalidPlotInput = errors.New("invalid plot input")

	// ErrInvalidAlpha indicates an opacity value outside [0, 1].
	ErrInvalidAlpha = errors.New("alpha outside [0, 1]")

	// Logo pipeline errors.
	ErrAssetNotFound       = errors.New("logo asset not found")
	ErrPathSecurity        = errors.New("logo path failed security validation")
	ErrUnsupportedFileType = errors.New("unsupported logo file type")
	ErrImageDecode         = errors.New("logo image decode failed")
	ErrMissingCapability   = errors.New("image decoder not available")

	// Palette and theme lookup errors.
	ErrUnknownPalette = errors.New("unknown palette")
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrUnknownPreset  = errors.New("unknown save preset")

	// Output errors.
	ErrUnsupportedOutput = errors.New("unsupported output format")

	// Composition errors.
	ErrInvalidGrid = errors.New("invalid grid arrangement")

	// Brand config errors.
	ErrConfigNotFound = errors.New("brand config file not found")
	ErrConfigParse    = errors.New("failed to parse brand config")
)
