package assets

import "embed"

// Bundled logo files, organized as logos/<variant>/<resolution>.png.
//
//go:embed logos
var logosFS embed.FS
