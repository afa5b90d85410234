// Package assets resolves bundled brand assets and validates
// caller-supplied asset paths before any file content is trusted.
package assets

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Variant selects a logo form.
type Variant string

const (
	// VariantMark is the compact symbol-only logo.
	VariantMark Variant = "mark"

	// VariantFull is the full wordmark logo.
	VariantFull Variant = "full"
)

// Resolution selects a logo raster size.
type Resolution string

const (
	ResolutionFull  Resolution = "full"
	ResolutionWeb   Resolution = "web"
	ResolutionSmall Resolution = "small"
)

// Defaults used when the caller requests nothing specific.
const (
	DefaultVariant    = VariantMark
	DefaultResolution = ResolutionFull
)

// Asset is a resolved logo asset. Either an on-disk override (Path set)
// or an embedded payload (Path empty, Data available). Immutable once
// resolved; a fresh Asset is produced per call.
type Asset struct {
	Variant    Variant
	Resolution Resolution

	// Path is the on-disk location for override assets. Empty for
	// embedded assets, which have no filesystem identity.
	Path string

	data []byte
}

// Embedded reports whether the asset came from the bundled files.
func (a Asset) Embedded() bool { return a.Path == "" }

// Data returns the embedded payload. Nil for on-disk assets.
func (a Asset) Data() []byte { return a.data }

// Resolver turns a logical logo request into a concrete asset.
// An optional on-disk directory takes precedence over the embedded
// bundle, with fallback when the override file is absent.
type Resolver struct {
	dir string // resolved override directory, empty when unset
}

// NewResolver creates a Resolver. dir may be empty (embedded assets
// only). A non-empty dir must be a valid, readable directory laid out
// as <variant>/<resolution>.png; otherwise ErrInvalidAssetDir.
func NewResolver(dir string) (*Resolver, error) {
	if dir == "" {
		return &Resolver{}, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	// Resolve symlinks so containment-style comparisons stay consistent.
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidAssetDir, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidAssetDir, err)
	}

	return &Resolver{dir: abs}, nil
}

// validCombination reports whether the variant/resolution pair names a
// bundled asset.
func validCombination(v Variant, r Resolution) bool {
	switch v {
	case VariantMark, VariantFull:
	default:
		return false
	}
	switch r {
	case ResolutionFull, ResolutionWeb, ResolutionSmall:
	default:
		return false
	}
	return true
}

// Resolve returns the asset for the requested variant and resolution.
// Zero values select the defaults. The override directory wins when it
// holds a matching file; otherwise the embedded bundle serves the
// request. Returns ErrAssetNotFound for unknown combinations.
func (r *Resolver) Resolve(v Variant, res Resolution) (Asset, error) {
	if v == "" {
		v = DefaultVariant
	}
	if res == "" {
		res = DefaultResolution
	}
	if !validCombination(v, res) {
		return Asset{}, fmt.Errorf("%w: variant %q resolution %q", ErrAssetNotFound, v, res)
	}

	if r.dir != "" {
		p := filepath.Join(r.dir, string(v), string(res)+".png")
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return Asset{Variant: v, Resolution: res, Path: p}, nil
		}
	}

	name := path.Join("logos", string(v), string(res)+".png")
	data, err := logosFS.ReadFile(name)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return Asset{Variant: v, Resolution: res, data: data}, nil
}
