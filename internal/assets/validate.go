package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/meridianhealth/ggbrand/internal/imaging"
)

// DefaultMaxFileSize bounds how large a logo file may be. Logos are
// small rasters; anything bigger is suspect.
const DefaultMaxFileSize = 8 << 20 // 8 MiB

// Limits configures path validation.
type Limits struct {
	// Root, when non-empty, is the sandbox directory the validated path
	// must resolve under. Empty disables containment checking.
	Root string

	// MaxFileSize bounds the target's size in bytes.
	// Zero selects DefaultMaxFileSize.
	MaxFileSize int64
}

// ValidatedPath is a path that, at validation time, resolved inside the
// sandbox root, pointed at a regular file within the size bound, and
// carried a recognized image signature. Validation is repeated on every
// call; results are never cached, so the only remaining exposure is the
// usual time-of-check/time-of-use window.
type ValidatedPath struct {
	Path   string
	Size   int64
	Format imaging.Format
}

// normalize resolves a path to its canonical absolute form: Abs + Clean
// plus symlink evaluation. When the target does not exist, symlink
// resolution is skipped and the cleaned absolute path is used as-is so
// containment checks still apply to nonexistent targets.
func normalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}

// ValidatePath checks a candidate logo path and returns a ValidatedPath
// or an error from this package's taxonomy.
//
// Checks run cheapest-first: path shape before file metadata before
// file content.
//
//  1. Normalize twice in succession; disagreement means the path's
//     symlink chain changed mid-check (ErrPathUnstable).
//  2. Containment under Limits.Root, when configured (ErrPathTraversal).
//     Applies whether or not a file exists at the resolved location.
//  3. Regular-file and size checks (ErrNotRegularFile, ErrFileTooLarge).
//  4. Magic-byte sniff of the leading bytes (ErrUnknownSignature).
func ValidatePath(candidate string, limits Limits) (ValidatedPath, error) {
	if candidate == "" {
		return ValidatedPath{}, fmt.Errorf("%w: empty path", ErrNotRegularFile)
	}

	first, err := normalize(candidate)
	if err != nil {
		return ValidatedPath{}, fmt.Errorf("%w: %v", ErrPathUnstable, err)
	}
	second, err := normalize(candidate)
	if err != nil {
		return ValidatedPath{}, fmt.Errorf("%w: %v", ErrPathUnstable, err)
	}
	if first != second {
		return ValidatedPath{}, fmt.Errorf("%w: %q vs %q", ErrPathUnstable, first, second)
	}

	if limits.Root != "" {
		root, err := normalize(limits.Root)
		if err != nil {
			return ValidatedPath{}, fmt.Errorf("%w: bad root: %v", ErrPathTraversal, err)
		}
		// Separator suffix prevents /root vs /rootevil prefix matches.
		if second != root && !strings.HasPrefix(second, root+string(filepath.Separator)) {
			return ValidatedPath{}, fmt.Errorf("%w: %q outside %q", ErrPathTraversal, second, root)
		}
	}

	maxSize := limits.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(second)
	if err != nil {
		return ValidatedPath{}, fmt.Errorf("%w: %v", ErrNotRegularFile, err)
	}
	if !info.Mode().IsRegular() {
		return ValidatedPath{}, fmt.Errorf("%w: %s", ErrNotRegularFile, second)
	}
	if info.Size() > maxSize {
		return ValidatedPath{}, fmt.Errorf("%w: %d bytes > %d", ErrFileTooLarge, info.Size(), maxSize)
	}

	format, err := sniffFile(second)
	if err != nil {
		return ValidatedPath{}, err
	}

	return ValidatedPath{Path: second, Size: info.Size(), Format: format}, nil
}

// sniffFile reads the leading bytes of a file and matches them against
// the supported image signatures.
func sniffFile(path string) (imaging.Format, error) {
	f, err := os.Open(path) // #nosec G304 -- path validated above
	if err != nil {
		return imaging.FormatUnknown, fmt.Errorf("%w: %v", ErrNotRegularFile, err)
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, imaging.HeaderLen)
	n, err := io.ReadFull(f, header)
	if err != nil && n == 0 {
		return imaging.FormatUnknown, fmt.Errorf("%w: empty file", ErrUnknownSignature)
	}

	format := imaging.DetectFormat(header[:n])
	if format == imaging.FormatUnknown {
		return imaging.FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownSignature, path)
	}
	return format, nil
}

// SniffData matches in-memory asset data against the supported image
// signatures. Used for embedded assets, which have no filesystem path.
func SniffData(data []byte) (imaging.Format, error) {
	format := imaging.DetectFormat(data)
	if format == imaging.FormatUnknown {
		return imaging.FormatUnknown, fmt.Errorf("%w: embedded asset", ErrUnknownSignature)
	}
	return format, nil
}
