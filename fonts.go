package ggbrand

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
)

// FontInfo describes the outcome of brand font detection.
type FontInfo struct {
	// Family is the matched font family, or the last preference when
	// nothing was found.
	Family string

	// Path is the font file location. Empty when Available is false.
	Path string

	// Available reports whether a brand font was found on the host.
	Available bool
}

// FontDetector probes the host for a usable brand font.
type FontDetector func() (FontInfo, error)

// FontCache memoizes a single font-detection result. Detection walks
// font directories and parses candidate files, so it is worth doing
// once per process; the cache is an explicit injectable object rather
// than hidden global state so tests can construct isolated instances.
//
// FontCache is safe for concurrent use. Clear and repopulate are
// idempotent: a cleared cache simply detects again on next Get.
type FontCache struct {
	mu     sync.Mutex
	detect FontDetector
	cached *FontInfo
}

// NewFontCache creates a FontCache around a detector.
// A nil detector selects the default brand font detection.
func NewFontCache(detect FontDetector) *FontCache {
	if detect == nil {
		detect = DetectBrandFont
	}
	return &FontCache{detect: detect}
}

// Get returns the memoized detection result, running detection on the
// first call (or the first call after Clear). Detection errors are not
// cached; the next Get retries.
func (c *FontCache) Get() (FontInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return *c.cached, nil
	}
	info, err := c.detect()
	if err != nil {
		return FontInfo{}, err
	}
	c.cached = &info
	return info, nil
}

// Clear drops the memoized result.
func (c *FontCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

// Refresh forces a new detection, replacing any memoized result.
func (c *FontCache) Refresh() (FontInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := c.detect()
	if err != nil {
		return FontInfo{}, err
	}
	c.cached = &info
	return info, nil
}

// defaultFontCache is the process-wide slot behind BrandFont.
var defaultFontCache = NewFontCache(nil)

// BrandFont returns the host's best available brand font, detected once
// per process. Use ClearFontCache to force re-detection.
func BrandFont() (FontInfo, error) {
	return defaultFontCache.Get()
}

// ClearFontCache drops the process-wide font detection result.
func ClearFontCache() {
	defaultFontCache.Clear()
}

// fontDirs lists conventional font locations per platform. Missing
// directories are skipped silently.
func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
		`C:\Windows\Fonts`,
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return dirs
}

// DetectBrandFont searches the host's font directories for the first
// family in the default theme's preference list, verifying candidates
// by actually parsing them. Falls back to an unavailable FontInfo
// naming the last preference when nothing matches; that is not an
// error, just an answer.
func DetectBrandFont() (FontInfo, error) {
	families := ThemeDefault().FontFamilies
	for _, family := range families {
		if path, ok := findFontFile(family); ok {
			Logger().Debug("brand font detected", "family", family, "path", path)
			return FontInfo{Family: family, Path: path, Available: true}, nil
		}
	}
	fallback := families[len(families)-1]
	Logger().Warn("no brand font found, using fallback", "family", fallback)
	return FontInfo{Family: fallback, Available: false}, nil
}

// findFontFile walks the font directories looking for a parseable
// TTF/OTF whose filename matches the family.
func findFontFile(family string) (string, bool) {
	needle := strings.ToLower(strings.ReplaceAll(family, " ", ""))

	for _, dir := range fontDirs() {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || found != "" || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			base := strings.ToLower(strings.ReplaceAll(d.Name(), " ", ""))
			if !strings.Contains(base, needle) {
				return nil
			}
			if parseableFont(path) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

// parseableFont reports whether the file is a loadable font.
func parseableFont(path string) bool {
	data, err := os.ReadFile(path) // #nosec G304 -- walked from fixed font dirs
	if err != nil {
		return false
	}
	_, err = font.ParseTTF(bytes.NewReader(data))
	return err == nil
}
