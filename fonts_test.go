package ggbrand

import (
	"errors"
	"sync"
	"testing"
)

func TestFontCache_Memoizes(t *testing.T) {
	calls := 0
	cache := NewFontCache(func() (FontInfo, error) {
		calls++
		return FontInfo{Family: "Frutiger", Path: "/fonts/frutiger.ttf", Available: true}, nil
	})

	for i := 0; i < 3; i++ {
		info, err := cache.Get()
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if info.Family != "Frutiger" || !info.Available {
			t.Errorf("Get() = %+v", info)
		}
	}
	if calls != 1 {
		t.Errorf("detector ran %d times, want 1", calls)
	}
}

func TestFontCache_ClearRepopulates(t *testing.T) {
	calls := 0
	cache := NewFontCache(func() (FontInfo, error) {
		calls++
		return FontInfo{Family: "Arial", Available: true}, nil
	})

	if _, err := cache.Get(); err != nil {
		t.Fatal(err)
	}
	cache.Clear()
	cache.Clear() // clearing twice is idempotent
	if _, err := cache.Get(); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("detector ran %d times, want 2", calls)
	}
}

func TestFontCache_Refresh(t *testing.T) {
	family := "Arial"
	cache := NewFontCache(func() (FontInfo, error) {
		return FontInfo{Family: family, Available: true}, nil
	})

	if info, _ := cache.Get(); info.Family != "Arial" {
		t.Fatalf("Get() = %+v", info)
	}

	family = "Helvetica"
	info, err := cache.Refresh()
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if info.Family != "Helvetica" {
		t.Errorf("Refresh() = %+v, want Helvetica", info)
	}
	// Refresh result is memoized.
	if info, _ := cache.Get(); info.Family != "Helvetica" {
		t.Errorf("Get() after Refresh = %+v", info)
	}
}

func TestFontCache_DetectionErrorNotCached(t *testing.T) {
	calls := 0
	fail := errors.New("probe failed")
	cache := NewFontCache(func() (FontInfo, error) {
		calls++
		if calls == 1 {
			return FontInfo{}, fail
		}
		return FontInfo{Family: "DejaVu Sans", Available: true}, nil
	})

	if _, err := cache.Get(); !errors.Is(err, fail) {
		t.Fatalf("first Get() error = %v, want probe failure", err)
	}
	info, err := cache.Get()
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}
	if info.Family != "DejaVu Sans" {
		t.Errorf("second Get() = %+v", info)
	}
}

func TestFontCache_ConcurrentAccess(t *testing.T) {
	cache := NewFontCache(func() (FontInfo, error) {
		return FontInfo{Family: "Arial", Available: true}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				cache.Clear()
			}
			_, _ = cache.Get()
		}(i)
	}
	wg.Wait()
}

func TestDetectBrandFont_NeverErrors(t *testing.T) {
	// Whatever the host has installed, detection answers rather than
	// failing: either an available font or the documented fallback.
	info, err := DetectBrandFont()
	if err != nil {
		t.Fatalf("DetectBrandFont() error = %v", err)
	}
	if info.Family == "" {
		t.Error("empty family in detection result")
	}
	if info.Available && info.Path == "" {
		t.Error("available font without a path")
	}
}
