package ggbrand

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gg"

	"github.com/meridianhealth/ggbrand/internal/assets"
	"github.com/meridianhealth/ggbrand/internal/imaging"
)

// LogoVariant selects which form of the logo to overlay.
type LogoVariant string

const (
	// LogoMark is the compact symbol-only logo (default).
	LogoMark LogoVariant = "mark"

	// LogoFull is the full wordmark logo.
	LogoFull LogoVariant = "full"
)

// LogoResolution selects which raster size of the bundled logo to use.
type LogoResolution string

const (
	LogoResFull  LogoResolution = "full"
	LogoResWeb   LogoResolution = "web"
	LogoResSmall LogoResolution = "small"
)

// logoConfig carries per-call overlay settings.
type logoConfig struct {
	path        string
	variant     LogoVariant
	resolution  LogoResolution
	alpha       float64
	assetDir    string
	sandboxRoot string
	maxFileSize int64
	loader      *imaging.Loader
}

// LogoOption configures an OverlayLogo call.
type LogoOption func(*logoConfig)

// WithLogoPath overlays a caller-supplied image file instead of a
// bundled asset. The path goes through full security validation.
func WithLogoPath(path string) LogoOption {
	return func(c *logoConfig) { c.path = path }
}

// WithLogoVariant selects the bundled logo variant.
func WithLogoVariant(v LogoVariant) LogoOption {
	return func(c *logoConfig) { c.variant = v }
}

// WithLogoResolution selects the bundled logo resolution.
func WithLogoResolution(r LogoResolution) LogoOption {
	return func(c *logoConfig) { c.resolution = r }
}

// WithAlpha sets the overlay opacity in [0, 1]. Default 1.0.
func WithAlpha(alpha float64) LogoOption {
	return func(c *logoConfig) { c.alpha = alpha }
}

// WithAssetDir points the resolver at an on-disk asset directory that
// overrides the embedded bundle, with fallback to embedded assets.
func WithAssetDir(dir string) LogoOption {
	return func(c *logoConfig) { c.assetDir = dir }
}

// WithSandboxRoot restricts caller-supplied logo paths to a directory.
// Paths resolving outside the root fail with ErrPathSecurity.
func WithSandboxRoot(root string) LogoOption {
	return func(c *logoConfig) { c.sandboxRoot = root }
}

// WithMaxFileSize overrides the logo file size bound in bytes.
func WithMaxFileSize(n int64) LogoOption {
	return func(c *logoConfig) { c.maxFileSize = n }
}

// withLoader swaps the decoder registry. Test hook.
func withLoader(l *imaging.Loader) LogoOption {
	return func(c *logoConfig) { c.loader = l }
}

// defaultLoader is the process-wide decoder registry.
var defaultLoader = imaging.NewLoader()

// OverlayLogo returns a copy of the plot with the brand logo layered on
// top. The input plot is never modified; on any failure it is returned
// to the caller exactly as it was.
//
// The pipeline runs at call time, not render time: resolve the asset,
// validate the path, sniff and decode the image, compute placement, and
// append one compositing step. Each stage fails terminally; there is no
// retry or partial recovery.
//
// The logo sits flush left, one logo-height above the bottom edge, with
// height fixed at 1/15 of the plot height and width preserving the
// image's aspect ratio. The overlay covers the full plot area and is
// never clipped by earlier drawing state.
func OverlayLogo(p *Plot, opts ...LogoOption) (*Plot, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plot", ErrInvalidPlotInput)
	}

	cfg := logoConfig{
		variant:    LogoMark,
		resolution: LogoResFull,
		alpha:      1.0,
		loader:     defaultLoader,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.alpha < 0 || cfg.alpha > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidAlpha, cfg.alpha)
	}

	data, format, err := loadLogoBytes(cfg)
	if err != nil {
		return nil, err
	}

	img, err := cfg.loader.Decode(format, bytes.NewReader(data))
	if err != nil {
		return nil, translateImagingErr(err)
	}

	buf := gg.ImageBufFromImage(img)
	w, h := buf.Bounds()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrImageDecode, w, h)
	}

	box := PlaceLogo(w, h)
	Logger().Debug("logo overlay prepared",
		"format", format.String(),
		"pixels", fmt.Sprintf("%dx%d", w, h),
		"alpha", cfg.alpha)

	return p.With(logoStep(buf, box, cfg.alpha)), nil
}

// loadLogoBytes produces the raw logo bytes and their sniffed format,
// from either a validated caller path or a resolved bundled asset.
func loadLogoBytes(cfg logoConfig) ([]byte, imaging.Format, error) {
	if cfg.path != "" {
		vp, err := assets.ValidatePath(cfg.path, assets.Limits{
			Root:        cfg.sandboxRoot,
			MaxFileSize: cfg.maxFileSize,
		})
		if err != nil {
			return nil, imaging.FormatUnknown, translateAssetErr(err)
		}
		data, err := os.ReadFile(vp.Path) // #nosec G304 -- path validated above
		if err != nil {
			return nil, imaging.FormatUnknown, fmt.Errorf("%w: %v", ErrPathSecurity, err)
		}
		return data, vp.Format, nil
	}

	resolver, err := assets.NewResolver(cfg.assetDir)
	if err != nil {
		return nil, imaging.FormatUnknown, translateAssetErr(err)
	}
	asset, err := resolver.Resolve(assets.Variant(cfg.variant), assets.Resolution(cfg.resolution))
	if err != nil {
		return nil, imaging.FormatUnknown, translateAssetErr(err)
	}

	if asset.Embedded() {
		format, err := assets.SniffData(asset.Data())
		if err != nil {
			return nil, imaging.FormatUnknown, translateAssetErr(err)
		}
		return asset.Data(), format, nil
	}

	// On-disk override assets get the same scrutiny as caller paths,
	// rooted at the override directory.
	vp, err := assets.ValidatePath(asset.Path, assets.Limits{
		Root:        cfg.assetDir,
		MaxFileSize: cfg.maxFileSize,
	})
	if err != nil {
		return nil, imaging.FormatUnknown, translateAssetErr(err)
	}
	data, err := os.ReadFile(vp.Path) // #nosec G304 -- path validated above
	if err != nil {
		return nil, imaging.FormatUnknown, fmt.Errorf("%w: %v", ErrPathSecurity, err)
	}
	return data, vp.Format, nil
}

// logoStep builds the compositing step: map the normalized box onto
// context pixels and draw the logo through an opacity layer with
// clipping disabled.
func logoStep(buf *gg.ImageBuf, box PlacementBox, alpha float64) RenderStep {
	return func(dc *gg.Context) error {
		// Full-canvas coordinate space regardless of earlier steps.
		dc.Push()
		defer dc.Pop()
		dc.Identity()
		dc.ResetClip()

		canvasH := float64(dc.Height())
		dstH := box.Height * canvasH
		dstW := box.Width * canvasH // height-normalized width keeps aspect
		x := box.XOffset * float64(dc.Width())
		y := canvasH - (box.YOffset*canvasH + dstH)

		dc.PushLayer(gg.BlendNormal, alpha)
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			X:             x,
			Y:             y,
			DstWidth:      dstW,
			DstHeight:     dstH,
			Interpolation: gg.InterpBilinear,
			Opacity:       1.0,
			BlendMode:     gg.BlendNormal,
		})
		dc.PopLayer()
		return nil
	}
}

// translateAssetErr maps internal asset errors to the public taxonomy.
func translateAssetErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrAssetNotFound),
		errors.Is(err, assets.ErrInvalidAssetDir):
		return fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrUnknownSignature):
		return fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
	case errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrPathUnstable),
		errors.Is(err, assets.ErrNotRegularFile),
		errors.Is(err, assets.ErrFileTooLarge):
		return fmt.Errorf("%w: %v", ErrPathSecurity, err)
	default:
		return err
	}
}

// translateImagingErr maps decoder errors to the public taxonomy.
func translateImagingErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, imaging.ErrNoDecoder):
		return fmt.Errorf("%w: %v", ErrMissingCapability, err)
	case errors.Is(err, imaging.ErrUnknownFormat):
		return fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
	case errors.Is(err, imaging.ErrDecode):
		return fmt.Errorf("%w: %v", ErrImageDecode, err)
	default:
		return err
	}
}
