package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale resamples src to width x height using bilinear filtering.
// Returns src unchanged when it already has the target dimensions.
func Scale(src image.Image, width, height int) image.Image {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
