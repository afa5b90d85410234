package ggbrand

// logoHeightFrac fixes the logo height at 1/15 of the plot's
// normalized height. The bottom gap equals one logo height.
const logoHeightFrac = 1.0 / 15

// PlacementBox is a logo bounding box in normalized parent coordinates
// (0-1, origin at the bottom-left of the rendered panel, independent of
// absolute pixel size). Width is expressed in height-normalized units
// so the pixel aspect ratio survives non-square canvases.
type PlacementBox struct {
	// XOffset is the distance from the left edge. Always 0: the logo
	// sits flush left.
	XOffset float64

	// YOffset is the distance from the bottom edge to the bottom of the
	// box. Fixed at one logo height.
	YOffset float64

	// Width is the box width: Height times the image's pixel aspect.
	Width float64

	// Height is the box height. Fixed at 1/15.
	Height float64
}

// PlaceLogo computes the fixed-layout placement box for a logo with the
// given pixel dimensions. Pure function: identical inputs always yield
// identical boxes. A non-positive height is an input-validation failure
// caught upstream; PlaceLogo itself never fails and treats it as a
// square image.
func PlaceLogo(pixelWidth, pixelHeight int) PlacementBox {
	aspect := 1.0
	if pixelHeight > 0 && pixelWidth > 0 {
		aspect = float64(pixelWidth) / float64(pixelHeight)
	}
	return PlacementBox{
		XOffset: 0,
		YOffset: logoHeightFrac,
		Width:   logoHeightFrac * aspect,
		Height:  logoHeightFrac,
	}
}
