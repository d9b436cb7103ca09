package pixedit

import (
	"errors"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling function used by Resize and Fit.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

func (i Interpolation) function() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// Resize scales b to exactly width x height.
func Resize(b *Buffer, width, height uint, interp Interpolation) (*Buffer, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("invalid target dimensions")
	}
	return FromImage(resize.Resize(width, height, b.Image(), interp.function())), nil
}

// Fit downscales b to fit within maxWidth x maxHeight preserving aspect ratio.
// A buffer that already fits is returned as is. Zero limits mean unbounded.
func Fit(b *Buffer, maxWidth, maxHeight uint, interp Interpolation) *Buffer {
	if maxWidth == 0 && maxHeight == 0 {
		return b
	}
	if maxWidth == 0 {
		maxWidth = uint(b.Width)
	}
	if maxHeight == 0 {
		maxHeight = uint(b.Height)
	}
	if uint(b.Width) <= maxWidth && uint(b.Height) <= maxHeight {
		return b
	}
	return FromImage(resize.Thumbnail(maxWidth, maxHeight, b.Image(), interp.function()))
}
