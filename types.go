package pixedit

import "math"

// Pixel is a single non-premultiplied RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// Adjustments holds the tone and color parameters of a render pass.
// The zero value is not the identity, use Identity.
type Adjustments struct {
	Brightness float64 `json:"brightness"` // percent, 0..200
	Contrast   float64 `json:"contrast"`   // percent, 0..200
	Saturation float64 `json:"saturation"` // percent, 0..200
	Blur       float64 `json:"blur"`       // pixels, 0..10
	Sharpen    float64 `json:"sharpen"`    // percent, 0..100
	Hue        float64 `json:"hue"`        // degrees, -180..180
	Sepia      float64 `json:"sepia"`      // percent, 0..100
	Grayscale  float64 `json:"grayscale"`  // percent, 0..100
}

// Identity returns adjustments that leave every pixel unchanged.
func Identity() Adjustments {
	return Adjustments{
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
	}
}

// Clamp returns a copy with every parameter clamped to its declared range.
// NaN values are replaced with the identity value of the parameter.
func (a Adjustments) Clamp() Adjustments {
	id := Identity()
	return Adjustments{
		Brightness: clampParam(a.Brightness, minBrightness, maxBrightness, id.Brightness),
		Contrast:   clampParam(a.Contrast, minContrast, maxContrast, id.Contrast),
		Saturation: clampParam(a.Saturation, minSaturation, maxSaturation, id.Saturation),
		Blur:       clampParam(a.Blur, minBlur, maxBlur, id.Blur),
		Sharpen:    clampParam(a.Sharpen, minSharpen, maxSharpen, id.Sharpen),
		Hue:        clampParam(a.Hue, minHue, maxHue, id.Hue),
		Sepia:      clampParam(a.Sepia, minSepia, maxSepia, id.Sepia),
		Grayscale:  clampParam(a.Grayscale, minGrayscale, maxGrayscale, id.Grayscale),
	}
}

// IsIdentity reports whether a leaves every pixel unchanged.
func (a Adjustments) IsIdentity() bool {
	return !a.pointwise() && a.Blur <= 0 && a.Sharpen <= 0
}

func (a Adjustments) pointwise() bool {
	return a.Brightness != 100 || a.Contrast != 100 || a.Saturation != 100 ||
		normalizeHue(a.Hue) != 0 || a.Sepia > 0 || a.Grayscale > 0
}

func clampParam(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// State is the render orchestrator state.
type State int

const (
	// StateIdle means no render pass is in flight.
	StateIdle State = iota
	// StateRendering means at least one render pass is in flight.
	StateRendering
	// StateError means the last pass failed; see Editor.Err.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Frame is a committed render result.
type Frame struct {
	Buffer      *Buffer
	Adjustments Adjustments
	Token       uint64
}
