package pixedit

import (
	"context"
	"math"
)

// renderConfig carries per-editor limits into the stages.
type renderConfig struct {
	workers   int
	maxPixels int
}

// Adjust applies the tone and color adjustments to src and returns a new buffer.
//
// The composition order is fixed: brightness, contrast, saturation, hue, sepia,
// grayscale, then blur. Each pointwise step clamps to [0,255] and the result is
// rounded once per channel. Steps at identity are skipped, so Identity()
// returns a pixel-identical copy. Alpha is only touched by blur.
// Values are used as given except hue, which is taken modulo 360; call
// Adjustments.Clamp to enforce the declared ranges.
func Adjust(ctx context.Context, src *Buffer, a Adjustments) (*Buffer, error) {
	return adjust(ctx, src, a, renderConfig{})
}

func adjust(ctx context.Context, src *Buffer, a Adjustments, cfg renderConfig) (*Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "adjust", Err: err}
	}
	dst, err := newBufferChecked(src.Width, src.Height, cfg.maxPixels)
	if err != nil {
		return nil, &RenderError{Stage: "adjust", Err: err}
	}

	tm := newToneMap(a)
	rowSize := src.Width * 4
	parallelFor(cfg.workers, src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			in := src.Pix[y*src.Stride : y*src.Stride+rowSize]
			out := dst.Pix[y*dst.Stride : y*dst.Stride+rowSize]
			if tm.identity {
				copy(out, in)
				continue
			}
			for off := 0; off < rowSize; off += 4 {
				r, g, b := tm.apply(float64(in[off]), float64(in[off+1]), float64(in[off+2]))
				out[off+0] = clampToByte(r)
				out[off+1] = clampToByte(g)
				out[off+2] = clampToByte(b)
				out[off+3] = in[off+3]
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "adjust", Err: err}
	}

	if a.Blur > 0 {
		return gaussianBlur(ctx, dst, a.Blur, cfg)
	}
	return dst, nil
}

// toneMap is the pointwise part of the adjustment stage.
type toneMap struct {
	identity   bool
	brightness float64
	contrast   float64
	saturation float64
	hue        float64
	sepia      float64
	grayscale  float64
}

func newToneMap(a Adjustments) toneMap {
	return toneMap{
		identity:   !a.pointwise(),
		brightness: a.Brightness / 100,
		contrast:   a.Contrast / 100,
		saturation: a.Saturation / 100,
		hue:        normalizeHue(a.Hue),
		sepia:      math.Min(math.Max(a.Sepia/100, 0), 1),
		grayscale:  math.Min(math.Max(a.Grayscale/100, 0), 1),
	}
}

func (t toneMap) apply(r, g, b float64) (float64, float64, float64) {
	if t.brightness != 1 {
		r, g, b = clamp255(r*t.brightness), clamp255(g*t.brightness), clamp255(b*t.brightness)
	}
	if t.contrast != 1 {
		r = clamp255((r-contrastMidpoint)*t.contrast + contrastMidpoint)
		g = clamp255((g-contrastMidpoint)*t.contrast + contrastMidpoint)
		b = clamp255((b-contrastMidpoint)*t.contrast + contrastMidpoint)
	}
	if t.saturation != 1 || t.hue != 0 {
		h, s, l := rgbToHSL(r, g, b)
		s = math.Min(math.Max(s*t.saturation, 0), 1)
		h = math.Mod(h+t.hue, 360)
		r, g, b = hslToRGB(h, s, l)
		r, g, b = clamp255(r), clamp255(g), clamp255(b)
	}
	if t.sepia > 0 {
		sr := 0.393*r + 0.769*g + 0.189*b
		sg := 0.349*r + 0.686*g + 0.168*b
		sb := 0.272*r + 0.534*g + 0.131*b
		k := t.sepia
		r = clamp255(r*(1-k) + sr*k)
		g = clamp255(g*(1-k) + sg*k)
		b = clamp255(b*(1-k) + sb*k)
	}
	if t.grayscale > 0 {
		lum := lumR*r + lumG*g + lumB*b
		k := t.grayscale
		r = clamp255(r*(1-k) + lum*k)
		g = clamp255(g*(1-k) + lum*k)
		b = clamp255(b*(1-k) + lum*k)
	}
	return r, g, b
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// gaussianBlur runs a separable Gaussian blur with sigma = radius px.
// Taps outside the buffer repeat the nearest edge pixel.
func gaussianBlur(ctx context.Context, src *Buffer, radius float64, cfg renderConfig) (*Buffer, error) {
	w, h := src.Width, src.Height
	dst, err := newBufferChecked(w, h, cfg.maxPixels)
	if err != nil {
		return nil, &RenderError{Stage: "blur", Err: err}
	}
	kernel := cachedGaussianKernel(radius)
	half := len(kernel) / 2

	temp := getFloat32(w * h * 4)
	defer putFloat32(temp)

	parallelFor(cfg.workers, h, func(start, end int) {
		for y := start; y < end; y++ {
			row := src.Pix[y*src.Stride:]
			outRow := temp[y*w*4:]
			for x := 0; x < w; x++ {
				var r, g, b, a float32
				for k, wt := range kernel {
					xi := x + k - half
					if xi < 0 {
						xi = 0
					} else if xi >= w {
						xi = w - 1
					}
					off := xi * 4
					r += float32(row[off+0]) * wt
					g += float32(row[off+1]) * wt
					b += float32(row[off+2]) * wt
					a += float32(row[off+3]) * wt
				}
				off := x * 4
				outRow[off+0] = r
				outRow[off+1] = g
				outRow[off+2] = b
				outRow[off+3] = a
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "blur", Err: err}
	}

	parallelFor(cfg.workers, h, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride:]
			for x := 0; x < w; x++ {
				var r, g, b, a float32
				for k, wt := range kernel {
					yi := y + k - half
					if yi < 0 {
						yi = 0
					} else if yi >= h {
						yi = h - 1
					}
					off := (yi*w + x) * 4
					r += temp[off+0] * wt
					g += temp[off+1] * wt
					b += temp[off+2] * wt
					a += temp[off+3] * wt
				}
				off := x * 4
				row[off+0] = clampToByte(float64(r))
				row[off+1] = clampToByte(float64(g))
				row[off+2] = clampToByte(float64(b))
				row[off+3] = clampToByte(float64(a))
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "blur", Err: err}
	}
	return dst, nil
}
