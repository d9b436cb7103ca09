package pixedit

import "context"

// Sharpen convolves src with SharpenKernel and blends the result with the
// original by amount/100. amount <= 0 returns an exact copy.
func Sharpen(ctx context.Context, src *Buffer, amount float64) (*Buffer, error) {
	return sharpen(ctx, src, amount, renderConfig{})
}

func sharpen(ctx context.Context, src *Buffer, amount float64, cfg renderConfig) (*Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "sharpen", Err: err}
	}
	factor := amount / 100
	if factor > 1 {
		factor = 1
	}
	if factor <= 0 {
		return src.Clone(), nil
	}
	dst, err := newBufferChecked(src.Width, src.Height, cfg.maxPixels)
	if err != nil {
		return nil, &RenderError{Stage: "sharpen", Err: err}
	}
	convolve3x3(src, dst, &SharpenKernel, factor, cfg.workers)
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: "sharpen", Err: err}
	}
	return dst, nil
}

// Convolve3x3 applies kernel to src and blends the convolved color channels
// with the original: out = conv*factor + orig*(1-factor), clamped to [0,255].
// factor is clamped to [0,1]. Taps that fall outside the buffer are omitted
// from the sum. Alpha is copied unchanged.
func Convolve3x3(src *Buffer, kernel Kernel3x3, factor float64) *Buffer {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	dst := NewBuffer(src.Width, src.Height)
	convolve3x3(src, dst, &kernel, factor, 0)
	return dst
}

func convolve3x3(src, dst *Buffer, kernel *Kernel3x3, factor float64, workers int) {
	w, h := src.Width, src.Height
	keep := 1 - factor
	parallelFor(workers, h, func(start, end int) {
		for y := start; y < end; y++ {
			out := dst.Pix[y*dst.Stride:]
			for x := 0; x < w; x++ {
				var r, g, b float64
				for ky := -1; ky <= 1; ky++ {
					sy := y + ky
					if sy < 0 || sy >= h {
						continue
					}
					row := src.Pix[sy*src.Stride:]
					for kx := -1; kx <= 1; kx++ {
						sx := x + kx
						if sx < 0 || sx >= w {
							continue
						}
						wt := kernel[(ky+1)*3+(kx+1)]
						if wt == 0 {
							continue
						}
						off := sx * 4
						r += float64(row[off+0]) * wt
						g += float64(row[off+1]) * wt
						b += float64(row[off+2]) * wt
					}
				}
				in := src.Pix[y*src.Stride+x*4:]
				off := x * 4
				out[off+0] = clampToByte(r*factor + float64(in[0])*keep)
				out[off+1] = clampToByte(g*factor + float64(in[1])*keep)
				out[off+2] = clampToByte(b*factor + float64(in[2])*keep)
				out[off+3] = in[3]
			}
		}
	})
}
