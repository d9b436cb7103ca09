package pixedit

import (
	"bytes"
	"testing"
)

func solidBuffer(w, h int, p Pixel) *Buffer {
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, p)
		}
	}
	return b
}

// gradientBuffer fills b with a deterministic, colorful pattern.
func gradientBuffer(w, h int) *Buffer {
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, Pixel{
				R: uint8((x * 255) / max(w-1, 1)),
				G: uint8((y * 255) / max(h-1, 1)),
				B: uint8((x*37 + y*91) % 256),
				A: 255,
			})
		}
	}
	return b
}

func pngBytes(t *testing.T, b *Buffer) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodePNG(&buf, b); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func pixelNear(a, b Pixel, tol int) bool {
	return absDiff(a.R, b.R) <= tol && absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol && absDiff(a.A, b.A) <= tol
}
