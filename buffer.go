package pixedit

import (
	"bytes"
	"errors"
	"image"
	"image/color"
)

// Buffer is a width x height grid of non-premultiplied RGBA samples.
// The pixel at (x, y) starts at Pix[y*Stride+x*4].
type Buffer struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(&BoundsError{X: width, Y: height})
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Stride: width * 4,
		Pix:    make([]uint8, width*height*4),
	}
}

func newBufferChecked(width, height, maxPixels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("empty image")
	}
	if maxPixels > 0 && width > maxPixels/height {
		return nil, errTooLarge
	}
	return NewBuffer(width, height), nil
}

var errTooLarge = errors.New("image exceeds pixel limit")

// FromImage copies img into a new buffer sized to its bounds.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	out := NewBuffer(b.Dx(), b.Dy())
	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := out.Width * 4
		for y := 0; y < out.Height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+rowSize], src.Pix[off:off+rowSize])
		}
	default:
		for y := 0; y < out.Height; y++ {
			row := out.Pix[y*out.Stride:]
			for x := 0; x < out.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				off := x * 4
				row[off+0] = c.R
				row[off+1] = c.G
				row[off+2] = c.B
				row[off+3] = c.A
			}
		}
	}
	return out
}

// Image returns an image.NRGBA sharing the buffer memory.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// At returns the pixel at (x, y). Coordinates outside the buffer panic with *BoundsError.
func (b *Buffer) At(x, y int) Pixel {
	off := b.offset(x, y)
	p := b.Pix[off : off+4 : off+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at (x, y). Coordinates outside the buffer panic with *BoundsError.
func (b *Buffer) Set(x, y int, p Pixel) {
	off := b.offset(x, y)
	s := b.Pix[off : off+4 : off+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}

func (b *Buffer) offset(x, y int) int {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		panic(&BoundsError{X: x, Y: y, Width: b.Width, Height: b.Height})
	}
	return y*b.Stride + x*4
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := NewBuffer(b.Width, b.Height)
	rowSize := b.Width * 4
	for y := 0; y < b.Height; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+rowSize], b.Pix[y*b.Stride:y*b.Stride+rowSize])
	}
	return out
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.Width != o.Width || b.Height != o.Height {
		return false
	}
	rowSize := b.Width * 4
	for y := 0; y < b.Height; y++ {
		if !bytes.Equal(b.Pix[y*b.Stride:y*b.Stride+rowSize], o.Pix[y*o.Stride:y*o.Stride+rowSize]) {
			return false
		}
	}
	return true
}
