package pixedit

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"

	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// Load decodes a source image into a buffer of its natural dimensions.
// Corrupt or unsupported input fails with *DecodeError.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Format: FormatUnknown, Err: fmt.Errorf("read: %w", err)}
	}
	return decodeBuffer(data, 0)
}

// LoadBytes decodes data into a buffer, see Load.
func LoadBytes(data []byte) (*Buffer, error) {
	return decodeBuffer(data, 0)
}

// decodeBuffer checks the header dimensions against maxPixels before
// decoding the full image, so oversized input never allocates its pixels.
func decodeBuffer(data []byte, maxPixels int) (*Buffer, error) {
	format := DetectFormat(data)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, &DecodeError{Format: format, Err: errors.New("empty image")}
	}
	if maxPixels > 0 && cfg.Width > maxPixels/cfg.Height {
		return nil, &DecodeError{Format: format, Err: errTooLarge}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return FromImage(img), nil
}
