package pixedit

import "bytes"

// Format identifies a raster encoding by its magic bytes.
type Format string

// Formats reported by DetectFormat.
const (
	FormatUnknown Format = "unknown"
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatGIF     Format = "gif"
	FormatWebP    Format = "webp"
	FormatBMP     Format = "bmp"
	FormatTIFF    Format = "tiff"
)

var (
	pngMagic    = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic   = []byte{markerStart, markerSOI, markerStart}
	gif87Magic  = []byte("GIF87a")
	gif89Magic  = []byte("GIF89a")
	riffMagic   = []byte("RIFF")
	webpMagic   = []byte("WEBP")
	bmpMagic    = []byte("BM")
	tiffLEMagic = []byte("II*\x00")
	tiffBEMagic = []byte("MM\x00*")
)

const (
	markerStart = 0xFF
	markerSOI   = 0xD8

	// RIFF header, size, then the WEBP form type.
	webpHeaderSize = 12
)

// DetectFormat sniffs the encoding of data from its leading bytes.
func DetectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(data, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(data, gif87Magic), bytes.HasPrefix(data, gif89Magic):
		return FormatGIF
	case len(data) >= webpHeaderSize && bytes.HasPrefix(data, riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return FormatWebP
	case bytes.HasPrefix(data, tiffLEMagic), bytes.HasPrefix(data, tiffBEMagic):
		return FormatTIFF
	case bytes.HasPrefix(data, bmpMagic):
		return FormatBMP
	default:
		return FormatUnknown
	}
}
