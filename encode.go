package pixedit

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"strconv"
	"time"
)

// EncodePNG writes b as a lossless PNG.
func EncodePNG(w io.Writer, b *Buffer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func encodePNGBytes(b *Buffer) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DownloadName returns the file name of a download made at t,
// edited-image-<unix milliseconds>.png.
func DownloadName(t time.Time) string {
	return downloadPrefix + strconv.FormatInt(t.UnixMilli(), 10) + downloadExt
}
