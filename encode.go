package unblend

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
	"golang.org/x/image/tiff"
)

// FormatForPath selects the output format from the path's extension. Only
// formats with a true per-pixel 8-bit alpha channel are accepted; asking for
// e.g. a JPEG output is an error.
func FormatForPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return "png", nil
	case "webp":
		return "webp", nil
	case "tif", "tiff":
		return "tiff", nil
	case "":
		return "", fmt.Errorf("output path %q has no extension to pick a format from", path)
	}
	return "", fmt.Errorf("output format %q does not support an alpha channel", ext)
}

// EncodeFormat writes the image to w in the named format, as returned by
// FormatForPath. All supported encoders are lossless and keep the alpha
// channel intact.
func EncodeFormat(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return webp.Encode(w, img, &webp.EncoderOptions{Lossless: true, Exact: true})
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// EncodePNG writes the provided image to the writer as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
