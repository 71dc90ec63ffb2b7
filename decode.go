package unblend

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	// Register common decoders. WebP comes from github.com/deepteams/webp,
	// which registers itself for both decoding and encoding.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/deepteams/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes raw image bytes into an image.Image along with
// the detected format string.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	return Decode(bytes.NewReader(data))
}

// HasTransparency reports whether the decoded image carries transparency
// information: an alpha-bearing pixel format or a palette with a transparent
// entry. Note that Go's PNG decoder uses *image.RGBA for alpha-less
// truecolor images, so for premultiplied buffers the pixels themselves
// decide.
func HasTransparency(img image.Image) bool {
	switch src := img.(type) {
	case *image.Paletted:
		for _, entry := range src.Palette {
			if _, _, _, a := entry.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	case *image.RGBA:
		return !src.Opaque()
	case *image.RGBA64:
		return !src.Opaque()
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return true
	}
	return false
}

// toNRGBA flattens the image into a non-premultiplied RGBA buffer without
// compositing: stored color channels pass through even where alpha is zero,
// so that pre-existing transparency is dropped rather than baked in.
func toNRGBA(img image.Image) *image.NRGBA {
	switch src := img.(type) {
	case *image.NRGBA:
		return src
	case *image.Paletted:
		return palettedToNRGBA(src)
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

// palettedToNRGBA maps pixels through the palette directly. Going through
// draw.Draw instead would premultiply, zeroing the color of any transparent
// palette entry before the recovery ever sees it.
func palettedToNRGBA(src *image.Paletted) *image.NRGBA {
	palette := make([]color.NRGBA, len(src.Palette))
	for i, entry := range src.Palette {
		palette[i] = color.NRGBAModel.Convert(entry).(color.NRGBA)
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := palette[src.ColorIndexAt(x, y)]
			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = c.R
			dst.Pix[o+1] = c.G
			dst.Pix[o+2] = c.B
			dst.Pix[o+3] = c.A
		}
	}
	return dst
}
