package unblend

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL)
// into an image.Image. It returns the decoded image and the detected format
// string ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RebuildBase64 rebuilds the transparency of a base64-encoded image and
// returns the recovered image as base64 PNG, along with the run details.
func RebuildBase64(input string) (string, *Result, error) {
	img, format, err := DecodeBase64Image(input)
	if err != nil {
		return "", nil, err
	}

	rebuilt, hadTransparency := Convert(img)

	output, err := EncodePNGToBase64(rebuilt)
	if err != nil {
		return "", nil, err
	}

	bounds := rebuilt.Bounds()
	return output, &Result{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          format,
		HadTransparency: hadTransparency,
	}, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}
