package unblend

import (
	"bytes"
	"fmt"
)

// RebuildBytes rebuilds the transparency of raw image bytes and returns the
// recovered image encoded as PNG bytes, along with the run details.
func RebuildBytes(data []byte) ([]byte, *Result, error) {
	img, format, err := DecodeImageBytes(data)
	if err != nil {
		return nil, nil, err
	}

	rebuilt, hadTransparency := Convert(img)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, rebuilt); err != nil {
		return nil, nil, fmt.Errorf("encode output: %w", err)
	}

	bounds := rebuilt.Bounds()
	return buf.Bytes(), &Result{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          format,
		HadTransparency: hadTransparency,
	}, nil
}
