package unblend

import (
	"fmt"
	"image"
	"os"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Width           int
	Height          int
	Format          string // detected input format
	HadTransparency bool   // input already carried transparency (ignored)
}

// Convert rebuilds the transparency of an already-decoded image. It returns
// the recovered image and whether the input carried transparency data of its
// own, which is dropped before the recovery.
func Convert(img image.Image) (*image.NRGBA, bool) {
	return Rebuild(img), HasTransparency(img)
}

// ConvertFile decodes the image at inputPath, rebuilds its transparency and
// writes the result to outputPath, with the format chosen from the output
// extension (PNG, WebP or TIFF).
//
// If the input already contains transparency data a single warning line is
// printed to stderr and processing continues on the color channels alone;
// Result.HadTransparency mirrors the condition for callers. Decode and
// encode failures are returned wrapped; no output file is left behind unless
// encoding started.
func ConvertFile(inputPath, outputPath string) (*Result, error) {
	outFormat, err := FormatForPath(outputPath)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	img, format, err := Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", inputPath, err)
	}

	rebuilt, hadTransparency := Convert(img)
	if hadTransparency {
		fmt.Fprintln(os.Stderr, "Warning: transparency data found in the image will not be used in the conversion.")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	if err := EncodeFormat(out, rebuilt, outFormat); err != nil {
		out.Close()
		return nil, fmt.Errorf("encode output: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close output: %w", err)
	}

	bounds := rebuilt.Bounds()
	return &Result{
		Width:           bounds.Dx(),
		Height:          bounds.Dy(),
		Format:          format,
		HadTransparency: hadTransparency,
	}, nil
}
