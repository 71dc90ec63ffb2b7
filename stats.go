package unblend

import "image"

// Coverage summarizes the alpha channel of a rebuilt image.
type Coverage struct {
	Transparent int // pixels with alpha 0
	Partial     int // pixels with alpha in (0, 255)
	Opaque      int // pixels with alpha 255
	MeanAlpha   float64
}

// Pixels returns the total number of pixels counted.
func (c Coverage) Pixels() int {
	return c.Transparent + c.Partial + c.Opaque
}

// AlphaCoverage takes a census of the alpha channel: how many pixels came
// out fully transparent, partially transparent or opaque, and the mean alpha
// across the image.
func AlphaCoverage(img image.Image) Coverage {
	src := toNRGBA(img)

	var cov Coverage
	var sum uint64

	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := src.Pix[src.PixOffset(x, y)+3]
			sum += uint64(a)
			switch a {
			case 0:
				cov.Transparent++
			case 255:
				cov.Opaque++
			default:
				cov.Partial++
			}
		}
	}

	if n := cov.Pixels(); n > 0 {
		cov.MeanAlpha = float64(sum) / float64(n)
	}
	return cov
}
