package unblend

import (
	"image"
)

// epsilonHalf is added before truncating a recovered channel to an integer,
// giving round-half-up behavior. It sits one double-precision epsilon below
// 0.5 so that representation error can never push a value past the next
// integer.
const epsilonHalf = 0.5 - 2.220446049250313e-16

// RecoverPixel reverses the compositing of a single pixel over opaque white.
//
// Given the observed channels of a pixel that resulted from blending an
// original color at opacity A over white, it returns the estimated original
// channels and alpha, all on the 0-255 scale. The alpha estimate is
// 255 - min(r, g, b): the closer a pixel is to white, the more white was
// mixed in, hence the more transparent it originally was. A pixel
// indistinguishable from pure white maps to the fully transparent
// (0, 0, 0, 0).
//
// The recovered channels are not clamped. For inputs that are consistent
// with a clean white blend they always land in [0, 255]; inputs mangled by
// prior lossy processing may recover outside that range and are returned
// as-is.
func RecoverPixel(r, g, b uint8) (newR, newG, newB, alpha int) {
	alpha = 255 - int(min(r, g, b))
	if alpha == 0 {
		return 0, 0, 0, 0
	}

	ratio := float64(alpha) / 255.0
	white := (1.0 - ratio) * 255.0

	newR = int((float64(r)-white)/ratio + epsilonHalf)
	newG = int((float64(g)-white)/ratio + epsilonHalf)
	newB = int((float64(b)-white)/ratio + epsilonHalf)

	return newR, newG, newB, alpha
}

// Rebuild applies RecoverPixel to every pixel of the image and returns the
// result as a new non-premultiplied RGBA image of identical dimensions.
//
// Any transparency the source image already carries is ignored: only the
// stored color channels feed the recovery. Use HasTransparency to decide
// whether to warn the user about that beforehand.
func Rebuild(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	bounds := src.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			r, g, b, a := RecoverPixel(src.Pix[i], src.Pix[i+1], src.Pix[i+2])

			o := out.PixOffset(x, y)
			out.Pix[o+0] = uint8(r)
			out.Pix[o+1] = uint8(g)
			out.Pix[o+2] = uint8(b)
			out.Pix[o+3] = uint8(a)
		}
	}

	return out
}
