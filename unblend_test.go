package unblend

import (
	"image"
	"math"
	"testing"
)

func TestRecoverPixelPureWhite(t *testing.T) {
	r, g, b, a := RecoverPixel(255, 255, 255)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("RecoverPixel(255,255,255) = (%d,%d,%d,%d), want (0,0,0,0)", r, g, b, a)
	}
}

// A pixel with any channel at zero mixed in no white at all: alpha is 255
// and the channels pass through unchanged.
func TestRecoverPixelOpaquePassThrough(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{200, 0, 50},
		{0, 255, 255},
		{255, 255, 0},
		{17, 99, 0},
	}

	for _, tc := range cases {
		r, g, b, a := RecoverPixel(tc.r, tc.g, tc.b)
		if a != 255 {
			t.Fatalf("RecoverPixel(%d,%d,%d) alpha = %d, want 255", tc.r, tc.g, tc.b, a)
		}
		if r != int(tc.r) || g != int(tc.g) || b != int(tc.b) {
			t.Fatalf("RecoverPixel(%d,%d,%d) = (%d,%d,%d), want pass-through",
				tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestRecoverPixelReferenceValues(t *testing.T) {
	cases := []struct {
		r, g, b                    uint8
		wantR, wantG, wantB, wantA int
	}{
		{255, 255, 255, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 255},
		// alpha = 255-128 = 127; red recovers to full, green/blue to zero.
		{255, 128, 128, 255, 0, 0, 127},
		{128, 128, 128, 0, 0, 0, 127},
		{254, 254, 254, 0, 0, 0, 1},
	}

	for _, tc := range cases {
		r, g, b, a := RecoverPixel(tc.r, tc.g, tc.b)
		if r != tc.wantR || g != tc.wantG || b != tc.wantB || a != tc.wantA {
			t.Fatalf("RecoverPixel(%d,%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tc.r, tc.g, tc.b, r, g, b, a, tc.wantR, tc.wantG, tc.wantB, tc.wantA)
		}
	}
}

func TestRecoverPixelAlphaIsDistanceFromWhite(t *testing.T) {
	vals := []uint8{0, 1, 7, 16, 64, 127, 128, 200, 254, 255}

	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				_, _, _, a := RecoverPixel(r, g, b)
				want := 255 - int(min(r, g, b))
				if a != want {
					t.Fatalf("RecoverPixel(%d,%d,%d) alpha = %d, want %d", r, g, b, a, want)
				}
			}
		}
	}
}

// Compositing the recovered color back over white must reproduce the input
// within one count per channel.
func TestRecoverPixelRecomposite(t *testing.T) {
	vals := []uint8{0, 1, 7, 16, 32, 64, 127, 128, 200, 254, 255}

	composite := func(c int, ratio float64) int {
		return int(math.Round(float64(c)*ratio + 255.0*(1.0-ratio)))
	}

	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				nr, ng, nb, a := RecoverPixel(r, g, b)
				if a == 0 {
					continue
				}
				ratio := float64(a) / 255.0

				checks := []struct {
					got  int
					want uint8
					name string
				}{
					{composite(nr, ratio), r, "r"},
					{composite(ng, ratio), g, "g"},
					{composite(nb, ratio), b, "b"},
				}
				for _, ch := range checks {
					if diff := ch.got - int(ch.want); diff < -1 || diff > 1 {
						t.Fatalf("recomposite %s of (%d,%d,%d): got %d, want %d±1",
							ch.name, r, g, b, ch.got, ch.want)
					}
				}
			}
		}
	}
}

func TestRebuildMatchesPerPixelRecovery(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 17, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i+0] = uint8(x * 15)
			src.Pix[i+1] = uint8(y * 28)
			src.Pix[i+2] = uint8((x + y) * 9)
			src.Pix[i+3] = 255
		}
	}

	out := Rebuild(src)

	if !out.Bounds().Eq(src.Bounds()) {
		t.Fatalf("bounds changed: got %v, want %v", out.Bounds(), src.Bounds())
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			i := src.PixOffset(x, y)
			r, g, b, a := RecoverPixel(src.Pix[i], src.Pix[i+1], src.Pix[i+2])

			o := out.PixOffset(x, y)
			got := [4]uint8{out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3]}
			want := [4]uint8{uint8(r), uint8(g), uint8(b), uint8(a)}
			if got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}
