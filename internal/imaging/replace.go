package imaging

import "image"

// ReplaceColor rewrites every pixel of img whose color matches source
// (under the given tolerance, see Matches) to target, in place, and
// returns the number of pixels rewritten.
//
// The image must already be in 4-channel straight-alpha form; run it
// through Normalize first. ReplaceColor does not convert pixel formats
// itself.
//
// Every coordinate is visited exactly once, in row-major order. A pixel
// rewritten to target is never re-tested against source in the same
// pass, so the result is well-defined even when target itself matches
// source under the tolerance. An empty image yields 0.
//
// The caller owns img before and after the call; no new image is
// allocated. O(width x height) time, O(1) additional memory.
func ReplaceColor(img *image.NRGBA, source, target RGBAColor, tolerance int) int {
	if img == nil {
		return 0
	}

	bounds := img.Bounds()
	replaced := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			current := RGBAColor{
				R: img.Pix[i],
				G: img.Pix[i+1],
				B: img.Pix[i+2],
				A: img.Pix[i+3],
			}
			if Matches(current, source, tolerance) {
				img.Pix[i] = target.R
				img.Pix[i+1] = target.G
				img.Pix[i+2] = target.B
				img.Pix[i+3] = target.A
				replaced++
			}
			i += 4
		}
	}

	return replaced
}
