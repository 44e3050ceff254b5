package imaging

import (
	"image"
	"testing"
)

// newTestImage creates an NRGBA image from a row-major grid of colors.
func newTestImage(t *testing.T, grid [][]RGBAColor) *image.NRGBA {
	t.Helper()
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y, row := range grid {
		for x, c := range row {
			setPixel(img, x, y, c)
		}
	}
	return img
}

func setPixel(img *image.NRGBA, x, y int, c RGBAColor) {
	i := img.PixOffset(x, y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

func pixelAt(img *image.NRGBA, x, y int) RGBAColor {
	i := img.PixOffset(x, y)
	return RGBAColor{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

func TestReplaceColor_ExactMatch(t *testing.T) {
	red := RGBAColor{255, 0, 0, 255}
	green := RGBAColor{0, 255, 0, 255}
	blue := RGBAColor{0, 0, 255, 255}

	img := newTestImage(t, [][]RGBAColor{{red, green}})

	count := ReplaceColor(img, red, blue, 0)
	if count != 1 {
		t.Fatalf("ReplaceColor returned %d, want 1", count)
	}
	if got := pixelAt(img, 0, 0); got != blue {
		t.Errorf("pixel (0,0) = %+v, want %+v", got, blue)
	}
	if got := pixelAt(img, 1, 0); got != green {
		t.Errorf("pixel (1,0) = %+v, want %+v (must be untouched)", got, green)
	}
}

func TestReplaceColor_NoMatch(t *testing.T) {
	green := RGBAColor{0, 255, 0, 255}
	img := newTestImage(t, [][]RGBAColor{{green, green}, {green, green}})

	count := ReplaceColor(img, RGBAColor{255, 0, 0, 255}, RGBAColor{0, 0, 255, 255}, 0)
	if count != 0 {
		t.Fatalf("ReplaceColor returned %d, want 0", count)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pixelAt(img, x, y); got != green {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, green)
			}
		}
	}
}

func TestReplaceColor_Tolerance(t *testing.T) {
	source := RGBAColor{255, 0, 0, 255}
	target := RGBAColor{0, 0, 255, 255}
	near := RGBAColor{250, 5, 5, 255} // distance ~8.66 from source

	tests := []struct {
		name      string
		tolerance int
		wantCount int
	}{
		{"within tolerance", 10, 1},
		{"outside tolerance", 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newTestImage(t, [][]RGBAColor{{near}})
			count := ReplaceColor(img, source, target, tt.tolerance)
			if count != tt.wantCount {
				t.Fatalf("ReplaceColor returned %d, want %d", count, tt.wantCount)
			}
			want := near
			if tt.wantCount == 1 {
				want = target
			}
			if got := pixelAt(img, 0, 0); got != want {
				t.Errorf("pixel (0,0) = %+v, want %+v", got, want)
			}
		})
	}
}

func TestReplaceColor_BoundaryInclusive(t *testing.T) {
	source := RGBAColor{255, 0, 0, 255}
	target := RGBAColor{0, 0, 255, 255}
	// distance exactly 10
	img := newTestImage(t, [][]RGBAColor{{{245, 0, 0, 255}}})

	if count := ReplaceColor(img, source, target, 10); count != 1 {
		t.Fatalf("ReplaceColor returned %d, want 1 (distance == tolerance must match)", count)
	}
	if got := pixelAt(img, 0, 0); got != target {
		t.Errorf("pixel (0,0) = %+v, want %+v", got, target)
	}
}

func TestReplaceColor_ToleranceAboveMaximum(t *testing.T) {
	target := RGBAColor{1, 2, 3, 4}
	img := newTestImage(t, [][]RGBAColor{
		{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}},
		{{0, 0, 0, 0}, {255, 255, 255, 255}, {128, 128, 128, 128}},
	})

	// sqrt(4 * 255^2) ~ 510, so everything matches.
	count := ReplaceColor(img, RGBAColor{0, 0, 0, 0}, target, 510)
	if count != 6 {
		t.Fatalf("ReplaceColor returned %d, want 6", count)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := pixelAt(img, x, y); got != target {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, target)
			}
		}
	}
}

func TestReplaceColor_EmptyImage(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	count := ReplaceColor(empty, RGBAColor{255, 0, 0, 255}, RGBAColor{0, 0, 255, 255}, 0)
	if count != 0 {
		t.Fatalf("ReplaceColor on empty image returned %d, want 0", count)
	}

	zeroWidth := image.NewNRGBA(image.Rect(0, 0, 0, 5))
	if count := ReplaceColor(zeroWidth, RGBAColor{}, RGBAColor{}, 0); count != 0 {
		t.Fatalf("ReplaceColor on zero-width image returned %d, want 0", count)
	}
}

func TestReplaceColor_NilImage(t *testing.T) {
	if count := ReplaceColor(nil, RGBAColor{}, RGBAColor{}, 0); count != 0 {
		t.Fatalf("ReplaceColor(nil) returned %d, want 0", count)
	}
}

func TestReplaceColor_Idempotent(t *testing.T) {
	red := RGBAColor{255, 0, 0, 255}
	blue := RGBAColor{0, 0, 255, 255}
	img := newTestImage(t, [][]RGBAColor{{red, red}, {red, {0, 255, 0, 255}}})

	first := ReplaceColor(img, red, blue, 0)
	if first != 3 {
		t.Fatalf("first pass returned %d, want 3", first)
	}
	second := ReplaceColor(img, red, blue, 0)
	if second != 0 {
		t.Fatalf("second pass returned %d, want 0", second)
	}
}

func TestReplaceColor_SinglePassWhenTargetMatchesSource(t *testing.T) {
	// Target is within tolerance of source. Each pixel is visited exactly
	// once, so rewritten pixels must not be matched again, and the count
	// equals the original number of matching pixels.
	source := RGBAColor{100, 0, 0, 255}
	target := RGBAColor{101, 0, 0, 255}
	img := newTestImage(t, [][]RGBAColor{{source, source}, {source, source}})

	count := ReplaceColor(img, source, target, 5)
	if count != 4 {
		t.Fatalf("ReplaceColor returned %d, want 4", count)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pixelAt(img, x, y); got != target {
				t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, target)
			}
		}
	}
}

func TestReplaceColor_NonZeroOrigin(t *testing.T) {
	red := RGBAColor{255, 0, 0, 255}
	blue := RGBAColor{0, 0, 255, 255}

	img := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	for y := 3; y < 5; y++ {
		for x := 2; x < 5; x++ {
			setPixel(img, x, y, red)
		}
	}

	count := ReplaceColor(img, red, blue, 0)
	if count != 6 {
		t.Fatalf("ReplaceColor returned %d, want 6", count)
	}
	if got := pixelAt(img, 4, 4); got != blue {
		t.Errorf("pixel (4,4) = %+v, want %+v", got, blue)
	}
}

func TestReplaceColor_PreservesUnmatchedPixels(t *testing.T) {
	red := RGBAColor{255, 0, 0, 255}
	blue := RGBAColor{0, 0, 255, 255}

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	wantUntouched := make(map[[2]int]RGBAColor)
	k := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%3 == 0 {
				setPixel(img, x, y, red)
				k++
			} else {
				c := RGBAColor{uint8(x * 10), uint8(y * 10), 7, 255}
				setPixel(img, x, y, c)
				wantUntouched[[2]int{x, y}] = c
			}
		}
	}

	count := ReplaceColor(img, red, blue, 0)
	if count != k {
		t.Fatalf("ReplaceColor returned %d, want %d", count, k)
	}
	for pos, want := range wantUntouched {
		if got := pixelAt(img, pos[0], pos[1]); got != want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v (must be untouched)", pos[0], pos[1], got, want)
		}
	}
}
