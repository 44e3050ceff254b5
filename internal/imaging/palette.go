package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string    `json:"hex"`        // Hex color "#RRGGBBAA" (quantized)
	RGBA       RGBAColor `json:"rgba"`       // RGBA components (quantized)
	Percentage float64   `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// Quantized buckets closer than this in Lab space are folded into the
// more frequent bucket. Lab distances run roughly 0-1 across sRGB;
// adjacent 16-step gray buckets sit near 0.06, so this folds colors
// split across one quantization boundary but keeps distinct hues apart.
const labMergeThreshold = 0.07

// DominantColors extracts the count most common colors from an image.
//
// Colors are returned sorted by frequency in descending order. To group
// similar colors, RGB components are quantized down to multiples of 16
// before counting; buckets that remain perceptually indistinguishable
// after quantization are merged using CIE Lab distance. Alpha is
// ignored during counting and reported as 255.
//
// If the image has fewer distinct buckets than count, fewer results are
// returned. An empty image yields an empty slice. A non-positive count
// is an error.
func DominantColors(img image.Image, count int) ([]ColorFrequency, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	counts := make(map[RGBAColor]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			q := RGBAColor{
				R: uint8(r>>8) / 16 * 16,
				G: uint8(g>>8) / 16 * 16,
				B: uint8(b>>8) / 16 * 16,
				A: 255,
			}
			counts[q]++
			totalPixels++
		}
	}

	if totalPixels == 0 {
		return []ColorFrequency{}, nil
	}

	type bucket struct {
		color RGBAColor
		count int
	}
	buckets := make([]bucket, 0, len(counts))
	for c, n := range counts {
		buckets = append(buckets, bucket{color: c, count: n})
	}
	sortBuckets := func(b []bucket) {
		sort.Slice(b, func(i, j int) bool {
			if b[i].count != b[j].count {
				return b[i].count > b[j].count
			}
			return b[i].color.Hex() < b[j].color.Hex()
		})
	}
	sortBuckets(buckets)

	// Fold near-duplicate buckets into the more frequent one.
	merged := make([]bucket, 0, len(buckets))
	for _, b := range buckets {
		folded := false
		for i := range merged {
			if labDistance(merged[i].color, b.color) < labMergeThreshold {
				merged[i].count += b.count
				folded = true
				break
			}
		}
		if !folded {
			merged = append(merged, b)
		}
	}
	sortBuckets(merged)

	if len(merged) > count {
		merged = merged[:count]
	}

	result := make([]ColorFrequency, 0, len(merged))
	for _, b := range merged {
		result = append(result, ColorFrequency{
			Hex:        b.color.Hex(),
			RGBA:       b.color,
			Percentage: float64(b.count) / float64(totalPixels) * 100,
		})
	}
	return result, nil
}

// labDistance returns the CIE Lab distance between two colors, ignoring alpha.
func labDistance(a, b RGBAColor) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}
