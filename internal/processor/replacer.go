package processor

import (
	"fmt"
	"image"
	"log"

	"github.com/gremlinlabs/image-gremlin/internal/imaging"
)

// ReplaceOptions configures a ColorReplacer.
//
// SourceColor is the color to replace, TargetColor the color written in
// its place. Tolerance (0-255) is the maximum RGBA Euclidean distance
// for a pixel to count as matching; 0 requires an exact match.
type ReplaceOptions struct {
	SourceColor imaging.RGBAColor
	TargetColor imaging.RGBAColor
	Tolerance   int
}

// ColorReplacer rewrites every pixel matching a source color to a
// target color. It implements Processor.
type ColorReplacer struct {
	opts ReplaceOptions
}

// NewColorReplacer validates opts and returns a ready-to-run replacer.
// Construction fails on an out-of-range tolerance; Process assumes the
// options are valid.
func NewColorReplacer(opts ReplaceOptions) (*ColorReplacer, error) {
	if opts.Tolerance < 0 || opts.Tolerance > 255 {
		return nil, fmt.Errorf("tolerance must be in [0,255], got %d", opts.Tolerance)
	}
	return &ColorReplacer{opts: opts}, nil
}

// Name returns the subcommand name.
func (p *ColorReplacer) Name() string { return "replace-color" }

// Description returns a one-line description for help output.
func (p *ColorReplacer) Description() string {
	return "Replace a specific color in the image with another color"
}

// Process loads inputPath, normalizes it to 4-channel RGBA, rewrites
// every pixel matching the source color, and saves the result to
// outputPath. Failures are reported wrapping ErrProcessing.
func (p *ColorReplacer) Process(inputPath, outputPath string) error {
	img, format, err := imaging.Load(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	normalized := imaging.Normalize(img)
	if _, ok := img.(*image.NRGBA); !ok {
		log.Printf("Converted %s image from %T to RGBA", format, img)
	}

	replaced := imaging.ReplaceColor(normalized, p.opts.SourceColor, p.opts.TargetColor, p.opts.Tolerance)
	log.Printf("Replaced %d pixels", replaced)

	if err := imaging.Save(normalized, outputPath); err != nil {
		return fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	return nil
}
