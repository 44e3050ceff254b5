package processor

import "errors"

// ErrProcessing indicates a failure inside a processor run (loading,
// transforming, or saving an image). Use errors.Is to distinguish it
// from argument errors raised before a run starts.
var ErrProcessing = errors.New("image processing failed")

// Processor is the contract every image transformation implements.
//
// Implementations are constructed with their full, validated
// configuration and are selected by name through the CLI dispatcher;
// Process then runs the whole input-to-output pipeline for one image.
type Processor interface {
	// Name returns the subcommand name the processor is invoked as.
	Name() string

	// Description returns a one-line description for help output.
	Description() string

	// Process reads the image at inputPath, applies the transformation,
	// and writes the result to outputPath.
	Process(inputPath, outputPath string) error
}
