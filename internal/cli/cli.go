package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gremlinlabs/image-gremlin/internal/imaging"
	"github.com/gremlinlabs/image-gremlin/internal/processor"
)

// debug enables verbose logging. Set by the -v flag or by
// IMAGE_GREMLIN_LOG_LEVEL=debug in the environment.
var debug = os.Getenv("IMAGE_GREMLIN_LOG_LEVEL") == "debug"

func debugf(format string, args ...interface{}) {
	if debug {
		log.Printf(format, args...)
	}
}

// command pairs a subcommand name with its help description.
type command struct {
	name        string
	description string
}

// commandList returns every subcommand in help order. Processor-backed
// commands report the processor's own name and description.
func commandList() []command {
	var replacer processor.ColorReplacer
	return []command{
		{replacer.Name(), replacer.Description()},
		{"info", "Print dimensions, format and color information for an image"},
		{"palette", "Print the most dominant colors of an image"},
	}
}

// Run dispatches args (the program arguments without the binary name)
// to the matching subcommand. It returns a non-nil error for unknown
// commands, bad flags, and any failure inside the command itself; an
// explicit -h on a subcommand is a clean exit, not an error.
func Run(args []string) error {
	err := dispatch(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func dispatch(args []string) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "replace-color":
		return runReplaceColor(args[1:])
	case "info":
		return runInfo(args[1:])
	case "palette":
		return runPalette(args[1:])
	case "help", "--help", "-h":
		printUsage(os.Stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: image-gremlin <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commandList() {
		fmt.Fprintf(w, "  %-14s %s\n", c.name, c.description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'image-gremlin <command> -h' for command options.")
}

func runReplaceColor(args []string) error {
	fs := flag.NewFlagSet("replace-color", flag.ContinueOnError)
	var (
		input     string
		output    string
		source    string
		target    string
		tolerance int
		verbose   bool
	)
	fs.StringVar(&input, "input", "", "Input image path")
	fs.StringVar(&input, "i", "", "Input image path (shorthand)")
	fs.StringVar(&output, "output", "", "Output image path")
	fs.StringVar(&output, "o", "", "Output image path (shorthand)")
	fs.StringVar(&source, "source", "", "Color to replace, RGBA hex (e.g. FF0000FF or #FF0000)")
	fs.StringVar(&source, "s", "", "Color to replace (shorthand)")
	fs.StringVar(&target, "target", "", "Replacement color, RGBA hex (e.g. 00FF00FF or #00FF00)")
	fs.StringVar(&target, "t", "", "Replacement color (shorthand)")
	fs.IntVar(&tolerance, "tolerance", 0, "Color distance tolerance (0-255); 0 requires an exact match")
	fs.BoolVar(&verbose, "v", false, "Enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if input == "" || output == "" || source == "" || target == "" {
		fs.Usage()
		return fmt.Errorf("replace-color: -input, -output, -source and -target are required")
	}
	if verbose {
		debug = true
		debugf("Verbose mode enabled")
	}

	debugf("Parsing source color: %s", source)
	sourceColor, err := imaging.ParseHex(source)
	if err != nil {
		return fmt.Errorf("source color: %w", err)
	}
	debugf("Source RGBA: %s", sourceColor.Hex())

	debugf("Parsing target color: %s", target)
	targetColor, err := imaging.ParseHex(target)
	if err != nil {
		return fmt.Errorf("target color: %w", err)
	}
	debugf("Target RGBA: %s", targetColor.Hex())

	p, err := processor.NewColorReplacer(processor.ReplaceOptions{
		SourceColor: sourceColor,
		TargetColor: targetColor,
		Tolerance:   tolerance,
	})
	if err != nil {
		return err
	}

	debugf("Processing image: %s -> %s (tolerance %d)", input, output, tolerance)
	if err := p.Process(input, output); err != nil {
		return err
	}

	fmt.Printf("Replaced color %s with %s\n", sourceColor.Hex(), targetColor.Hex())
	fmt.Printf("Output saved to: %s\n", output)
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	var input string
	fs.StringVar(&input, "input", "", "Input image path")
	fs.StringVar(&input, "i", "", "Input image path (shorthand)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if input == "" {
		fs.Usage()
		return fmt.Errorf("info: -input is required")
	}

	info, err := imaging.Info(input)
	if err != nil {
		return err
	}

	fmt.Printf("Dimensions: %dx%d\n", info.Width, info.Height)
	fmt.Printf("Format:     %s\n", info.Format)
	fmt.Printf("Depth:      %s\n", info.ColorDepth)
	fmt.Printf("Alpha:      %t\n", info.HasAlpha)
	fmt.Printf("File size:  %d bytes\n", info.FileSizeBytes)
	return nil
}

func runPalette(args []string) error {
	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	var (
		input string
		count int
	)
	fs.StringVar(&input, "input", "", "Input image path")
	fs.StringVar(&input, "i", "", "Input image path (shorthand)")
	fs.IntVar(&count, "count", 5, "Number of dominant colors to report")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if input == "" {
		fs.Usage()
		return fmt.Errorf("palette: -input is required")
	}

	img, _, err := imaging.Load(input)
	if err != nil {
		return err
	}

	colors, err := imaging.DominantColors(img, count)
	if err != nil {
		return err
	}

	for _, c := range colors {
		fmt.Printf("%s  %5.1f%%\n", c.Hex, c.Percentage)
	}
	return nil
}
