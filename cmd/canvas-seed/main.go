package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/canvas-seed/internal/canvas"
	"github.com/ironsheep/canvas-seed/internal/imaging"
	"github.com/ironsheep/canvas-seed/internal/palette"
	"github.com/ironsheep/canvas-seed/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK          = 0
	exitInput       = 1 // source missing or undecodable
	exitUsage       = 2 // bad flags or invalid configuration
	exitWriteFailed = 3 // at least one output could not be written
)

// logLevelEnv enables debug logging when set to "debug".
const logLevelEnv = "CANVAS_SEED_LOG_LEVEL"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options is the parsed command line.
type options struct {
	image            string
	outputCSV        string
	placedBy         string
	width            int
	height           int
	quantize         bool
	palettePath      string
	printPalette     bool
	preview          bool
	previewPath      string
	previewScale     int
	previewGrid      bool
	previewGridColor string
	version          bool
	help             bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("canvas-seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parse errors are returned, not printed

	fs.StringVar(&opts.outputCSV, "output_csv", pipeline.DefaultOutputCSV, "Path for the output CSV file")
	fs.StringVar(&opts.placedBy, "placed_by", pipeline.DefaultPlacedBy, "Identifier written to the placed_by column")
	fs.IntVar(&opts.width, "width", canvas.DefaultWidth, "Canvas width in cells")
	fs.IntVar(&opts.height, "height", canvas.DefaultHeight, "Canvas height in cells")
	fs.BoolVar(&opts.quantize, "quantize", true, "Snap colors to the nearest palette color")
	fs.StringVar(&opts.palettePath, "palette", "", "Palette file (one \"name #RRGGBB\" per line); default is the canvas palette")
	fs.BoolVar(&opts.printPalette, "print_palette", false, "Print the active palette and exit")
	fs.BoolVar(&opts.preview, "preview", true, "Write a preview image of the resampled grid")
	fs.StringVar(&opts.previewPath, "preview_path", "", "Preview image path; default is the CSV path with a .png extension")
	fs.IntVar(&opts.previewScale, "preview_scale", 1, "Magnify the preview by this integer factor")
	fs.BoolVar(&opts.previewGrid, "preview_grid", false, "Draw cell boundaries on the preview (preview_scale >= 3)")
	fs.StringVar(&opts.previewGridColor, "preview_grid_color", imaging.DefaultOverlayColor, "Cell boundary color as #RRGGBB or #RRGGBBAA")
	fs.BoolVar(&opts.version, "version", false, "Print version information")
	fs.BoolVar(&opts.version, "v", false, "Print version information")
	fs.BoolVar(&opts.help, "help", false, "Print this help message")
	fs.BoolVar(&opts.help, "h", false, "Print this help message")
	return fs
}

// parseArgs parses flags that may appear before or after the image path.
func parseArgs(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return opts, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if opts.version || opts.help || opts.printPalette {
		return opts, nil
	}
	switch len(positional) {
	case 0:
		return opts, errors.New("missing image path")
	case 1:
		opts.image = positional[0]
	default:
		return opts, fmt.Errorf("expected one image path, got %d", len(positional))
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "canvas-seed - convert an image into a pixel seed CSV for the canvas database")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: canvas-seed [options] IMAGE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=debug    Enable debug logging\n", logLevelEnv)
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	debug := os.Getenv(logLevelEnv) == "debug"

	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr)
		return exitUsage
	}

	switch {
	case opts.version:
		fmt.Fprintf(stdout, "canvas-seed %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	case opts.help:
		printUsage(stdout)
		return exitOK
	}

	if debug {
		logger.Printf("canvas-seed v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	pal := palette.Default()
	if opts.palettePath != "" {
		pal, err = palette.LoadFile(opts.palettePath)
		if err != nil {
			logger.Printf("Error: %v", err)
			return exitCode(err)
		}
	}

	if opts.printPalette {
		if err := palette.Format(stdout, pal); err != nil {
			logger.Printf("Error: %v", err)
			return exitWriteFailed
		}
		return exitOK
	}

	cfg := pipeline.Config{
		SourcePath:  opts.image,
		OutputCSV:   opts.outputCSV,
		PlacedBy:    opts.placedBy,
		Grid:        canvas.Grid{Width: opts.width, Height: opts.height},
		Quantize:    opts.quantize,
		Palette:     pal,
		Preview:     opts.preview,
		PreviewPath: opts.previewPath,
		PreviewOptions: imaging.PreviewOptions{
			Scale:     opts.previewScale,
			Grid:      opts.previewGrid,
			GridColor: opts.previewGridColor,
		},
		Logger:  logger,
		Verbose: debug,
	}

	report, err := pipeline.Run(cfg)
	if report == nil {
		logger.Printf("Error: %v", err)
		return exitCode(err)
	}

	if report.CSV.OK() {
		fmt.Fprintf(stdout, "Successfully generated CSV: %s (%d rows)\n", report.CSV.Path, report.CSV.Rows)
	} else {
		logger.Printf("Error: could not write CSV file %s: %v", report.CSV.Path, report.CSV.Err)
	}
	if report.Preview != nil {
		if report.Preview.OK() {
			fmt.Fprintf(stdout, "Successfully generated preview: %s\n", report.Preview.Path)
		} else {
			logger.Printf("Error: could not write preview image %s: %v", report.Preview.Path, report.Preview.Err)
		}
	}

	if err != nil {
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error kind to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, canvas.ErrNotFound), errors.Is(err, canvas.ErrDecode):
		return exitInput
	case errors.Is(err, canvas.ErrInvalidConfiguration):
		return exitUsage
	default:
		return exitWriteFailed
	}
}
