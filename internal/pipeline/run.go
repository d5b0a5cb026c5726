package pipeline

import (
	"errors"
	"image"
	"io"
	"log"
	"time"

	"github.com/ironsheep/canvas-seed/internal/canvas"
	"github.com/ironsheep/canvas-seed/internal/emitter"
	"github.com/ironsheep/canvas-seed/internal/imaging"
	"github.com/ironsheep/canvas-seed/internal/palette"
)

// SourceInfo describes the decoded source image.
type SourceInfo struct {
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	HasAlpha bool   `json:"has_alpha"`
}

// Usage is how many cells were snapped to one palette entry.
type Usage struct {
	Entry palette.Entry `json:"entry"`
	Cells int           `json:"cells"`
}

// OutputResult is the outcome of writing one artifact.
type OutputResult struct {
	Path string `json:"path"`

	// Rows is the number of CSV data rows written; zero for the preview.
	Rows int `json:"rows,omitempty"`

	Err error `json:"-"`
}

// OK reports whether the artifact was written.
func (r OutputResult) OK() bool {
	return r.Err == nil
}

// Report summarizes a run that got as far as writing outputs.
type Report struct {
	Source SourceInfo  `json:"source"`
	Grid   canvas.Grid `json:"grid"`

	// Quantized is true when the palette stage ran.
	Quantized bool `json:"quantized"`

	// PaletteUsage lists every palette entry in order with its cell count.
	// Empty when Quantized is false.
	PaletteUsage []Usage `json:"palette_usage,omitempty"`

	CSV OutputResult `json:"csv"`

	// Preview is nil when preview output is disabled.
	Preview *OutputResult `json:"preview,omitempty"`
}

// Err joins the errors of all failed outputs, or returns nil.
func (r *Report) Err() error {
	errs := []error{r.CSV.Err}
	if r.Preview != nil {
		errs = append(errs, r.Preview.Err)
	}
	return errors.Join(errs...)
}

// Run executes one pass over cfg.
//
// Configuration, load and decode failures return a nil Report and an error
// of kind canvas.ErrInvalidConfiguration, canvas.ErrNotFound or
// canvas.ErrDecode; no file is written in that case. Otherwise the Report
// is always returned, and the error is the Report's joined output errors.
func Run(cfg Config) (*Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	debugf := func(format string, args ...any) {
		if cfg.Verbose {
			logger.Printf(format, args...)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	src, err := imaging.Load(cfg.SourcePath)
	if err != nil {
		return nil, err
	}
	debugf("Loaded %s: %s %dx%d (alpha=%v)", cfg.SourcePath, src.Format, src.Width, src.Height, src.HasAlpha)

	grid, err := imaging.Resample(src.Image, cfg.Grid)
	if err != nil {
		return nil, err
	}
	debugf("Resampled to %s", cfg.Grid)

	report := &Report{
		Source: SourceInfo{
			Format:   src.Format,
			Width:    src.Width,
			Height:   src.Height,
			HasAlpha: src.HasAlpha,
		},
		Grid: cfg.Grid,
	}

	if cfg.Quantize {
		pal := cfg.Palette
		if pal == nil {
			pal = palette.Default()
		}
		var counts []int
		grid, counts = pal.Quantize(grid)
		report.Quantized = true
		for i, e := range pal.Entries() {
			report.PaletteUsage = append(report.PaletteUsage, Usage{Entry: e, Cells: counts[i]})
			debugf("  %-12s %s %5d cells", e.Name, e.Color.Hex(), counts[i])
		}
		debugf("Quantized against %d palette colors", pal.Len())
	}

	report.CSV = writeCSV(cfg, grid, debugf)
	if cfg.Preview {
		res := writePreview(cfg, grid, debugf)
		report.Preview = &res
	}

	return report, report.Err()
}

// writeCSV and writePreview are independent attempts; neither looks at the
// other's result.

func writeCSV(cfg Config, grid *image.NRGBA, debugf func(string, ...any)) OutputResult {
	start := time.Now()
	rows, err := emitter.WriteFile(cfg.OutputCSV, grid, cfg.PlacedBy)
	if err != nil {
		debugf("CSV write failed after %s: %v", time.Since(start), err)
		return OutputResult{Path: cfg.OutputCSV, Err: err}
	}
	debugf("Wrote %d rows to %s in %s", rows, cfg.OutputCSV, time.Since(start))
	return OutputResult{Path: cfg.OutputCSV, Rows: rows}
}

func writePreview(cfg Config, grid *image.NRGBA, debugf func(string, ...any)) OutputResult {
	path := cfg.previewPath()
	start := time.Now()

	img, err := imaging.RenderPreview(grid, cfg.PreviewOptions)
	if err == nil {
		err = imaging.WriteImage(path, img)
	}
	if err != nil {
		debugf("Preview write failed after %s: %v", time.Since(start), err)
		return OutputResult{Path: path, Err: err}
	}
	debugf("Wrote preview %s in %s", path, time.Since(start))
	return OutputResult{Path: path}
}
