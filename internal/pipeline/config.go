package pipeline

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/ironsheep/canvas-seed/internal/canvas"
	"github.com/ironsheep/canvas-seed/internal/imaging"
	"github.com/ironsheep/canvas-seed/internal/palette"
)

// Defaults for the command surface.
const (
	DefaultOutputCSV = "pixels_seed.csv"
	DefaultPlacedBy  = "seed_script_import"
)

// Config describes a single run.
type Config struct {
	// SourcePath is the image to convert.
	SourcePath string

	// OutputCSV is where the seed file is written.
	OutputCSV string

	// PlacedBy is written to the placed_by column of every row.
	PlacedBy string

	// Grid is the target raster size.
	Grid canvas.Grid

	// Quantize snaps every cell to the nearest Palette color before output.
	// When false, resampled colors pass through unchanged.
	Quantize bool

	// Palette is used when Quantize is set. Nil means palette.Default().
	Palette *palette.Palette

	// Preview enables writing the preview image.
	Preview bool

	// PreviewPath overrides the derived preview location. See PreviewPath.
	PreviewPath string

	// PreviewOptions controls magnification and the cell overlay.
	PreviewOptions imaging.PreviewOptions

	// Logger receives debug output when Verbose is set. Nil discards it.
	Logger *log.Logger

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns the configuration of a plain run: 100x100 grid,
// canvas palette, preview next to the CSV.
func DefaultConfig() Config {
	return Config{
		OutputCSV:      DefaultOutputCSV,
		PlacedBy:       DefaultPlacedBy,
		Grid:           canvas.DefaultGrid(),
		Quantize:       true,
		Preview:        true,
		PreviewOptions: imaging.PreviewOptions{Scale: 1},
	}
}

// PreviewPath derives the preview location from the CSV path by replacing
// its extension with ".png". If that would name the CSV itself, ".preview.png"
// is used instead.
func PreviewPath(csvPath string) string {
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	p := base + ".png"
	if p == csvPath {
		p = base + ".preview.png"
	}
	return p
}

func (c Config) previewPath() string {
	if c.PreviewPath != "" {
		return c.PreviewPath
	}
	return PreviewPath(c.OutputCSV)
}

// validate checks everything that can be checked before touching the source.
func (c Config) validate() error {
	if c.SourcePath == "" {
		return canvas.Invalidf("validate config", "source image path is required")
	}
	if c.OutputCSV == "" {
		return canvas.Invalidf("validate config", "output CSV path is required")
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Quantize && c.Palette != nil && c.Palette.Len() == 0 {
		return canvas.Invalidf("validate config", "quantization enabled with an empty palette")
	}
	if c.Preview {
		if c.PreviewOptions.Scale < 1 {
			return canvas.Invalidf("validate config", "preview scale must be at least 1, got %d", c.PreviewOptions.Scale)
		}
		if filepath.Clean(c.previewPath()) == filepath.Clean(c.OutputCSV) {
			return canvas.Invalidf("validate config", "preview and CSV share the path %s", c.OutputCSV)
		}
		if c.PreviewOptions.Grid && c.PreviewOptions.GridColor != "" {
			if _, err := imaging.ParseOverlayColor(c.PreviewOptions.GridColor); err != nil {
				return canvas.Invalidf("validate config", "preview grid color: %v", err)
			}
		}
	}
	return nil
}
