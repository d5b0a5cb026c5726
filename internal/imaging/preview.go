package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// DefaultOverlayColor is the cell boundary color used when none is given:
// black at 25% opacity.
const DefaultOverlayColor = "#00000040"

// minOverlayScale is the smallest magnification at which cell boundaries
// leave room for the cell color itself.
const minOverlayScale = 3

// PreviewOptions controls how a resampled grid is rendered for viewing.
type PreviewOptions struct {
	// Scale is the integer magnification; each grid cell becomes a
	// Scale x Scale block. Must be at least 1.
	Scale int

	// Grid draws cell boundary lines when Scale is at least 3.
	Grid bool

	// GridColor is the boundary color as "#RRGGBB" or "#RRGGBBAA".
	// Empty means DefaultOverlayColor.
	GridColor string
}

// RenderPreview returns the image that is written as the preview artifact.
//
// The grid is magnified with nearest-neighbor blocks and, if requested,
// overlaid with cell boundaries. The input is not modified.
func RenderPreview(grid *image.NRGBA, opts PreviewOptions) (*image.NRGBA, error) {
	out, err := Magnify(grid, opts.Scale)
	if err != nil {
		return nil, err
	}
	if !opts.Grid || opts.Scale < minOverlayScale {
		return out, nil
	}

	hex := opts.GridColor
	if hex == "" {
		hex = DefaultOverlayColor
	}
	lineColor, err := ParseOverlayColor(hex)
	if err != nil {
		return nil, canvas.Invalidf("parse grid color", "%v", err)
	}
	return OverlayGrid(out, opts.Scale, lineColor), nil
}

// Magnify scales img up by an integer factor using nearest-neighbor
// selection, so each source pixel becomes a scale x scale block of the
// same color.
func Magnify(img *image.NRGBA, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, canvas.Invalidf("magnify", "preview scale must be at least 1, got %d", scale)
	}
	if scale == 1 {
		return imaging.Clone(img), nil
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor), nil
}

// OverlayGrid draws a line along the top and left edge of every cell after
// the first, with cells cell pixels apart. Lines are composited over the
// image so a translucent color tints rather than replaces the cell color.
func OverlayGrid(img *image.NRGBA, cell int, c color.Color) *image.NRGBA {
	bounds := img.Bounds()
	result := imaging.Clone(img)
	src := image.NewUniform(c)

	// Vertical lines
	for x := cell; x < bounds.Dx(); x += cell {
		r := image.Rect(x, 0, x+1, bounds.Dy())
		draw.Draw(result, r, src, image.Point{}, draw.Over)
	}

	// Horizontal lines
	for y := cell; y < bounds.Dy(); y += cell {
		r := image.Rect(0, y, bounds.Dx(), y+1)
		draw.Draw(result, r, src, image.Point{}, draw.Over)
	}

	return result
}

// ParseOverlayColor parses a hex color string like "#FF0000" or "#FF000080".
func ParseOverlayColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	var alpha uint8 = 0xff
	switch len(hex) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	if strings.Trim(hex[1:], "0123456789abcdefABCDEF") != "" {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
