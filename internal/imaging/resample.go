package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// Resample maps img onto grid using nearest-neighbor selection.
//
// Each target cell copies the color of exactly one source pixel, the one
// whose center is nearest to the cell center. There is no averaging or
// interpolation in either direction, so upsampling a small image produces
// hard-edged blocks and downsampling never invents colors that are not in
// the source. The result depends only on img and grid.
//
// # Errors
//
//   - canvas.ErrInvalidConfiguration if grid has a non-positive dimension
//   - canvas.ErrDecode if img has no pixels
func Resample(img image.Image, grid canvas.Grid) (*image.NRGBA, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, &canvas.Error{Kind: canvas.ErrDecode, Op: "resample", Err: fmt.Errorf("source image has no pixels")}
	}

	return imaging.Resize(img, grid.Width, grid.Height, imaging.NearestNeighbor), nil
}
