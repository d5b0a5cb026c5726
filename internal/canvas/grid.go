package canvas

import "fmt"

// Default canvas dimensions, matching the collaborative canvas database.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// Grid describes the fixed target raster that every source image is
// resampled onto.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultGrid returns the 100x100 canvas grid.
func DefaultGrid() Grid {
	return Grid{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate reports an InvalidConfiguration error if either dimension is
// not positive.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return Invalidf("validate grid", "dimensions must be positive, got %dx%d", g.Width, g.Height)
	}
	return nil
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether (x, y) is a cell of the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
