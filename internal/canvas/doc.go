// Package canvas holds the vocabulary shared by every stage of the seeding
// pipeline: the target grid, the 8-bit color triple, the pixel record that
// becomes one row of the seed file, and the error kinds reported by a run.
//
// # Coordinate System
//
// Grid coordinates are 0-based with the origin at the top-left cell:
//   - X: column (0 = leftmost cell)
//   - Y: row (0 = topmost cell)
//
// A grid of Width W and Height H holds exactly W*H cells, and every valid
// cell satisfies 0 <= x < W and 0 <= y < H.
//
// # Error Handling
//
// Failures are reported as *Error values whose Kind is one of the sentinel
// errors below. Match them with errors.Is:
//
//	if errors.Is(err, canvas.ErrNotFound) {
//	    // source image path does not exist
//	}
package canvas
