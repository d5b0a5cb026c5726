// Package imaging loads source images, resamples them onto the canvas grid
// and renders the preview artifact.
//
// # Pipeline Stages
//
//   - Load: decode a PNG, JPEG, GIF, BMP, TIFF or WebP file and normalize
//     it to flat RGB (alpha discarded, origin at (0,0))
//   - Resample: map the normalized image onto a canvas.Grid using
//     nearest-neighbor selection
//   - RenderPreview / WriteImage: magnify the grid into blocks, optionally
//     draw cell boundaries, and write it as PNG, JPEG or BMP
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner, X increasing rightward and Y increasing downward. Every
// image returned by this package has its bounds anchored at (0,0).
//
// # Nearest-Neighbor Resampling
//
// Resampling never blends. Each target cell takes the color of the single
// source pixel whose center is nearest, so the output keeps hard pixel
// edges whether the source is larger or smaller than the grid.
//
// # Error Handling
//
// Errors are *canvas.Error values: canvas.ErrNotFound and canvas.ErrDecode
// from Load, canvas.ErrInvalidConfiguration for bad dimensions or colors,
// and canvas.ErrWrite from WriteImage.
package imaging
