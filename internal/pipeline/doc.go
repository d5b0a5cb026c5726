// Package pipeline runs one seeding pass: load the source image, resample
// it onto the canvas grid, optionally snap every cell to the palette, and
// write the seed CSV and the preview image.
//
// Both quantizing and pass-through runs go through the same Run call;
// Config.Quantize selects whether the palette stage executes.
//
// Input failures (missing or undecodable image, bad configuration) stop the
// run before anything is written. Once the grid is ready, the CSV and the
// preview are written as independent attempts: a failure in one is
// recorded in the Report and does not prevent the other.
package pipeline
