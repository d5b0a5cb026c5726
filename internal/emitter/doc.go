// Package emitter turns a resampled grid into seed records and writes them
// as a CSV file for the canvas database loader.
//
// Records are produced in row-major order: y ascending in the outer loop,
// x ascending in the inner loop, so the first row is (0,0), then (1,0).
// Every grid cell yields exactly one record and no coordinate repeats.
//
// The CSV file is UTF-8 with the header x,y,r,g,b,placed_by.
package emitter
