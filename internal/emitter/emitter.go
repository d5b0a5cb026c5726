package emitter

import (
	"image"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// Walk calls fn once per pixel of img in row-major order with the record
// for that cell. Coordinates are relative to the image origin. Walk stops
// at the first error returned by fn.
func Walk(img image.Image, placedBy string, fn func(canvas.Record) error) error {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			rec := canvas.Record{
				X:        x,
				Y:        y,
				Color:    canvas.ColorOf(img.At(b.Min.X+x, b.Min.Y+y)),
				PlacedBy: placedBy,
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// Records returns all records for img in row-major order.
func Records(img image.Image, placedBy string) []canvas.Record {
	b := img.Bounds()
	records := make([]canvas.Record, 0, b.Dx()*b.Dy())
	_ = Walk(img, placedBy, func(r canvas.Record) error {
		records = append(records, r)
		return nil
	})
	return records
}
