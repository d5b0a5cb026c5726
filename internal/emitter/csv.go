package emitter

import (
	"encoding/csv"
	"image"
	"io"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// WriteCSV writes the header and one row per cell of img to w and returns
// the number of data rows written. Rows end in CRLF.
func WriteCSV(w io.Writer, img image.Image, placedBy string) (int, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(canvas.Header); err != nil {
		return 0, err
	}

	rows := 0
	err := Walk(img, placedBy, func(r canvas.Record) error {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
		rows++
		return nil
	})
	if err != nil {
		return rows, err
	}

	cw.Flush()
	return rows, cw.Error()
}

// WriteFile writes the seed CSV for img to path. The file appears only once
// it is complete; failures are canvas.ErrWrite and leave no partial file.
func WriteFile(path string, img image.Image, placedBy string) (int, error) {
	var rows int
	err := canvas.WriteAtomic("write csv", path, func(w io.Writer) error {
		var err error
		rows, err = WriteCSV(w, img, placedBy)
		return err
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}
