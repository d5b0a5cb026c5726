package emitter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// gradientImage gives every cell a distinct color derived from its position.
func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), uint8(x + y), 255})
		}
	}
	return img
}

func TestRecords_RowMajorOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], []byte{255, 0, 0, 255})
	}

	records := Records(img, "tester")

	want := []canvas.Record{
		{X: 0, Y: 0, Color: canvas.Color{R: 255}, PlacedBy: "tester"},
		{X: 1, Y: 0, Color: canvas.Color{R: 255}, PlacedBy: "tester"},
		{X: 0, Y: 1, Color: canvas.Color{R: 255}, PlacedBy: "tester"},
		{X: 1, Y: 1, Color: canvas.Color{R: 255}, PlacedBy: "tester"},
	}
	if len(records) != len(want) {
		t.Fatalf("records: got %d, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestRecords_FullCoverage(t *testing.T) {
	grid := canvas.Grid{Width: 13, Height: 7}
	img := gradientImage(grid.Width, grid.Height)

	records := Records(img, "seed")
	if len(records) != grid.Cells() {
		t.Fatalf("records: got %d, want %d", len(records), grid.Cells())
	}

	seen := make(map[[2]int]bool, len(records))
	for i, r := range records {
		if !grid.Contains(r.X, r.Y) {
			t.Errorf("record %d out of grid: (%d,%d)", i, r.X, r.Y)
		}
		key := [2]int{r.X, r.Y}
		if seen[key] {
			t.Errorf("duplicate coordinate (%d,%d)", r.X, r.Y)
		}
		seen[key] = true

		if want := (canvas.Color{R: uint8(r.X), G: uint8(r.Y), B: uint8(r.X + r.Y)}); r.Color != want {
			t.Errorf("record (%d,%d) color: got %v, want %v", r.X, r.Y, r.Color, want)
		}
		if i > 0 {
			prev := records[i-1]
			if r.Y < prev.Y || (r.Y == prev.Y && r.X <= prev.X) {
				t.Errorf("record %d (%d,%d) not after (%d,%d)", i, r.X, r.Y, prev.X, prev.Y)
			}
		}
	}
}

func TestRecords_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	img.SetNRGBA(10, 20, color.NRGBA{1, 2, 3, 255})
	img.SetNRGBA(11, 20, color.NRGBA{4, 5, 6, 255})

	records := Records(img, "x")
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}
	if records[0].X != 0 || records[0].Y != 0 || records[0].Color != (canvas.Color{R: 1, G: 2, B: 3}) {
		t.Errorf("first record: got %+v", records[0])
	}
	if records[1].X != 1 || records[1].Color != (canvas.Color{R: 4, G: 5, B: 6}) {
		t.Errorf("second record: got %+v", records[1])
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Walk(gradientImage(5, 5), "x", func(canvas.Record) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestWriteCSV(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 128, 255, 255})

	var buf bytes.Buffer
	rows, err := WriteCSV(&buf, img, "seed_script_import")
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows: got %d, want 2", rows)
	}

	want := "x,y,r,g,b,placed_by\r\n" +
		"0,0,255,0,0,seed_script_import\r\n" +
		"1,0,0,128,255,seed_script_import\r\n"
	if buf.String() != want {
		t.Errorf("output:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteCSV_QuotesTag(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, img, `import, "v2"`); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if got := records[1][5]; got != `import, "v2"` {
		t.Errorf("placed_by: got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	grid := canvas.Grid{Width: 10, Height: 10}
	path := filepath.Join(t.TempDir(), "pixels_seed.csv")

	rows, err := WriteFile(path, gradientImage(grid.Width, grid.Height), "seed")
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if rows != grid.Cells() {
		t.Errorf("rows: got %d, want %d", rows, grid.Cells())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	if len(lines) != grid.Cells()+1 {
		t.Errorf("lines: got %d, want %d", len(lines), grid.Cells()+1)
	}
	if lines[0] != "x,y,r,g,b,placed_by" {
		t.Errorf("header: got %q", lines[0])
	}
	if lines[len(lines)-1] != "9,9,9,9,18,seed" {
		t.Errorf("last row: got %q", lines[len(lines)-1])
	}
}

func TestWriteFile_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pixels_seed.csv")
	_, err := WriteFile(path, gradientImage(2, 2), "seed")
	if !errors.Is(err, canvas.ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
}

func TestWriteFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	img := gradientImage(20, 20)
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	if _, err := WriteFile(a, img, "seed"); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(b, img, "seed"); err != nil {
		t.Fatal(err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if !bytes.Equal(da, db) {
		t.Error("two writes of the same grid differ")
	}
}
