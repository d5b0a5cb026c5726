package palette

import (
	"image"
	"math"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// Entry is a named palette color.
type Entry struct {
	Name  string       `json:"name"`
	Color canvas.Color `json:"color"`
}

// Palette is a fixed, non-empty, ordered list of colors.
type Palette struct {
	entries []Entry
}

// New builds a palette from entries, in the given order.
// It fails with canvas.ErrInvalidConfiguration if entries is empty.
func New(entries ...Entry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, canvas.Invalidf("build palette", "palette has no colors")
	}
	return &Palette{entries: append([]Entry(nil), entries...)}, nil
}

// Default returns the collaborative canvas palette.
func Default() *Palette {
	p, _ := New(canvasColors...)
	return p
}

// canvasColors is the palette offered by the canvas UI, in display order.
var canvasColors = []Entry{
	{"Red", canvas.Color{R: 255, G: 69, B: 0}},
	{"Orange", canvas.Color{R: 255, G: 168, B: 0}},
	{"Yellow", canvas.Color{R: 255, G: 214, B: 53}},
	{"Green", canvas.Color{R: 0, G: 163, B: 104}},
	{"Light Green", canvas.Color{R: 126, G: 237, B: 86}},
	{"Blue", canvas.Color{R: 36, G: 80, B: 164}},
	{"Light Blue", canvas.Color{R: 54, G: 144, B: 234}},
	{"Cyan", canvas.Color{R: 81, G: 233, B: 244}},
	{"Purple", canvas.Color{R: 129, G: 30, B: 159}},
	{"Pink", canvas.Color{R: 255, G: 153, B: 170}},
	{"Brown", canvas.Color{R: 156, G: 105, B: 38}},
	{"Black", canvas.Color{R: 0, G: 0, B: 0}},
	{"Gray", canvas.Color{R: 137, G: 141, B: 144}},
	{"Light Gray", canvas.Color{R: 212, G: 215, B: 217}},
	{"White", canvas.Color{R: 255, G: 255, B: 255}},
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the palette entries in order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Distance returns the Euclidean distance between a and b in RGB space.
func Distance(a, b canvas.Color) float64 {
	return math.Sqrt(float64(distanceSq(a, b)))
}

// distanceSq is the squared distance. Comparing squares orders entries the
// same way as Distance without rounding error.
func distanceSq(a, b canvas.Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Nearest returns the entry closest to c and its index. When several
// entries are equally close the earliest one wins. A color already in the
// palette maps to itself.
func (p *Palette) Nearest(c canvas.Color) (Entry, int) {
	best := -1
	bestDist := math.MaxInt
	for i, e := range p.entries {
		if d := distanceSq(c, e.Color); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Entry{}, -1
	}
	return p.entries[best], best
}

// Quantize returns a copy of img with every pixel replaced by its nearest
// palette color, together with how many pixels mapped to each entry
// (indexed like Entries). Alpha is dropped; the result is fully opaque.
func (p *Palette) Quantize(img *image.NRGBA) (*image.NRGBA, []int) {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	counts := make([]int, len(p.entries))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			e, i := p.Nearest(canvas.ColorOf(img.NRGBAAt(x, y)))
			if i < 0 {
				continue
			}
			counts[i]++
			out.SetNRGBA(x, y, e.Color.NRGBA())
		}
	}
	return out, counts
}
