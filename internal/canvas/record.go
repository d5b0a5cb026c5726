package canvas

import "strconv"

// Header is the fixed column order of the seed file.
var Header = []string{"x", "y", "r", "g", "b", "placed_by"}

// Record is one row of the seed file: a grid cell, its color and the tag of
// whoever placed it. Records are built once per cell and never mutated.
type Record struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Color    Color  `json:"color"`
	PlacedBy string `json:"placed_by"`
}

// Fields returns the record's values in Header order.
func (r Record) Fields() []string {
	return []string{
		strconv.Itoa(r.X),
		strconv.Itoa(r.Y),
		strconv.Itoa(int(r.Color.R)),
		strconv.Itoa(int(r.Color.G)),
		strconv.Itoa(int(r.Color.B)),
		r.PlacedBy,
	}
}
