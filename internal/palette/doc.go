// Package palette maps arbitrary colors onto a fixed list of named canvas
// colors.
//
// A Palette is immutable once built. Nearest picks the entry with the
// smallest Euclidean distance in 8-bit RGB space,
//
//	sqrt((r1-r2)² + (g1-g2)² + (b1-b2)²)
//
// and breaks ties in favor of the entry that appears first. An empty
// palette cannot be built: New, Parse and LoadFile report
// canvas.ErrInvalidConfiguration instead.
//
// # Palette Files
//
// LoadFile and Parse read one entry per line:
//
//	# canvas colors
//	Red #FF4500
//	Light Green #7EED56
//	#FFFFFF
//
// The last field is the color in "#RRGGBB" or "#RGB" form; anything before
// it is the name. Blank lines are skipped. A line starting with "#" is a
// comment unless both its first and last words are colors, so
// "#fff is white" is a comment while "#FFF" and "#FFFFFF #FFFFFF" are
// entries.
package palette
