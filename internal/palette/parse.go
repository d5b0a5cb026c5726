package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// LoadFile reads a palette file. A missing file is canvas.ErrNotFound;
// unreadable or malformed content and files without any color are
// canvas.ErrInvalidConfiguration.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := canvas.ErrInvalidConfiguration
		if errors.Is(err, fs.ErrNotExist) {
			kind = canvas.ErrNotFound
		}
		return nil, &canvas.Error{Kind: kind, Op: "open palette", Path: path, Err: err}
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, &canvas.Error{Kind: canvas.ErrInvalidConfiguration, Op: "parse palette", Path: path, Err: err}
	}
	return p, nil
}

// Parse reads palette entries, one per line, in the format described in
// the package documentation.
func Parse(r io.Reader) (*Palette, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if strings.HasPrefix(fields[0], "#") && !(isHexColor(fields[0]) && isHexColor(fields[len(fields)-1])) {
			continue // comment
		}

		hex := fields[len(fields)-1]
		c, err := colorful.Hex(hex)
		if err != nil || !isHexColor(hex) {
			return nil, fmt.Errorf("line %d: %q is not a #RRGGBB color", lineNo, hex)
		}
		cr, cg, cb := c.RGB255()
		col := canvas.Color{R: cr, G: cg, B: cb}

		name := strings.Join(fields[:len(fields)-1], " ")
		if name == "" {
			name = col.Hex()
		}
		entries = append(entries, Entry{Name: name, Color: col})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}

	return New(entries...)
}

func isHexColor(s string) bool {
	if len(s) != 7 && len(s) != 4 {
		return false
	}
	if s[0] != '#' || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// Format writes p in the palette file format; Parse reads it back.
func Format(w io.Writer, p *Palette) error {
	for _, e := range p.entries {
		c := colorful.Color{R: float64(e.Color.R) / 255, G: float64(e.Color.G) / 255, B: float64(e.Color.B) / 255}
		if _, err := fmt.Fprintf(w, "%s %s\n", e.Name, strings.ToUpper(c.Hex())); err != nil {
			return err
		}
	}
	return nil
}
