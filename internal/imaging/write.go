package imaging

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// jpegQuality is used when the preview path asks for JPEG.
const jpegQuality = 95

// WriteImage encodes img to path, choosing the format from the extension:
// ".jpg"/".jpeg" for JPEG, ".bmp" for BMP and PNG for anything else.
//
// The file is written to a temporary name and renamed into place, so a
// failed write never leaves a partial image. Failures are canvas.ErrWrite.
func WriteImage(path string, img image.Image) error {
	encode := encoderFor(path)
	return canvas.WriteAtomic("write preview", path, func(w io.Writer) error {
		return encode(w, img)
	})
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality)
	case ".bmp":
		return imgio.BMPEncoder()
	default:
		return imgio.PNGEncoder()
	}
}
