package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/canvas-seed/internal/canvas"
)

// Source is a decoded source image normalized to flat RGB.
//
// Image always has its origin at (0,0) and every pixel is fully opaque.
// The remaining fields describe the file as it was decoded.
type Source struct {
	// Image is the normalized pixel buffer.
	Image *image.NRGBA

	// Format is the name the decoder registered: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string

	// Width is the source width in pixels.
	Width int

	// Height is the source height in pixels.
	Height int

	// HasAlpha indicates whether the decoded image carried any pixel that
	// was not fully opaque. The alpha channel is discarded either way.
	HasAlpha bool
}

// Load opens and decodes the image at path and normalizes it to flat RGB.
//
// # Errors
//
//   - canvas.ErrNotFound if path does not exist
//   - canvas.ErrDecode if the file cannot be read or is not a supported image
//
// # Alpha
//
// Alpha is ignored rather than composited against any background: the
// straight color channels are kept and every pixel is made opaque. See
// canvas.ColorOf.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &canvas.Error{Kind: canvas.ErrNotFound, Op: "open image", Path: path, Err: err}
		}
		return nil, &canvas.Error{Kind: canvas.ErrDecode, Op: "open image", Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &canvas.Error{Kind: canvas.ErrDecode, Op: "decode image", Path: path, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &canvas.Error{
			Kind: canvas.ErrDecode,
			Op:   "decode image",
			Path: path,
			Err:  fmt.Errorf("image has no pixels (%dx%d)", bounds.Dx(), bounds.Dy()),
		}
	}

	return &Source{
		Image:    Flatten(img),
		Format:   format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		HasAlpha: hasAlpha(img),
	}, nil
}

// Flatten copies img into a new NRGBA buffer anchored at (0,0) with every
// pixel forced opaque. Color channels are taken un-premultiplied, so the
// result is what the image shows with its alpha channel dropped.
func Flatten(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// hasAlpha reports whether any pixel of img is not fully opaque.
func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	}
	return true
}
