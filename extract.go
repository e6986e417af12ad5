package stegmark

import (
	"fmt"
	"image"

	"github.com/mrjoshuak/go-stegmark/internal/bitplane"
	"github.com/mrjoshuak/go-stegmark/internal/header"
)

// Extraction holds a payload recovered from a stego image.
type Extraction struct {
	// Bitmap is the reconstructed payload: a grayscale image whose pixels
	// are exactly 0 or 255.
	Bitmap *image.Gray

	// Width and Height are the payload dimensions from the header.
	Width  int
	Height int
}

// Extract reads the watermark hidden in img.
//
// The first 32 blue-channel LSBs decode to the payload dimensions. When the
// decoded dimensions are implausible for the image at hand (zero, or larger
// than the remaining capacity), Extract returns ErrNoWatermark: running
// extraction against arbitrary images is expected, and an absent watermark
// is a detection result rather than a crash. The input is never mutated.
func Extract(img image.Image) (*Extraction, error) {
	m := asNRGBA(img)
	capBits := bitplane.Capacity(m.Pix)
	if capBits <= header.BitLen {
		return nil, fmt.Errorf("image %dx%d is smaller than the header: %w",
			m.Rect.Dx(), m.Rect.Dy(), ErrNoWatermark)
	}

	w, h := header.Decode(bitplane.Read(m.Pix, header.BitLen))
	if w == 0 || h == 0 || w*h > capBits-header.BitLen {
		return nil, fmt.Errorf("implausible header %dx%d for %dx%d image: %w",
			w, h, m.Rect.Dx(), m.Rect.Dy(), ErrNoWatermark)
	}

	bits := bitplane.Read(m.Pix[header.BitLen*4:], w*h)

	bitmap := image.NewGray(image.Rect(0, 0, w, h))
	copy(bitmap.Pix, bitplane.Expand(bits))

	return &Extraction{Bitmap: bitmap, Width: w, Height: h}, nil
}
