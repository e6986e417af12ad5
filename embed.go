package stegmark

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"github.com/mrjoshuak/go-stegmark/internal/bitplane"
	"github.com/mrjoshuak/go-stegmark/internal/capacity"
	"github.com/mrjoshuak/go-stegmark/internal/header"
)

// EmbedResult holds the output of a single embedding.
type EmbedResult struct {
	// Stego is the watermarked image. It is a new image; the carrier is
	// never mutated.
	Stego *image.NRGBA

	// PayloadWidth and PayloadHeight are the embedded payload dimensions,
	// after any resize.
	PayloadWidth  int
	PayloadHeight int

	// Resized reports whether the payload was shrunk to fit.
	Resized bool

	// Quality compares the carrier with the stego image. Nil unless
	// Options.ComputeQuality is set.
	Quality *QualityReport
}

// Embed hides payload inside carrier and returns the watermarked image.
//
// The payload is binarized at the configured threshold (color payloads are
// converted to grayscale first). If it does not fit the carrier's capacity
// of one bit per pixel minus the 32-bit header, it is shrunk to the largest
// aspect-preserving size that does, using Lanczos resampling and
// re-binarizing, unless Options.ResizePayload forbids it.
//
// A nil Options uses DefaultOptions.
func Embed(carrier, payload image.Image, o *Options) (*EmbedResult, error) {
	if o == nil {
		o = DefaultOptions()
	}

	cb := carrier.Bounds()
	pb := payload.Bounds()

	plan, err := capacity.Compute(cb.Dx(), cb.Dy(), pb.Dx(), pb.Dy())
	if err != nil {
		return nil, fmt.Errorf("planning capacity: %w", err)
	}
	if plan.Resized && !o.ResizePayload {
		return nil, fmt.Errorf("payload %dx%d exceeds carrier capacity and resizing is disabled: %w",
			pb.Dx(), pb.Dy(), ErrCapacity)
	}

	if plan.Resized {
		payload = resize.Resize(uint(plan.Width), uint(plan.Height), payload, resize.Lanczos3)
	}
	payloadBits := bitplane.Binarize(asGray(payload).Pix, o.threshold())

	headerBits, err := header.Encode(plan.Width, plan.Height)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	stego := cloneNRGBA(carrier)
	bitplane.Write(stego.Pix, headerBits)
	bitplane.Write(stego.Pix[header.BitLen*4:], payloadBits)

	res := &EmbedResult{
		Stego:         stego,
		PayloadWidth:  plan.Width,
		PayloadHeight: plan.Height,
		Resized:       plan.Resized,
	}

	if o.ComputeQuality {
		q, err := Compare(carrier, stego)
		if err != nil {
			return nil, fmt.Errorf("comparing quality: %w", err)
		}
		res.Quality = q
	}

	return res, nil
}
