// Package capacity decides whether a payload bitmap fits a carrier image
// and, when it does not, computes the largest aspect-preserving size that
// does.
package capacity

import (
	"errors"
	"fmt"
	"math"

	"github.com/mrjoshuak/go-stegmark/internal/header"
)

// ErrCapacity is returned when a carrier cannot hold any usable payload,
// or when the requested payload cannot fit even after maximal shrinking.
var ErrCapacity = errors.New("carrier too small for payload")

// Plan describes the payload dimensions to embed.
type Plan struct {
	// Width and Height are the payload dimensions to use. They equal the
	// input dimensions unless Resized is true.
	Width  int
	Height int

	// Resized reports whether the payload must be shrunk before embedding.
	Resized bool
}

// Compute plans the embedding of a payloadW x payloadH bitmap into a
// carrierW x carrierH carrier. The carrier holds one bit per pixel, the
// first header.BitLen of which are reserved. The result is deterministic
// for given inputs.
func Compute(carrierW, carrierH, payloadW, payloadH int) (Plan, error) {
	if payloadW < 1 || payloadH < 1 {
		return Plan{}, fmt.Errorf("invalid payload dimensions %dx%d", payloadW, payloadH)
	}

	available := carrierW*carrierH - header.BitLen
	if available <= 0 {
		return Plan{}, fmt.Errorf("carrier %dx%d has no capacity beyond the header: %w",
			carrierW, carrierH, ErrCapacity)
	}

	if payloadW*payloadH <= available {
		return Plan{Width: payloadW, Height: payloadH}, nil
	}

	// Closed-form estimate of the scale factor, then decrement by the
	// smallest step that can change a dimension until the area fits.
	scale := math.Sqrt(float64(available) / float64(payloadW*payloadH))
	step := 1 / float64(max(payloadW, payloadH))
	for ; scale > 0; scale -= step {
		w := int(float64(payloadW) * scale)
		h := int(float64(payloadH) * scale)
		if w < 1 || h < 1 {
			break
		}
		if w*h <= available {
			return Plan{Width: w, Height: h, Resized: true}, nil
		}
	}

	return Plan{}, fmt.Errorf("carrier %dx%d cannot hold any resized form of payload %dx%d: %w",
		carrierW, carrierH, payloadW, payloadH, ErrCapacity)
}
