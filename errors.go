package stegmark

import (
	"errors"

	"github.com/mrjoshuak/go-stegmark/internal/capacity"
	"github.com/mrjoshuak/go-stegmark/internal/header"
)

// Error taxonomy. Every operation returns one of these (wrapped with
// context) or succeeds; a failure is always per-image and never aborts a
// batch. Compare with errors.Is.
var (
	// ErrCapacity means the payload cannot fit the carrier even after
	// maximal aspect-preserving shrinking, or the carrier is too small to
	// hold the header at all.
	ErrCapacity = capacity.ErrCapacity

	// ErrDimensionOverflow means a payload dimension is zero or exceeds
	// the 16-bit header field.
	ErrDimensionOverflow = header.ErrDimensionOverflow

	// ErrNoWatermark means extraction found no plausible watermark header.
	// This is the normal result of scanning an unwatermarked image, not a
	// processing failure.
	ErrNoWatermark = errors.New("no watermark found")

	// ErrDimensionMismatch means a quality comparison was attempted on
	// images of different sizes.
	ErrDimensionMismatch = errors.New("image dimensions differ")
)
