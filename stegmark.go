// Package stegmark hides a binary payload bitmap inside a carrier image by
// overwriting the least significant bit of one color channel, and recovers
// it again.
//
// The payload is typically a scannable code pattern. Embedding writes a
// fixed 32-bit header (payload width and height, 16-bit big-endian each)
// followed by the payload's pixels, one bit per carrier pixel in row-major
// order, into the blue channel's LSB. Every other channel and every pixel
// beyond the bit sequence stays bit-identical to the carrier, so the visual
// distortion is at most one intensity step per pixel.
//
// Basic usage for embedding:
//
//	res, err := stegmark.Embed(carrier, payload, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(out, res.Stego)
//
// Basic usage for extraction:
//
//	ext, err := stegmark.Extract(img)
//	if errors.Is(err, stegmark.ErrNoWatermark) {
//	    // img carries no (valid) watermark; an expected outcome.
//	}
//
// All operations are pure functions of their inputs: no input image is ever
// mutated and identical inputs produce identical outputs, so independent
// images can be processed concurrently without locking.
package stegmark

import (
	"image"
	"image/draw"
)

// DefaultThreshold is the intensity at or above which a payload pixel is
// treated as set when binarizing.
const DefaultThreshold = 128

// Options holds the embedding options.
type Options struct {
	// ResizePayload allows shrinking the payload (preserving aspect ratio)
	// when it does not fit the carrier. If false, an oversized payload
	// fails with ErrCapacity instead.
	ResizePayload bool

	// ComputeQuality attaches a carrier-vs-stego QualityReport to the
	// embed result.
	ComputeQuality bool

	// Threshold is the binarization threshold for payload intensities.
	// Zero means DefaultThreshold.
	Threshold uint8

	// Workers bounds the number of images processed concurrently by
	// EmbedAll. Zero means one worker per CPU.
	Workers int
}

// DefaultOptions returns the default embedding options.
func DefaultOptions() *Options {
	return &Options{
		ResizePayload:  true,
		ComputeQuality: true,
		Threshold:      DefaultThreshold,
	}
}

func (o *Options) threshold() uint8 {
	if o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// cloneNRGBA returns a fresh zero-origin NRGBA copy of img. NRGBA sources
// copy byte for byte; other formats are converted to 8-bit non-premultiplied
// RGBA first.
func cloneNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// asNRGBA returns img itself when it is already a packed zero-origin NRGBA,
// avoiding a copy on the read-only paths. Anything else is converted.
func asNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok &&
		m.Rect.Min == (image.Point{}) && m.Stride == 4*m.Rect.Dx() {
		return m
	}
	return cloneNRGBA(img)
}

// asGray returns the 8-bit grayscale rendering of img.
func asGray(img image.Image) *image.Gray {
	if m, ok := img.(*image.Gray); ok &&
		m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx() {
		return m
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
