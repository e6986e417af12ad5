// Package header encodes and decodes the fixed 32-bit watermark header.
//
// The header occupies the first 32 payload-carrying positions of a stego
// image and holds the payload bitmap's dimensions as two 16-bit unsigned
// big-endian integers: bits 0-15 are the width, bits 16-31 the height.
// Its size never varies with the carrier or payload size.
package header

import (
	"errors"
	"fmt"
)

// BitLen is the number of bits the header occupies.
const BitLen = 32

// MaxDimension is the largest width or height a 16-bit header field can hold.
const MaxDimension = 0xFFFF

// ErrDimensionOverflow is returned when a payload dimension is zero or does
// not fit in a 16-bit header field.
var ErrDimensionOverflow = errors.New("payload dimension outside 16-bit header range")

// Encode returns the 32-bit header for a payload of the given dimensions,
// one bit per element, most significant bit of each field first.
func Encode(width, height int) ([]uint8, error) {
	if width < 1 || width > MaxDimension {
		return nil, fmt.Errorf("width %d: %w", width, ErrDimensionOverflow)
	}
	if height < 1 || height > MaxDimension {
		return nil, fmt.Errorf("height %d: %w", height, ErrDimensionOverflow)
	}

	bits := make([]uint8, BitLen)
	for i := 0; i < 16; i++ {
		bits[i] = uint8(width>>(15-i)) & 1
		bits[16+i] = uint8(height>>(15-i)) & 1
	}
	return bits, nil
}

// Decode is the inverse of Encode. It reads exactly BitLen bits and performs
// no plausibility checks; callers decide whether the decoded dimensions make
// sense for the image at hand.
func Decode(bits []uint8) (width, height int) {
	for i := 0; i < 16; i++ {
		width = width<<1 | int(bits[i]&1)
		height = height<<1 | int(bits[16+i]&1)
	}
	return width, height
}
