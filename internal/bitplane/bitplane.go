// Package bitplane reads and writes the least-significant-bit plane of one
// color channel in an 8-bit RGBA pixel buffer.
//
// All functions operate on the flattened pixel slice of an NRGBA image in a
// single linear pass, touching only the designated channel's byte of each
// pixel. Carrier images can be multi-megapixel, so nothing here goes through
// per-pixel color model conversions.
package bitplane

const (
	// channelOffset selects the blue byte within each 4-byte RGBA pixel.
	// The channel is fixed by convention for the lifetime of a deployment;
	// stego images written with one channel cannot be read with another.
	channelOffset = 2

	pixelStride = 4
)

// Capacity returns the number of bits a pixel buffer can carry, one per pixel.
func Capacity(pix []uint8) int {
	return len(pix) / pixelStride
}

// Write overwrites the designated channel's LSB of the first len(bits)
// pixels with the given bits, in row-major pixel order. Pixels beyond
// len(bits) and all other channels are left untouched. The caller must have
// verified that len(bits) <= Capacity(pix).
func Write(pix []uint8, bits []uint8) {
	p := channelOffset
	for _, b := range bits {
		pix[p] = pix[p]&^1 | b&1
		p += pixelStride
	}
}

// Read returns the designated channel's LSB of the first n pixels, in
// row-major pixel order.
func Read(pix []uint8, n int) []uint8 {
	bits := make([]uint8, n)
	p := channelOffset
	for i := range bits {
		bits[i] = pix[p] & 1
		p += pixelStride
	}
	return bits
}

// Binarize maps an 8-bit grayscale plane to bits: values at or above the
// threshold become 1, all others 0.
func Binarize(gray []uint8, threshold uint8) []uint8 {
	bits := make([]uint8, len(gray))
	for i, v := range gray {
		if v >= threshold {
			bits[i] = 1
		}
	}
	return bits
}

// Expand is the inverse of Binarize for reconstructed payloads: bit 1 maps
// to full intensity (255) and bit 0 to zero.
func Expand(bits []uint8) []uint8 {
	gray := make([]uint8, len(bits))
	for i, b := range bits {
		if b&1 == 1 {
			gray[i] = 0xFF
		}
	}
	return gray
}
