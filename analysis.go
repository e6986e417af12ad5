package stegmark

import (
	"image"
	"math"

	"github.com/mrjoshuak/go-stegmark/internal/bitplane"
	"github.com/mrjoshuak/go-stegmark/internal/header"
)

// ChannelStats summarizes one color channel's value distribution.
type ChannelStats struct {
	Mean   float64
	StdDev float64
	Min    uint8
	Max    uint8
}

// LSBStats summarizes the blue channel's least-significant-bit plane. A
// ratio of ones far from 0.5 on a photographic image can hint that the
// plane has been overwritten with structured data.
type LSBStats struct {
	Zeros     int
	Ones      int
	OnesRatio float64
}

// IntensityStats buckets pixels by grayscale intensity, thirds of the
// 0-255 range.
type IntensityStats struct {
	Mean   float64
	Dark   int // intensity < 85
	Medium int // 85 <= intensity < 170
	Bright int // intensity >= 170
}

// ImageAnalysis is a read-only statistical profile of an image, useful for
// inspecting carriers before embedding and stego images after.
type ImageAnalysis struct {
	Width  int
	Height int

	// Red, Green and Blue are the per-channel statistics.
	Red   ChannelStats
	Green ChannelStats
	Blue  ChannelStats

	Intensity IntensityStats
	LSB       LSBStats

	// CapacityBits is the total steganographic capacity, one bit per
	// pixel; PayloadCapacityBits excludes the header.
	CapacityBits        int
	PayloadCapacityBits int
}

// Analyze profiles img without modifying it.
func Analyze(img image.Image) *ImageAnalysis {
	m := asNRGBA(img)
	w, h := m.Rect.Dx(), m.Rect.Dy()

	a := &ImageAnalysis{
		Width:        w,
		Height:       h,
		CapacityBits: w * h,
	}
	if pc := w*h - header.BitLen; pc > 0 {
		a.PayloadCapacityBits = pc
	}
	if w*h == 0 {
		return a
	}

	a.Red = channelStats(m.Pix, 0)
	a.Green = channelStats(m.Pix, 1)
	a.Blue = channelStats(m.Pix, 2)

	gray := asGray(img)
	var sum float64
	for _, v := range gray.Pix {
		sum += float64(v)
		switch {
		case v < 85:
			a.Intensity.Dark++
		case v < 170:
			a.Intensity.Medium++
		default:
			a.Intensity.Bright++
		}
	}
	a.Intensity.Mean = sum / float64(len(gray.Pix))

	for _, b := range bitplane.Read(m.Pix, w*h) {
		if b == 1 {
			a.LSB.Ones++
		} else {
			a.LSB.Zeros++
		}
	}
	a.LSB.OnesRatio = float64(a.LSB.Ones) / float64(w*h)

	return a
}

// channelStats computes one channel's statistics in a single pass over the
// flattened pixel buffer.
func channelStats(pix []uint8, offset int) ChannelStats {
	s := ChannelStats{Min: 255}
	var sum, sumSq float64
	n := 0
	for p := offset; p < len(pix); p += 4 {
		v := pix[p]
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		f := float64(v)
		sum += f
		sumSq += f * f
		n++
	}
	if n == 0 {
		return ChannelStats{}
	}
	s.Mean = sum / float64(n)
	variance := sumSq/float64(n) - s.Mean*s.Mean
	if variance > 0 {
		s.StdDev = math.Sqrt(variance)
	}
	return s
}
