package stegmark

import (
	"fmt"
	"image"
	"math"
)

// Rating classifies the visual quality of a stego image relative to its
// carrier. The PSNR thresholds are a fixed contract, not tunable per call.
type Rating int

const (
	// RatingPoor is PSNR of 20 dB or below.
	RatingPoor Rating = iota
	// RatingGood is PSNR above 20 dB.
	RatingGood
	// RatingVeryGood is PSNR above 30 dB.
	RatingVeryGood
	// RatingExcellent is PSNR above 40 dB.
	RatingExcellent
)

// String returns the string representation of the rating.
func (r Rating) String() string {
	switch r {
	case RatingPoor:
		return "Poor"
	case RatingGood:
		return "Good"
	case RatingVeryGood:
		return "VeryGood"
	case RatingExcellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// ratingFor maps a PSNR value (possibly +Inf) to its rating.
func ratingFor(psnr float64) Rating {
	switch {
	case psnr > 40:
		return RatingExcellent
	case psnr > 30:
		return RatingVeryGood
	case psnr > 20:
		return RatingGood
	default:
		return RatingPoor
	}
}

// QualityReport quantifies the pixel-level difference between two images of
// equal size.
type QualityReport struct {
	// MSE is the mean squared error over all R, G and B channel values.
	MSE float64

	// PSNR is the peak signal-to-noise ratio in dB, +Inf for identical
	// images.
	PSNR float64

	// ChangePercent is the share of pixels (0-100) where any channel
	// differs.
	ChangePercent float64

	// Rating classifies PSNR per the fixed threshold table.
	Rating Rating
}

// Compare computes the quality report between two images of identical
// dimensions. Alpha is ignored; carriers are 3-channel images and the
// embedding never touches alpha. Differing dimensions are a caller usage
// error and fail with ErrDimensionMismatch.
func Compare(a, b image.Image) (*QualityReport, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w",
			ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy(), ErrDimensionMismatch)
	}

	total := ab.Dx() * ab.Dy()
	if total == 0 {
		return &QualityReport{PSNR: math.Inf(1), Rating: RatingExcellent}, nil
	}

	am, bm := asNRGBA(a), asNRGBA(b)

	var sumSq float64
	var changed int
	for p := 0; p < len(am.Pix); p += 4 {
		var pixelDiff bool
		for c := 0; c < 3; c++ {
			d := float64(am.Pix[p+c]) - float64(bm.Pix[p+c])
			if d != 0 {
				pixelDiff = true
			}
			sumSq += d * d
		}
		if pixelDiff {
			changed++
		}
	}

	mse := sumSq / float64(total*3)

	psnr := math.Inf(1)
	if mse > 0 {
		psnr = 20 * math.Log10(255/math.Sqrt(mse))
	}

	return &QualityReport{
		MSE:           mse,
		PSNR:          psnr,
		ChangePercent: float64(changed) / float64(total) * 100,
		Rating:        ratingFor(psnr),
	}, nil
}
