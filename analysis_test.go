package stegmark

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestAnalyze_UniformImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 80, B: 121, A: 255})
		}
	}

	a := Analyze(img)

	if a.Width != 10 || a.Height != 10 {
		t.Errorf("dims = %dx%d, want 10x10", a.Width, a.Height)
	}
	if a.CapacityBits != 100 {
		t.Errorf("CapacityBits = %d, want 100", a.CapacityBits)
	}
	if a.PayloadCapacityBits != 68 {
		t.Errorf("PayloadCapacityBits = %d, want 68", a.PayloadCapacityBits)
	}

	if a.Blue.Mean != 121 || a.Blue.Min != 121 || a.Blue.Max != 121 {
		t.Errorf("Blue stats = %+v, want uniform 121", a.Blue)
	}
	if a.Blue.StdDev != 0 {
		t.Errorf("Blue.StdDev = %v, want 0", a.Blue.StdDev)
	}
	if a.Red.Mean != 40 || a.Green.Mean != 80 {
		t.Errorf("Red/Green mean = %v/%v, want 40/80", a.Red.Mean, a.Green.Mean)
	}

	// 121 is odd, so every blue LSB is 1.
	if a.LSB.Ones != 100 || a.LSB.Zeros != 0 {
		t.Errorf("LSB = %+v, want 100 ones", a.LSB)
	}
	if a.LSB.OnesRatio != 1 {
		t.Errorf("OnesRatio = %v, want 1", a.LSB.OnesRatio)
	}
}

func TestAnalyze_IntensityBands(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.Pix[0] = 10  // dark
	img.Pix[1] = 100 // medium
	img.Pix[2] = 200 // bright

	a := Analyze(img)
	if a.Intensity.Dark != 1 || a.Intensity.Medium != 1 || a.Intensity.Bright != 1 {
		t.Errorf("intensity bands = %+v, want 1/1/1", a.Intensity)
	}
	wantMean := (10.0 + 100.0 + 200.0) / 3
	if math.Abs(a.Intensity.Mean-wantMean) > 1e-9 {
		t.Errorf("Intensity.Mean = %v, want %v", a.Intensity.Mean, wantMean)
	}
}

func TestAnalyze_StdDev(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{B: 100, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 200, A: 255})

	a := Analyze(img)
	if a.Blue.Mean != 150 {
		t.Errorf("Blue.Mean = %v, want 150", a.Blue.Mean)
	}
	if math.Abs(a.Blue.StdDev-50) > 1e-9 {
		t.Errorf("Blue.StdDev = %v, want 50", a.Blue.StdDev)
	}
	if a.Blue.Min != 100 || a.Blue.Max != 200 {
		t.Errorf("Blue min/max = %d/%d, want 100/200", a.Blue.Min, a.Blue.Max)
	}
}

func TestAnalyze_SmallImageHasNoPayloadCapacity(t *testing.T) {
	a := Analyze(image.NewNRGBA(image.Rect(0, 0, 5, 6)))
	if a.CapacityBits != 30 {
		t.Errorf("CapacityBits = %d, want 30", a.CapacityBits)
	}
	if a.PayloadCapacityBits != 0 {
		t.Errorf("PayloadCapacityBits = %d, want 0", a.PayloadCapacityBits)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	img := testCarrier(30, 30)
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	Analyze(img)

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("Analyze mutated pixel byte %d", i)
		}
	}
}
