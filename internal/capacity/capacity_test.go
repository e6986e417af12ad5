package capacity

import (
	"errors"
	"testing"
)

func TestCompute_FitsUnchanged(t *testing.T) {
	tests := []struct {
		name               string
		carrierW, carrierH int
		payloadW, payloadH int
	}{
		{"typical page and code", 200, 200, 50, 50},
		{"exact fit", 8, 8, 4, 8}, // 64 - 32 = 32 = 4*8
		{"single pixel payload", 10, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Compute(tt.carrierW, tt.carrierH, tt.payloadW, tt.payloadH)
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			if plan.Resized {
				t.Error("Resized = true, want false")
			}
			if plan.Width != tt.payloadW || plan.Height != tt.payloadH {
				t.Errorf("plan = %dx%d, want %dx%d", plan.Width, plan.Height, tt.payloadW, tt.payloadH)
			}
		})
	}
}

func TestCompute_ShrinksOversizedPayload(t *testing.T) {
	// 50x50 carrier: available = 2500 - 32 = 2468.
	// sqrt(2468/250000) scales 500x500 to 49x49 = 2401 <= 2468.
	plan, err := Compute(50, 50, 500, 500)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if !plan.Resized {
		t.Fatal("Resized = false, want true")
	}
	if plan.Width != 49 || plan.Height != 49 {
		t.Errorf("plan = %dx%d, want 49x49", plan.Width, plan.Height)
	}
	if plan.Width*plan.Height > 2468 {
		t.Errorf("planned area %d exceeds available 2468", plan.Width*plan.Height)
	}
}

func TestCompute_PreservesAspectRatio(t *testing.T) {
	// 2:1 payload stays close to 2:1 after shrinking.
	plan, err := Compute(40, 40, 400, 200)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if !plan.Resized {
		t.Fatal("Resized = false, want true")
	}
	ratio := float64(plan.Width) / float64(plan.Height)
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("aspect ratio %.2f drifted from 2.0 (plan %dx%d)", ratio, plan.Width, plan.Height)
	}
	if plan.Width*plan.Height > 40*40-32 {
		t.Errorf("planned area %d exceeds available %d", plan.Width*plan.Height, 40*40-32)
	}
}

func TestCompute_OneBitOverExactFit(t *testing.T) {
	// available = 32; a 33-bit payload must be shrunk, not truncated.
	plan, err := Compute(8, 8, 7, 5)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if !plan.Resized {
		t.Fatal("Resized = false, want true")
	}
	if plan.Width < 1 || plan.Height < 1 {
		t.Fatalf("plan %dx%d has a collapsed dimension", plan.Width, plan.Height)
	}
	if plan.Width*plan.Height > 32 {
		t.Errorf("planned area %d exceeds available 32", plan.Width*plan.Height)
	}
}

func TestCompute_ExtremeAspectRatioCannotFit(t *testing.T) {
	// Shrinking a 33x1 strip below 32 bits collapses its height to zero,
	// so there is no valid resized form.
	_, err := Compute(8, 8, 33, 1)
	if !errors.Is(err, ErrCapacity) {
		t.Errorf("Compute error = %v, want ErrCapacity", err)
	}
}

func TestCompute_CapacityErrors(t *testing.T) {
	tests := []struct {
		name               string
		carrierW, carrierH int
		payloadW, payloadH int
	}{
		{"carrier smaller than header", 5, 6, 10, 10}, // 30 pixels < 32
		{"carrier exactly header sized", 4, 8, 1, 1},  // available = 0
		{"thin payload collapses to zero height", 6, 6, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.carrierW, tt.carrierH, tt.payloadW, tt.payloadH)
			if !errors.Is(err, ErrCapacity) {
				t.Errorf("Compute error = %v, want ErrCapacity", err)
			}
		})
	}
}

func TestCompute_InvalidPayload(t *testing.T) {
	if _, err := Compute(100, 100, 0, 10); err == nil {
		t.Error("Compute with zero payload width succeeded, want error")
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, err := Compute(123, 77, 999, 333)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	b, err := Compute(123, 77, 999, 333)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if a != b {
		t.Errorf("Compute not deterministic: %+v vs %+v", a, b)
	}
}
