package util

import (
	"testing"
)

func TestRoundFloat(t *testing.T) {

	if got := RoundFloat(3.14159, 2); got != 3.14 {
		t.Errorf("RoundFloat(3.14159, 2) = %v, want 3.14", got)
	}
	if got := RoundFloat(2.675, 2); got != 2.68 {
		t.Errorf("RoundFloat(2.675, 2) = %v, want 2.68", got)
	}
	if got := RoundFloat(-1.005, 1); got != -1.0 {
		t.Errorf("RoundFloat(-1.005, 1) = %v, want -1.0", got)
	}
	if got := RoundFloat(120.0, 2); got != 120.0 {
		t.Errorf("RoundFloat(120.0, 2) = %v, want 120.0", got)
	}
}

func TestCountDecimalPlacesF64(t *testing.T) {

	if got := CountDecimalPlacesF64(1.25); got != 2 {
		t.Errorf("CountDecimalPlacesF64(1.25) = %v, want 2", got)
	}
	if got := CountDecimalPlacesF64(10); got != 0 {
		t.Errorf("CountDecimalPlacesF64(10) = %v, want 0", got)
	}
}
