package utils

import "testing"

func TestMinMaxTernary(t *testing.T) {
	if MinInt(3, 5) != 3 {
		t.Fatalf("MinInt(3,5) should be 3")
	}
	if MaxInt(3, 5) != 5 {
		t.Fatalf("MaxInt(3,5) should be 5")
	}
	if Ternary(true, 1, 2) != 1 {
		t.Fatalf("Ternary(true, ...) should pick the first branch")
	}
	if Ternary(false, 1, 2) != 2 {
		t.Fatalf("Ternary(false, ...) should pick the second branch")
	}
}
