package models

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3x", 3},
		{"1x", 1},
		{"10x", 10},
		{" 2x ", 2},
		{"x", 1},
		{"", 1},
		{"0x", 1},
		{"-2x", 1},
		{"three", 1},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLowStock(t *testing.T) {
	if !(Medication{Stock: 9}).LowStock() {
		t.Error("stock 9 should be low")
	}
	if (Medication{Stock: 10}).LowStock() {
		t.Error("stock 10 should not be low")
	}
}
