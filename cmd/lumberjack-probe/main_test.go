package main

import "testing"

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int32
	}{
		{"negative means unset", -1, 0},
		{"zero stays unset", 0, 0},
		{"default", 1000, 1000},
		{"at service maximum", 10000, 10000},
		{"above service maximum capped", 5000000, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampLimit(tt.in); got != tt.want {
				t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
