package view

import (
	"strings"
	"testing"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Level
	}{
		{"error marker", "2024-01-01 ERROR something broke", LevelError},
		{"warn marker", "WARN disk almost full", LevelWarn},
		{"info marker", "INFO started", LevelInfo},
		{"error wins over info", "INFO then ERROR", LevelError},
		{"plain line", "just a message", LevelNone},
		{"lowercase not matched", "error in lowercase", LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelOf(tt.message); got != tt.want {
				t.Errorf("LevelOf(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestFormatTimestampMillis_NonPositive(t *testing.T) {
	if got := FormatTimestampMillis(0, false); got != "-" {
		t.Errorf("FormatTimestampMillis(0) = %q, want -", got)
	}
	if got := FormatTimestampMillis(-5, true); got != "-" {
		t.Errorf("FormatTimestampMillis(-5) = %q, want -", got)
	}
}

func TestFormatTimestampMillis_UTC(t *testing.T) {
	// 2023-11-14T22:13:20.123Z
	got := FormatTimestampMillis(1_700_000_000_123, false)
	if got != "2023-11-14 22:13:20.123Z" {
		t.Errorf("FormatTimestampMillis = %q", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantOK  bool
	}{
		{"object", `{"a":1,"b":[2,3]}`, true},
		{"array", `[1,2,3]`, true},
		{"padded object", `   {"a":1}   `, true},
		{"plain text", "hello world", false},
		{"empty", "", false},
		{"braces but invalid", "{not json}", false},
		{"mismatched delimiters", `{"a":1]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pretty, ok := PrettyJSON(tt.message)
			if ok != tt.wantOK {
				t.Fatalf("PrettyJSON(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			}
			if ok && !strings.Contains(pretty, "\n") {
				t.Errorf("pretty output not indented: %q", pretty)
			}
		})
	}
}

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		n        int
		want     int
	}{
		{"valid index preserved", 2, 5, 2},
		{"index past end cleared", 5, 5, NoSelection},
		{"index far past end cleared", 10, 3, NoSelection},
		{"no selection stays", NoSelection, 5, NoSelection},
		{"empty list clears", 0, 0, NoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSelection(tt.selected, tt.n); got != tt.want {
				t.Errorf("ClampSelection(%d, %d) = %d, want %d", tt.selected, tt.n, got, tt.want)
			}
		})
	}
}
