package logscreen

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{'a', 1},
		{'1', 1},
		{' ', 1},
		{'中', 2},
		{'日', 2},
		{'한', 2},
		{'Ａ', 2}, // Fullwidth A
		{0, 0},
	}

	for _, tt := range tests {
		got := runeWidth(tt.r)
		if got != tt.expected {
			t.Errorf("runeWidth(%q) = %d, want %d", tt.r, got, tt.expected)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"Hello", 5},
		{"中文", 4},
		{"Hello中文", 9},
		{"", 0},
		{"한글", 4},
	}

	for _, tt := range tests {
		got := StringWidth(tt.s)
		if got != tt.expected {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.expected)
		}
	}
}

func TestLineDisplayWidth(t *testing.T) {
	line := Line{
		{Text: "ab", Style: Style{}},
		{Text: "中文", Style: Style{}},
	}

	if got := line.DisplayWidth(); got != 6 {
		t.Errorf("expected display width 6, got %d", got)
	}
	// Column addressing stays rune-based regardless of display width.
	if got := line.Width(); got != 4 {
		t.Errorf("expected width 4, got %d", got)
	}
}
