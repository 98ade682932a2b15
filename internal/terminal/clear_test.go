// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"testing"
	"unicode/utf8"
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		name       string
		textLength int
		width      int
		want       int
	}{
		{name: "fits on one line", textLength: 26, width: 80, want: 1},
		{name: "exactly one line", textLength: 80, width: 80, want: 1},
		{name: "one char over", textLength: 81, width: 80, want: 2},
		{name: "narrow terminal", textLength: 26, width: 25, want: 2},
		{name: "zero length", textLength: 0, width: 80, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineCount(tt.textLength, tt.width)
			if got != tt.want {
				t.Errorf("lineCount(%d, %d) = %d, want %d", tt.textLength, tt.width, got, tt.want)
			}
		})
	}
}

func TestEnteredInputCountsRunes(t *testing.T) {
	// Multibyte input must be measured in display characters, not bytes:
	// a byte count over-estimates and clears a line too many on terminals
	// exactly as wide as the prompt plus input.
	prompt := "you> "
	input := "¿cuadran los totales?"

	runes := utf8.RuneCountInString(prompt) + utf8.RuneCountInString(input)
	bytes := len(prompt) + len(input)

	if runes != 26 {
		t.Errorf("rune length = %d, want 26", runes)
	}
	if bytes <= runes {
		t.Fatalf("test input is not multibyte (bytes=%d, runes=%d)", bytes, runes)
	}
	// At width 26 the entered text occupies exactly one line; the byte
	// count would claim two.
	if got := lineCount(runes, 26); got != 1 {
		t.Errorf("lineCount(runes, 26) = %d, want 1", got)
	}
	if got := lineCount(bytes, 26); got != 2 {
		t.Errorf("lineCount(bytes, 26) = %d, want 2 (the over-clear this guards against)", got)
	}
}
