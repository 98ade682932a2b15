// Package terminal provides utilities for terminal operations such as clearing text.
package terminal

import (
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// ClearEnteredInput clears a prompt and the text the user typed after it.
// Lengths are counted in runes, not bytes, so multibyte input does not
// inflate the line estimate and clear a line too many.
func ClearEnteredInput(prompt, input string) {
	ClearPreviousLines(utf8.RuneCountInString(prompt) + utf8.RuneCountInString(input))
}

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the
// current terminal width, then moves up and clears each line. The chat and
// grid loops use this to clean up input prompts after they are entered.
//
// textLength is the total number of display characters to clear (prompt plus
// user input). One extra line is cleared to account for the newline Enter
// produces.
func ClearPreviousLines(textLength int) {
	// Get terminal width to calculate line wrapping
	termWidth := 80 // default fallback
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	// After Enter, cursor is on a new line below the input.
	linesToClear := lineCount(textLength, termWidth) + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}

// lineCount returns how many terminal lines textLength characters occupy at
// the given width, at least one.
func lineCount(textLength, width int) int {
	n := int(math.Ceil(float64(textLength) / float64(width)))
	if n < 1 {
		n = 1
	}
	return n
}
