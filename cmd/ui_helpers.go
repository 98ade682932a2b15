// Package cmd provides CLI commands for the Contascan client.
// This file contains helper functions for transient UI state during calls.
package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"atomicgo.dev/cursor"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/logging"
)

// errMessage returns the user-facing text of any error, masked. Every error
// kind surfaces as a plain message string; commands never branch on kind.
func errMessage(err error) string {
	return logging.Mask(apperr.Message(err))
}

// spinnerFrames is the default animation used while a call is in flight.
var spinnerFrames = []string{"-", "\\", "|", "/"}

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text,
// updating the same line in the terminal. The returned function stops the
// spinner and clears the line; call it in a defer so the loading indicator
// is cleared on every outcome, success or failure.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	cursor.Hide()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		cursor.Show()
	}
}
