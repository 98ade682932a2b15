// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"contascan/cli/internal/xdg"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugOnce sync.Once
	debugLog  *log.Logger
)

// debugEnabled reports whether debug file logging is on. It is driven by
// CONTASCAN_VERBOSE so every module shares the same switch.
func debugEnabled() bool {
	return os.Getenv("CONTASCAN_VERBOSE") == "1"
}

// debugLogger lazily opens the rotating debug log under the XDG state dir.
func debugLogger() *log.Logger {
	debugOnce.Do(func() {
		dir, err := xdg.StateDir()
		if err != nil {
			debugLog = log.New(io.Discard, "", 0)
			return
		}
		debugLog = log.New(&lumberjack.Logger{
			Filename:   filepath.Join(dir, "debug.log"),
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     14, // days
		}, "", log.LstdFlags|log.Lmicroseconds)
	})
	return debugLog
}

// Debugf writes a masked, formatted line to the rotating debug log when
// verbose mode is enabled. It never writes to the terminal.
func Debugf(format string, args ...any) {
	if !debugEnabled() {
		return
	}
	debugLogger().Print(Mask(fmt.Sprintf(format, args...)))
}
