// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package upload

import (
	"strings"
	"testing"

	"contascan/cli/internal/backend"
	apperr "contascan/cli/internal/errors"
)

const mib = 1024 * 1024

func TestCheckFile(t *testing.T) {
	v := New(10 * mib)

	tests := []struct {
		name        string
		filename    string
		content     []byte
		expectError bool
	}{
		{
			name:     "xlsx extension",
			filename: "report.xlsx",
			content:  []byte("PK\x03\x04fake zip payload"),
		},
		{
			name:     "xls extension",
			filename: "legacy.xls",
			content:  []byte("\xd0\xcf\x11\xe0fake ole payload"),
		},
		{
			name:     "uppercase extension",
			filename: "REPORT.XLSX",
			content:  []byte("PK\x03\x04"),
		},
		{
			name:        "csv rejected",
			filename:    "data.csv",
			content:     []byte("a,b,c\n1,2,3\n"),
			expectError: true,
		},
		{
			name:        "pdf rejected",
			filename:    "invoice.pdf",
			content:     []byte("%PDF-1.7 fake"),
			expectError: true,
		},
		{
			name:        "no extension rejected",
			filename:    "report",
			content:     []byte("PK\x03\x04"),
			expectError: true,
		},
		{
			name:        "oversized file rejected",
			filename:    "big.xlsx",
			content:     make([]byte, 10*mib+1),
			expectError: true,
		},
		{
			name:     "exactly at the ceiling",
			filename: "full.xlsx",
			content:  make([]byte, 10*mib),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckFile(tt.filename, tt.content)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if apperr.KindOf(err) != apperr.Validation {
					t.Errorf("kind = %v, want validation", apperr.KindOf(err))
				}
				if !strings.Contains(apperr.Message(err), tt.filename) {
					t.Errorf("message %q does not name the file %q", apperr.Message(err), tt.filename)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckBatchAllOrNothing(t *testing.T) {
	v := New(10 * mib)

	good := backend.UploadFile{Name: "good.xlsx", Content: []byte("PK\x03\x04")}
	bad := backend.UploadFile{Name: "bad.txt", Content: []byte("plain text")}

	if err := v.CheckBatch([]backend.UploadFile{good, good}); err != nil {
		t.Errorf("all-good batch rejected: %v", err)
	}

	err := v.CheckBatch([]backend.UploadFile{good, bad, good})
	if err == nil {
		t.Fatal("batch with one bad file was accepted")
	}
	if !strings.Contains(apperr.Message(err), "bad.txt") {
		t.Errorf("message %q does not name the offending file", apperr.Message(err))
	}
}

func TestCheckBatchEmpty(t *testing.T) {
	v := New(10 * mib)

	err := v.CheckBatch(nil)
	if err == nil {
		t.Fatal("empty batch was accepted")
	}
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestSizeLimitDisabledWhenZero(t *testing.T) {
	v := New(0)

	if err := v.CheckFile("huge.xlsx", make([]byte, 20*mib)); err != nil {
		t.Errorf("unexpected error with ceiling disabled: %v", err)
	}
}
