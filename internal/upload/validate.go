// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package upload validates spreadsheet files before they are sent anywhere.
// Validation is all-or-nothing: one bad file rejects the whole batch, and no
// network call happens for a rejected batch.
package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"contascan/cli/internal/backend"
	apperr "contascan/cli/internal/errors"
)

// AcceptedMIMETypes are the spreadsheet content types the backend accepts.
var AcceptedMIMETypes = map[string]struct{}{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/vnd.ms-excel":                                          {},
	"application/vnd.ms-excel.sheet.macroEnabled.12":                    {},
}

// AcceptedExtensions is the filename fallback. Content sniffing cannot tell
// an OOXML spreadsheet from any other zip container, so the extension check
// is authoritative in practice.
var AcceptedExtensions = []string{".xlsx", ".xls"}

// Validator checks candidate files against type and size policy.
type Validator struct {
	// MaxFileBytes is the per-file size ceiling.
	MaxFileBytes int64
}

// New returns a Validator with the given per-file ceiling in bytes.
func New(maxFileBytes int64) Validator {
	return Validator{MaxFileBytes: maxFileBytes}
}

// hasAcceptedExtension reports whether the filename ends in an accepted
// spreadsheet extension.
func hasAcceptedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, ok := range AcceptedExtensions {
		if ext == ok {
			return true
		}
	}
	return false
}

// sniffMIME detects the content type from the first bytes of the file.
func sniffMIME(content []byte) string {
	head := content
	if len(head) > 512 {
		head = head[:512]
	}
	mime := http.DetectContentType(head)
	// DetectContentType may append a charset suffix
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

// CheckFile validates a single candidate. A file is accepted iff its
// detected content type is an accepted spreadsheet MIME OR its name carries
// an accepted extension, and it does not exceed the size ceiling.
func (v Validator) CheckFile(name string, content []byte) error {
	mimeOK := false
	if _, ok := AcceptedMIMETypes[sniffMIME(content)]; ok {
		mimeOK = true
	}
	if !mimeOK && !hasAcceptedExtension(name) {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("%s is not a supported spreadsheet (only .xlsx and .xls files are accepted)", name))
	}
	if v.MaxFileBytes > 0 && int64(len(content)) > v.MaxFileBytes {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("%s exceeds the %d MiB size limit", name, v.MaxFileBytes/(1024*1024)))
	}
	return nil
}

// CheckBatch validates a whole submission. An empty batch and any failing
// file reject the entire batch; the returned error names the offending file.
func (v Validator) CheckBatch(files []backend.UploadFile) error {
	if len(files) == 0 {
		return apperr.New(apperr.Validation, "select at least one file to analyze")
	}
	for _, f := range files {
		if err := v.CheckFile(f.Name, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// ReadFiles loads the given paths from disk into upload files. It fails on
// the first unreadable path; nothing is validated here.
func ReadFiles(paths []string) ([]backend.UploadFile, error) {
	files := make([]backend.UploadFile, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, apperr.Wrap(apperr.Validation,
				fmt.Sprintf("cannot read %s", p), err)
		}
		files = append(files, backend.UploadFile{Name: filepath.Base(p), Content: content})
	}
	return files, nil
}
