// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// Extract submits a single spreadsheet to POST /extract and returns the
// structured dataset.
func (h *HTTP) Extract(ctx context.Context, file UploadFile) (*models.StructuredWorkbook, error) {
	if len(file.Content) == 0 {
		return nil, apperr.New(apperr.Validation, "no file to extract")
	}

	buf, contentType, err := buildMultipart("file", []UploadFile{file}, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+pathExtract, buf)
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.StructuredWorkbook
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.Server, msgServerGeneric, err)
	}
	if out.Filename == "" {
		out.Filename = file.Name
	}
	return &out, nil
}

// EditCell applies one cell edit via POST /edit. The grid session keeps
// edits local by default; this is only called when the user asks to sync.
func (h *HTTP) EditCell(ctx context.Context, sheetName string, row int, column string, value any) error {
	in := map[string]any{
		"sheet_name": sheetName,
		"row":        row,
		"column":     column,
		"value":      value,
	}
	return h.postJSON(ctx, pathEdit, in, nil)
}

// Download asks POST /download to regenerate a workbook from the given
// sheets and returns the binary payload.
func (h *HTTP) Download(ctx context.Context, filename string, sheets []models.Sheet) ([]byte, error) {
	in := map[string]any{
		"filename": filename,
		"sheets":   sheets,
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+pathDownload, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Connection, msgConnection, err)
	}
	return data, nil
}
