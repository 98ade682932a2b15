// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// progressReader wraps a reader and reports the fraction of total bytes
// consumed. net/http reads the request body from here, so the fraction
// tracks upload progress as the transport sends it.
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.fn != nil && p.total > 0 {
		p.sent += int64(n)
		frac := float64(p.sent) / float64(p.total)
		if frac > 1 {
			frac = 1
		}
		p.fn(frac)
	}
	return n, err
}

// buildMultipart assembles a multipart form with the given files under
// fieldName, plus optional extra string fields. It returns the encoded body
// and its content type.
func buildMultipart(fieldName string, files []UploadFile, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(fieldName, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// Analyze submits the files to POST /analyze along with the optional prompt
// and returns the parsed analysis result. Upload progress is reported via
// onProgress as the request body is sent.
func (h *HTTP) Analyze(ctx context.Context, files []UploadFile, prompt string, onProgress ProgressFunc) (*models.AnalysisResult, error) {
	if len(files) == 0 {
		return nil, apperr.New(apperr.Validation, "no files to analyze")
	}

	buf, contentType, err := buildMultipart("files", files, map[string]string{"prompt": prompt})
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}

	total := int64(buf.Len())
	body := &progressReader{r: buf, total: total, fn: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+pathAnalyze, body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	req.ContentLength = total
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.Server, msgServerGeneric, err)
	}
	return &out, nil
}
