// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// ListSessions calls GET /sessions.
func (h *HTTP) ListSessions(ctx context.Context) (*models.SessionList, error) {
	var out models.SessionList
	if err := h.getJSON(ctx, pathSessions, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSession calls GET /sessions/{id}.
func (h *HTTP) GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperr.New(apperr.Validation, "a session id is required")
	}
	var out models.SessionDetail
	if err := h.getJSON(ctx, pathSession(sessionID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession calls DELETE /sessions/{id} and returns the confirmation
// message.
func (h *HTTP) DeleteSession(ctx context.Context, sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", apperr.New(apperr.Validation, "a session id is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, h.baseURL+pathSession(sessionID), nil)
	if err != nil {
		return "", apperr.Wrap(apperr.Request, msgBadRequest, err)
	}
	h.setStandardHeaders(req)
	resp, err := h.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Wrap(apperr.Server, msgServerGeneric, err)
	}
	if out.Message == "" {
		out.Message = "session deleted"
	}
	return out.Message, nil
}
