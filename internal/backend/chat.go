// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"strings"

	apperr "contascan/cli/internal/errors"
)

// SendChat posts one user message to POST /chat and returns the assistant
// reply. Session id and message must be non-empty.
func (h *HTTP) SendChat(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", apperr.New(apperr.Validation, "a session id is required to chat")
	}
	if strings.TrimSpace(message) == "" {
		return "", apperr.New(apperr.Validation, "cannot send an empty message")
	}

	in := map[string]string{
		"session_id": sessionID,
		"message":    message,
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := h.postJSON(ctx, pathChat, in, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
