// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chat holds the in-memory conversation log of one open chat panel.
// The log is append-only for the panel's lifetime and discarded when the
// panel closes; the server-side session history is the durable record.
package chat

import (
	"context"
	"strings"
	"time"

	"contascan/cli/internal/backend"
	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// Log is an append-only message sequence scoped to one session id. A busy
// flag prevents overlapping sends from the same panel; it is cleared on
// every outcome.
type Log struct {
	sessionID string
	api       backend.API
	messages  []models.ChatMessage
	busy      bool
	now       func() time.Time
}

// NewLog opens a chat log for the given session, sending through api.
func NewLog(sessionID string, api backend.API) *Log {
	return &Log{sessionID: sessionID, api: api, now: time.Now}
}

// SessionID returns the session this log belongs to.
func (l *Log) SessionID() string { return l.sessionID }

// Messages returns the full log, oldest first.
func (l *Log) Messages() []models.ChatMessage { return l.messages }

// Busy reports whether a send is in flight.
func (l *Log) Busy() bool { return l.busy }

func (l *Log) append(role, content string) {
	l.messages = append(l.messages, models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: l.now().Format(time.RFC3339),
	})
}

// Send posts one user message. The user entry is appended before the call
// and is never rolled back: a failed send leaves it in place and returns the
// error for inline display. On success the assistant reply is appended.
func (l *Log) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperr.New(apperr.Validation, "cannot send an empty message")
	}
	if l.busy {
		return apperr.New(apperr.Validation, "a message is already being sent")
	}

	l.busy = true
	defer func() { l.busy = false }()

	l.append(models.RoleUser, text)

	reply, err := l.api.SendChat(ctx, l.sessionID, text)
	if err != nil {
		return err
	}
	l.append(models.RoleAssistant, reply)
	return nil
}
