// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the analysis service.
// It defines one operation per remote capability. The package includes both
// the interface definition and the HTTP implementation; commands receive an
// injected API value so tests can substitute a fake transport.
package backend

import (
	"context"

	"contascan/cli/internal/models"
)

// UploadFile is one file of an analyze or extract submission.
type UploadFile struct {
	Name    string
	Content []byte
}

// ProgressFunc receives the fraction (0..1) of the request body sent so far.
// Progress reporting is advisory only; it never drives control flow.
type ProgressFunc func(fraction float64)

// API defines the backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// Health calls GET /health and returns the server status.
	Health(ctx context.Context) (*models.HealthStatus, error)
	// ServerInfo calls GET / and returns the implementation-defined payload.
	ServerInfo(ctx context.Context) (map[string]any, error)
	// Analyze submits one or more spreadsheet files plus an optional free-text
	// instruction for analysis. onProgress may be nil.
	Analyze(ctx context.Context, files []UploadFile, prompt string, onProgress ProgressFunc) (*models.AnalysisResult, error)
	// SendChat sends one user message to an analysis session and returns the
	// assistant reply.
	SendChat(ctx context.Context, sessionID, message string) (string, error)
	// ListSessions returns summaries of the server-side analysis sessions.
	ListSessions(ctx context.Context) (*models.SessionList, error)
	// GetSession returns the full record of one session.
	GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error)
	// DeleteSession removes a session and returns the server confirmation.
	DeleteSession(ctx context.Context, sessionID string) (string, error)
	// Extract parses a spreadsheet server-side into the editable dataset.
	Extract(ctx context.Context, file UploadFile) (*models.StructuredWorkbook, error)
	// EditCell applies a single cell edit server-side.
	EditCell(ctx context.Context, sheetName string, row int, column string, value any) error
	// Download asks the server to regenerate a workbook from the given sheets
	// and returns the binary payload.
	Download(ctx context.Context, filename string, sheets []models.Sheet) ([]byte, error)
}
