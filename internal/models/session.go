// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package models

// SessionSummary is one row of the session listing.
type SessionSummary struct {
	SessionID    string   `json:"session_id"`
	FileNames    []string `json:"file_names,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	LastActivity string   `json:"last_activity,omitempty"`
	MessageCount int      `json:"message_count"`
}

// SessionList is the response of the session listing operation.
type SessionList struct {
	Sessions []SessionSummary `json:"sessions"`
	Total    int              `json:"total"`
}

// SessionDetail is the full server-side record of one analysis session,
// including the durable conversation history.
type SessionDetail struct {
	SessionID           string         `json:"session_id"`
	AnalysisResult      map[string]any `json:"analysis_result,omitempty"`
	ConversationHistory []ChatMessage  `json:"conversation_history,omitempty"`
	CreatedAt           string         `json:"created_at,omitempty"`
	LastActivity        string         `json:"last_activity,omitempty"`
	FileNames           []string       `json:"file_names,omitempty"`
}

// HealthStatus is the response of the health check.
type HealthStatus struct {
	Status     string         `json:"status"`
	AIProvider string         `json:"ai_provider,omitempty"`
	Services   map[string]any `json:"services,omitempty"`
}
