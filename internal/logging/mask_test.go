// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bearer header",
			input:    "Authorization: Bearer abc.def-123",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "Token parameter",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "API Key",
			input:    "apikey=sk_test_123456",
			expected: "apikey=***",
		},
		{
			name:     "API key in query string",
			input:    "GET /health?key=secret123 failed",
			expected: "GET /health?key=*** failed",
		},
		{
			name:     "Env-style assignment",
			input:    "loaded CONTASCAN_API_TOKEN=tok_42 from environment",
			expected: "loaded CONTASCAN_API_TOKEN=*** from environment",
		},
		{
			name:     "Plain message untouched",
			input:    "modelo no disponible",
			expected: "modelo no disponible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
