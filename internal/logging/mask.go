// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in log messages and
// formatting errors for user-friendly display while protecting credentials,
// plus an optional rotating debug log for diagnosing backend traffic.
package logging

import (
	"regexp"
)

var (
	reToken  = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reAPIKey = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;&]+)`)
	reURLKey = regexp.MustCompile(`(?i)([?&](?:key|token)=)([^\s&]+)`)
	reEnvKey = regexp.MustCompile(`(CONTASCAN_API_TOKEN=|OPENAI_API_KEY=|ACCESS_TOKEN=)(\S+)`)
)

// Mask replaces sensitive values in the input string with "***".
// Bearer tokens, api keys, env-style secret assignments and key-bearing
// query parameters are covered.
func Mask(s string) string {
	out := s
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	out = reURLKey.ReplaceAllString(out, "$1***")
	out = reEnvKey.ReplaceAllString(out, "$1***")
	return out
}
