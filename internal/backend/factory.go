// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import "time"

// New creates a backend API implementation for the given base URL.
// token may be empty; it is attached as a Bearer header when present.
// The timeout applies uniformly to all operations.
func New(baseURL, token string, timeout time.Duration) API {
	return newHTTP(baseURL, token, timeout)
}
