// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Request is the transport-neutral description of one outgoing API call
// produced by an operation descriptor.
type Request struct {
	// Method is the HTTP verb (GET, POST, PATCH, DELETE).
	Method string

	// URL is the path relative to the API base URL, including the raw query
	// string when present (e.g. "/tenants/all/?page=1&limit=5").
	URL string

	// Body is serialised as JSON when non-nil.
	Body any
}

// HasBody reports whether the request carries a JSON payload.
func (r Request) HasBody() bool {
	return r.Body != nil && r.Method != http.MethodGet
}
