// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ListParams are the pagination and filter arguments accepted by every list
// endpoint. Zero Page and Limit are replaced by the endpoint defaults; Name
// is sent only when non-empty.
type ListParams struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Name  string `json:"name,omitempty"`
}

// Page is the decoded list envelope.
//
// The remote service does not document the envelope, so decoding accepts a
// bare JSON array as well as an object carrying the items under one of
// "data", "items" or "results" and the count under "total", "totalCount"
// or "count". Total stays nil when the service does not report one.
type Page[T any] struct {
	Items []T  `json:"items"`
	Total *int `json:"total,omitempty"`
}

var (
	pageItemKeys  = []string{"data", "items", "results"}
	pageTotalKeys = []string{"total", "totalCount", "count"}
)

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Page[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Page[T]{}
		return nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("decode page items: %w", err)
		}
		*p = Page[T]{Items: items}
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("decode page envelope: %w", err)
	}

	var out Page[T]
	for _, key := range pageItemKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &out.Items); err != nil {
			return fmt.Errorf("decode page %q: %w", key, err)
		}
		break
	}
	for _, key := range pageTotalKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var total int
		if err := json.Unmarshal(raw, &total); err != nil {
			return fmt.Errorf("decode page %q: %w", key, err)
		}
		out.Total = &total
		break
	}

	*p = out
	return nil
}
