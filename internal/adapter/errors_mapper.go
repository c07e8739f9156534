// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(body),
		Body:       body,
	}
}

// extractMessage reads the "message" field of an error envelope. Validation
// errors arrive as a list of strings; the first one is used.
func extractMessage(body []byte) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Message) == 0 {
		return FallbackErrorMessage
	}

	var single string
	if err := json.Unmarshal(envelope.Message, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return FallbackErrorMessage
		}
		return single
	}

	var list []string
	if err := json.Unmarshal(envelope.Message, &list); err == nil && len(list) > 0 && strings.TrimSpace(list[0]) != "" {
		return list[0]
	}

	return FallbackErrorMessage
}
