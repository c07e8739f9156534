// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackErrorMessage is the message of an [*APIError] whose response body
// carries no usable "message" field.
const FallbackErrorMessage = "An error occurred. Please try again."

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrBaseURLNotConfigured is wrapped by the TransportError of every request
	// made while no base URL is configured.
	ErrBaseURLNotConfigured = errors.New("api base url is not configured")
)

// APIError is a response received with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the server supplied message, or FallbackErrorMessage.
	Message string
	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the status sentinel for StatusCode, or nil for statuses
// without one.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

// TransportError is a request that produced no response: DNS, connection,
// timeout, cancellation or a missing base URL.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is, or wraps, an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// UserMessage returns the text to show for err: the API message for an
// *APIError, a connectivity hint for a *TransportError, or err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Message
	}
	if errors.Is(err, ErrBaseURLNotConfigured) {
		return "API base URL is not configured"
	}
	if IsTransportError(err) {
		return "Unable to reach the server. Check your connection and try again."
	}
	return err.Error()
}
