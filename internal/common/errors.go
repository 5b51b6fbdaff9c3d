// Package common defines shared sentinel errors used across the service
// clients and the tool layer. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrNetwork marks transport-level failures on an outbound call:
	// connection errors, timeouts, and non-2xx statuses.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse marks a response body that could not be
	// decoded as JSON.
	ErrMalformedResponse = errors.New("malformed response")
)
