// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import "fmt"

// The three failure kinds below are the adapter's whole error surface.
// Callers branch with errors.As; none of them is ever retried inside the
// adapter.

// ConfigError reports a missing service credential, detected before any
// network attempt.
type ConfigError struct {
	// Key names the credential that was absent (e.g. "gemini-api-key").
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("generative service credential %s is not configured", e.Key)
}

// TransportError reports a generative call that did not complete with a
// success status. It carries the status and raw body for diagnostics.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generative service returned HTTP %d: %s", e.StatusCode, e.Body)
}

// ShapeError reports a successful transport response whose payload was
// absent or could not be parsed into the requested shape.
type ShapeError struct {
	// Reason says what was wrong with the payload.
	Reason string

	// Raw is the offending payload text, when there was one.
	Raw string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("generative response did not match the requested shape: %s", e.Reason)
}
