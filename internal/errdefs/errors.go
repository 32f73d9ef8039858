// Package errdefs defines the error taxonomy shared by every tool call.
//
// Each type carries a stable machine-readable code that ends up in the
// "code" field of an error envelope returned to the MCP client.
package errdefs

import (
	"errors"
	"fmt"
)

// Stable error codes surfaced to clients.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeDuplicateTool   = "DUPLICATE_TOOL"
	CodeUnknownTool     = "UNKNOWN_TOOL"
	CodeUnknownLocation = "UNKNOWN_LOCATION"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeUpstreamTimeout = "UPSTREAM_TIMEOUT"
	CodeResponseParse   = "RESPONSE_PARSE_ERROR"
	CodeConfiguration   = "CONFIGURATION_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// UpstreamStatusTimeout marks an upstream failure caused by a deadline.
const UpstreamStatusTimeout = "timeout"

// ValidationError reports a bad input value for a single field.
type ValidationError struct {
	// Field is the parameter name as declared in the tool schema.
	Field string
	// Reason explains the violation.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateToolError reports a second registration under an existing name.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q is already registered", e.Name)
}

// UnknownToolError reports a registry lookup miss.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// UnknownLocationError reports a city absent from the reference data.
type UnknownLocationError struct {
	// Location is the city as given by the caller.
	Location string
	// Known lists supported locations, when cheap to enumerate.
	Known []string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location: %s", e.Location)
}

// UpstreamError reports a failed third-party API call.
type UpstreamError struct {
	// Status is an HTTP status code as text, or "timeout".
	Status string
	// Message carries upstream detail, truncated by the caller.
	Message string
	// RequestID is the upstream correlation id, when the API returned one.
	RequestID string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream failure (%s)", e.Status)
	}
	return fmt.Sprintf("upstream failure (%s): %s", e.Status, e.Message)
}

// Timeout reports whether the upstream call hit its deadline.
func (e *UpstreamError) Timeout() bool {
	return e.Status == UpstreamStatusTimeout
}

// ResponseParseError reports a structurally invalid upstream payload.
type ResponseParseError struct {
	Reason string
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("malformed upstream response: %s", e.Reason)
}

// ConfigurationError reports missing or invalid live-API configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// Code maps an error to its stable client-facing code.
func Code(err error) string {
	var (
		validation *ValidationError
		duplicate  *DuplicateToolError
		unknown    *UnknownToolError
		location   *UnknownLocationError
		upstream   *UpstreamError
		parse      *ResponseParseError
		config     *ConfigurationError
	)
	switch {
	case errors.As(err, &validation):
		return CodeValidation
	case errors.As(err, &duplicate):
		return CodeDuplicateTool
	case errors.As(err, &unknown):
		return CodeUnknownTool
	case errors.As(err, &location):
		return CodeUnknownLocation
	case errors.As(err, &upstream):
		if upstream.Timeout() {
			return CodeUpstreamTimeout
		}
		return CodeUpstream
	case errors.As(err, &parse):
		return CodeResponseParse
	case errors.As(err, &config):
		return CodeConfiguration
	default:
		return CodeInternal
	}
}
