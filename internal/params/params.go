// Package params converts the loosely-typed argument maps arriving from
// the MCP transport into validated Go values. Every failure is a
// ValidationError naming the offending field; callers check fields in a
// fixed order so error messages stay reproducible.
package params

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
)

// String returns a required non-empty string field.
func String(args map[string]any, field string) (string, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return "", &errdefs.ValidationError{Field: field, Reason: "required"}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &errdefs.ValidationError{Field: field, Reason: "must be a string"}
	}
	if strings.TrimSpace(value) == "" {
		return "", &errdefs.ValidationError{Field: field, Reason: "must not be empty"}
	}
	return value, nil
}

// StringOr returns an optional string field, or def when absent.
func StringOr(args map[string]any, field, def string) (string, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return def, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", &errdefs.ValidationError{Field: field, Reason: "must be a string"}
	}
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	return value, nil
}

// Enum returns an optional string field restricted to allowed values.
func Enum(args map[string]any, field, def string, allowed ...string) (string, error) {
	value, err := StringOr(args, field, def)
	if err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", &errdefs.ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	}
}

// Int returns a required integer field. JSON numbers decode as float64, so
// whole floats are accepted; fractional values are rejected.
func Int(args map[string]any, field string) (int, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return 0, &errdefs.ValidationError{Field: field, Reason: "required"}
	}
	return coerceInt(raw, field)
}

// IntOr returns an optional integer field, or def when absent.
func IntOr(args map[string]any, field string, def int) (int, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return def, nil
	}
	return coerceInt(raw, field)
}

// PositiveInt returns a required integer field that must be >= 1.
func PositiveInt(args map[string]any, field string) (int, error) {
	value, err := Int(args, field)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, &errdefs.ValidationError{Field: field, Reason: "must be a positive integer"}
	}
	return value, nil
}

// PositiveIntOr returns an optional integer field >= 1, or def when absent.
func PositiveIntOr(args map[string]any, field string, def int) (int, error) {
	value, err := IntOr(args, field, def)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, &errdefs.ValidationError{Field: field, Reason: "must be a positive integer"}
	}
	return value, nil
}

// NonNegativeIntOr returns an optional integer field >= 0, or def when absent.
func NonNegativeIntOr(args map[string]any, field string, def int) (int, error) {
	value, err := IntOr(args, field, def)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, &errdefs.ValidationError{Field: field, Reason: "must not be negative"}
	}
	return value, nil
}

// Date returns a required YYYY-MM-DD field.
func Date(args map[string]any, field string) (time.Time, error) {
	value, err := String(args, field)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := timeutil.ParseISODate(value)
	if err != nil {
		return time.Time{}, &errdefs.ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return parsed, nil
}

// DateOr returns an optional YYYY-MM-DD field; ok is false when absent.
func DateOr(args map[string]any, field string) (time.Time, bool, error) {
	raw, present := args[field]
	if !present || raw == nil {
		return time.Time{}, false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return time.Time{}, false, &errdefs.ValidationError{Field: field, Reason: "must be a string"}
	}
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false, nil
	}
	parsed, err := timeutil.ParseISODate(value)
	if err != nil {
		return time.Time{}, false, &errdefs.ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return parsed, true, nil
}

// StringList returns an optional list of strings, or nil when absent.
func StringList(args map[string]any, field string) ([]string, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return nil, nil
	}
	switch typed := raw.(type) {
	case []string:
		return typed, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			value, ok := item.(string)
			if !ok {
				return nil, &errdefs.ValidationError{Field: field, Reason: "must be an array of strings"}
			}
			out = append(out, value)
		}
		return out, nil
	default:
		return nil, &errdefs.ValidationError{Field: field, Reason: "must be an array of strings"}
	}
}

func coerceInt(raw any, field string) (int, error) {
	switch typed := raw.(type) {
	case int:
		return typed, nil
	case int64:
		return int(typed), nil
	case float64:
		if typed != math.Trunc(typed) {
			return 0, &errdefs.ValidationError{Field: field, Reason: "must be an integer"}
		}
		return int(typed), nil
	case json.Number:
		value, err := typed.Int64()
		if err != nil {
			return 0, &errdefs.ValidationError{Field: field, Reason: "must be an integer"}
		}
		return int(value), nil
	default:
		return 0, &errdefs.ValidationError{Field: field, Reason: "must be an integer"}
	}
}
