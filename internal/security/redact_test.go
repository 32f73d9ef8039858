package security_test

import (
	"testing"

	"github.com/tripstack/travel-mcp-server/internal/security"
)

func TestRedactArguments(t *testing.T) {
	args := map[string]any{
		"city":           "Austin",
		"api_key":        "secret",
		"bookingToken":   "tok",
		"correlation_id": "corr-1",
	}

	redacted := security.RedactArguments(args)
	if redacted["city"] != "Austin" {
		t.Errorf("city = %v", redacted["city"])
	}
	if redacted["api_key"] != "***" {
		t.Errorf("api_key = %v, want ***", redacted["api_key"])
	}
	if redacted["bookingToken"] != "***" {
		t.Errorf("bookingToken = %v, want ***", redacted["bookingToken"])
	}
	if redacted["correlation_id"] != "corr-1" {
		t.Errorf("correlation_id = %v", redacted["correlation_id"])
	}

	// The input map must stay untouched.
	if args["api_key"] != "secret" {
		t.Error("RedactArguments mutated its input")
	}
}

func TestRedactHeaders(t *testing.T) {
	headers := map[string]string{
		"X-RapidAPI-Host": "booking-com15.p.rapidapi.com",
		"X-RapidAPI-Key":  "secret",
		"Accept":          "application/json",
	}

	redacted := security.RedactHeaders(headers)
	if redacted["X-RapidAPI-Key"] != "***" {
		t.Errorf("X-RapidAPI-Key = %q, want ***", redacted["X-RapidAPI-Key"])
	}
	if redacted["X-RapidAPI-Host"] != "booking-com15.p.rapidapi.com" {
		t.Errorf("X-RapidAPI-Host = %q", redacted["X-RapidAPI-Host"])
	}
	if redacted["Accept"] != "application/json" {
		t.Errorf("Accept = %q", redacted["Accept"])
	}
}

func TestRedactNilMaps(t *testing.T) {
	if security.RedactArguments(nil) != nil {
		t.Error("nil arguments not passed through")
	}
	if security.RedactHeaders(nil) != nil {
		t.Error("nil headers not passed through")
	}
}
