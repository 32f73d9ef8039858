// Package configfile defines the YAML configuration document: server
// identity, transport, response caching, and the upstream API credentials
// for the live verticals.
package configfile

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Config is the top-level YAML configuration.
type Config struct {
	// Server describes the MCP server settings.
	Server ServerConfig `yaml:"server"`
	// FlightAPI configures the flight search upstream.
	FlightAPI VerticalAPIConfig `yaml:"flight_api"`
	// CarAPI configures the car rental upstream.
	CarAPI VerticalAPIConfig `yaml:"car_api"`
	// Geocoder configures the city-to-coordinates lookup.
	Geocoder GeocoderConfig `yaml:"geocoder"`
}

// ServerConfig defines MCP server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// ToolTimeout limits a single tool call, e.g. "30s".
	ToolTimeout string `yaml:"tool_timeout"`
	// Idempotency configures optional response caching.
	Idempotency IdempotencyConfig `yaml:"idempotency_cache"`
	// HTTP configures the HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables session tracking.
	Stateless bool `yaml:"stateless"`
}

// IdempotencyConfig configures response caching for repeated tool calls.
type IdempotencyConfig struct {
	// Enabled toggles idempotency caching.
	Enabled bool `yaml:"enabled"`
	// TTL controls how long cached responses are kept.
	TTL string `yaml:"ttl"`
	// MaxEntries limits the cache size.
	MaxEntries int `yaml:"max_entries"`
	// KeyStrategy selects cache key strategy (correlation_id, arguments_hash, auto).
	KeyStrategy string `yaml:"key_strategy"`
}

// VerticalAPIConfig holds the upstream credentials for one live vertical.
// Empty credentials are allowed at load time; the vertical then fails
// each call with a ConfigurationError instead of falling back to mock data.
type VerticalAPIConfig struct {
	RapidAPI RapidAPIConfig `yaml:"rapidapi"`
}

// RapidAPIConfig describes one RapidAPI endpoint.
type RapidAPIConfig struct {
	// Host is the X-RapidAPI-Host header value.
	Host string `yaml:"host"`
	// Key is the X-RapidAPI-Key header value.
	Key string `yaml:"key"`
	// BaseURL is the API root URL.
	BaseURL string `yaml:"base_url"`
}

// GeocoderConfig configures the Nominatim geocoder.
type GeocoderConfig struct {
	// BaseURL is the search endpoint.
	BaseURL string `yaml:"base_url"`
	// UserAgent identifies this client; Nominatim requires one.
	UserAgent string `yaml:"user_agent"`
	// RatePerSecond caps outbound geocoding requests.
	RatePerSecond float64 `yaml:"rate_per_second"`
}

// Load parses YAML bytes into Config and validates it. Unknown fields
// are rejected.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Load(data, &cfg, yaml.WithKnownFields()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural invariants that would otherwise surface as
// confusing runtime failures.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Name) == "" {
		return fmt.Errorf("server.name is required")
	}
	if strings.TrimSpace(cfg.Server.Version) == "" {
		return fmt.Errorf("server.version is required")
	}
	switch cfg.Server.Transport {
	case "", "stdio", "http":
	default:
		return fmt.Errorf("server.transport must be \"stdio\" or \"http\", got %q", cfg.Server.Transport)
	}
	if cfg.Server.Transport == "http" && strings.TrimSpace(cfg.Server.HTTP.Listen) == "" {
		return fmt.Errorf("server.http.listen is required for the http transport")
	}
	if cfg.Server.Idempotency.MaxEntries < 0 {
		return fmt.Errorf("server.idempotency_cache.max_entries must not be negative")
	}
	switch cfg.Server.Idempotency.KeyStrategy {
	case "", "auto", "correlation_id", "arguments_hash":
	default:
		return fmt.Errorf("server.idempotency_cache.key_strategy must be auto, correlation_id, or arguments_hash")
	}
	if cfg.Geocoder.RatePerSecond < 0 {
		return fmt.Errorf("geocoder.rate_per_second must not be negative")
	}
	return nil
}
