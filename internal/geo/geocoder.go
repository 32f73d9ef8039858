// Package geo resolves city names to coordinates via the OpenStreetMap
// Nominatim API, with a static fallback table for common cities.
package geo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/upstream"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Known coordinates used when the geocoding API is unreachable. Keys are
// lowercase city names.
var fallbackCoordinates = map[string]Coordinates{
	"austin":        {30.2672, -97.7431},
	"san francisco": {37.7749, -122.4194},
	"new york":      {40.7128, -74.0060},
	"miami":         {25.7617, -80.1918},
	"chicago":       {41.8781, -87.6298},
	"los angeles":   {34.0522, -118.2437},
	"seattle":       {47.6062, -122.3321},
	"denver":        {39.7392, -104.9903},
	"atlanta":       {33.7490, -84.3880},
	"boston":        {42.3601, -71.0589},
}

// Geocoder looks up coordinates for city names.
type Geocoder struct {
	// Client performs the HTTP calls.
	Client *upstream.Client
	// BaseURL is the Nominatim search endpoint.
	BaseURL string
	// UserAgent identifies this server; Nominatim requires one.
	UserAgent string
	// Limiter throttles requests per the Nominatim usage policy (~1 rps).
	Limiter *rate.Limiter
	// Logger logs fallback decisions.
	Logger *slog.Logger
}

// New returns a geocoder with the public Nominatim endpoint and a 1 rps
// limiter.
func New(client *upstream.Client, logger *slog.Logger) *Geocoder {
	return &Geocoder{
		Client:    client,
		BaseURL:   "https://nominatim.openstreetmap.org/search",
		UserAgent: "travel-mcp-server/1.0",
		Limiter:   rate.NewLimiter(rate.Limit(1), 1),
		Logger:    logger,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves a city to coordinates. When the API fails the static
// table is consulted; a city absent from both fails with
// UnknownLocationError.
func (g *Geocoder) Lookup(ctx context.Context, city string) (Coordinates, error) {
	if strings.TrimSpace(city) == "" {
		return Coordinates{}, &errdefs.ValidationError{Field: "city", Reason: "must not be empty"}
	}

	coords, err := g.queryAPI(ctx, city)
	if err == nil {
		return coords, nil
	}
	if ctx.Err() != nil {
		return Coordinates{}, err
	}

	if g.Logger != nil {
		g.Logger.Warn("geocoding failed, using fallback table", "city", city, "error", err)
	}
	if fallback, ok := fallbackCoordinates[strings.ToLower(strings.TrimSpace(city))]; ok {
		return fallback, nil
	}
	return Coordinates{}, &errdefs.UnknownLocationError{Location: city, Known: FallbackCities()}
}

func (g *Geocoder) queryAPI(ctx context.Context, city string) (Coordinates, error) {
	if g.Client == nil {
		return Coordinates{}, &errdefs.ConfigurationError{Reason: "geocoder client is not configured"}
	}
	if g.Limiter != nil {
		if err := g.Limiter.Wait(ctx); err != nil {
			return Coordinates{}, err
		}
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")

	headers := map[string]string{"User-Agent": g.UserAgent}

	var results []nominatimResult
	if err := g.Client.GetJSON(ctx, g.BaseURL, query, headers, &results); err != nil {
		return Coordinates{}, err
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("city %q not found in geocoding results", city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, &errdefs.ResponseParseError{Reason: "geocoder returned non-numeric latitude"}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, &errdefs.ResponseParseError{Reason: "geocoder returned non-numeric longitude"}
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// FallbackCities lists cities resolvable without the API, sorted.
func FallbackCities() []string {
	out := make([]string, 0, len(fallbackCoordinates))
	for city := range fallbackCoordinates {
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}
