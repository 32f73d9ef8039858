package toolset

import (
	"context"

	"github.com/tripstack/travel-mcp-server/internal/params"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func itineraryDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "generateItinerary",
		Title:       "Generate Itinerary",
		Description: "Generate a day-by-day travel itinerary for a city",
		Params: []registry.Param{
			{Name: "city", Type: "string", Description: "Destination city (e.g., 'Austin', 'New York')", Required: true},
			{Name: "days", Type: "integer", Description: "Number of days (1-7)", Required: true},
			{Name: "interests", Type: "array", Items: "string", Description: "Areas of interest (food, culture, nature, nightlife, shopping)"},
		},
	}
}

func (s Services) generateItinerary(ctx context.Context, args map[string]any) (map[string]any, error) {
	echo := rawEcho(args, "city", "days", "interests")

	criteria, err := parseItineraryArgs(args)
	if err != nil {
		return errorEnvelope(err, echo), err
	}

	result, err := s.Itineraries.Generate(ctx, criteria)
	if err != nil {
		return errorEnvelope(err, echo), err
	}
	return result, nil
}

func parseItineraryArgs(args map[string]any) (service.ItineraryCriteria, error) {
	var c service.ItineraryCriteria
	var err error

	if c.City, err = params.String(args, "city"); err != nil {
		return c, err
	}
	if c.Days, err = params.PositiveInt(args, "days"); err != nil {
		return c, err
	}
	if c.Interests, err = params.StringList(args, "interests"); err != nil {
		return c, err
	}
	return c, nil
}
