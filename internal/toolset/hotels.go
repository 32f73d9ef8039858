package toolset

import (
	"context"

	"github.com/tripstack/travel-mcp-server/internal/params"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func hotelsDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "searchHotels",
		Title:       "Search Hotels",
		Description: "Search for hotels in a city for specific dates",
		Params: []registry.Param{
			{Name: "city", Type: "string", Description: "City name (e.g., 'Austin', 'San Francisco')", Required: true},
			{Name: "check_in", Type: "string", Description: "Check-in date in YYYY-MM-DD format", Required: true},
			{Name: "nights", Type: "integer", Description: "Number of nights to stay", Required: true},
			{Name: "guests", Type: "integer", Description: "Number of guests", Default: 2},
		},
	}
}

func (s Services) searchHotels(ctx context.Context, args map[string]any) (map[string]any, error) {
	echo := rawEcho(args, "city", "check_in", "nights", "guests")

	criteria, err := parseHotelArgs(args)
	if err != nil {
		return errorEnvelope(err, echo), err
	}

	result, err := s.Hotels.Search(ctx, criteria)
	if err != nil {
		return errorEnvelope(err, echo), err
	}
	return result, nil
}

func parseHotelArgs(args map[string]any) (service.HotelCriteria, error) {
	var c service.HotelCriteria
	var err error

	if c.City, err = params.String(args, "city"); err != nil {
		return c, err
	}
	if c.CheckIn, err = params.Date(args, "check_in"); err != nil {
		return c, err
	}
	if c.Nights, err = params.PositiveInt(args, "nights"); err != nil {
		return c, err
	}
	if c.Guests, err = params.PositiveIntOr(args, "guests", 2); err != nil {
		return c, err
	}
	return c, nil
}
