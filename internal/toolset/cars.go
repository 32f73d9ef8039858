package toolset

import (
	"context"

	"github.com/tripstack/travel-mcp-server/internal/params"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func carsDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "searchCars",
		Title:       "Search Rental Cars",
		Description: "Search for rental cars in a city using the live Booking.com API",
		Params: []registry.Param{
			{Name: "city", Type: "string", Description: "City name for car pickup", Required: true},
			{Name: "pickup_date", Type: "string", Description: "Pickup date in YYYY-MM-DD format", Required: true},
			{Name: "days", Type: "integer", Description: "Number of rental days", Required: true},
			{Name: "car_type", Type: "string", Description: "Preferred car type", Default: "any", Enum: []string{"any", "economy", "compact", "midsize", "suv"}},
		},
	}
}

func (s Services) searchCars(ctx context.Context, args map[string]any) (map[string]any, error) {
	echo := rawEcho(args, "city", "pickup_date", "days", "car_type")

	criteria, err := parseCarArgs(args)
	if err != nil {
		return errorEnvelope(err, echo), err
	}

	result, err := s.Cars.Search(ctx, criteria)
	if err != nil {
		return errorEnvelope(err, echo), err
	}
	return result, nil
}

func parseCarArgs(args map[string]any) (service.CarCriteria, error) {
	var c service.CarCriteria
	var err error

	if c.City, err = params.String(args, "city"); err != nil {
		return c, err
	}
	if c.PickupDate, err = params.Date(args, "pickup_date"); err != nil {
		return c, err
	}
	if c.Days, err = params.PositiveInt(args, "days"); err != nil {
		return c, err
	}
	if c.CarType, err = params.Enum(args, "car_type", "any", "any", "economy", "compact", "midsize", "suv"); err != nil {
		return c, err
	}
	return c, nil
}
