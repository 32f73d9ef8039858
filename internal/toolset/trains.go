package toolset

import (
	"context"

	"github.com/tripstack/travel-mcp-server/internal/params"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func trainsDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "searchTrains",
		Title:       "Search Trains",
		Description: "Search for train routes between two cities",
		Params: []registry.Param{
			{Name: "from_city", Type: "string", Description: "Departure city (e.g., 'NYC', 'Chicago')", Required: true},
			{Name: "to_city", Type: "string", Description: "Arrival city (e.g., 'Boston', 'Milwaukee')", Required: true},
			{Name: "date", Type: "string", Description: "Travel date in YYYY-MM-DD format", Required: true},
			{Name: "passengers", Type: "integer", Description: "Number of passengers", Default: 1},
		},
	}
}

func (s Services) searchTrains(ctx context.Context, args map[string]any) (map[string]any, error) {
	echo := rawEcho(args, "from_city", "to_city", "date", "passengers")

	criteria, err := parseTrainArgs(args)
	if err != nil {
		return errorEnvelope(err, echo), err
	}

	result, err := s.Trains.Search(ctx, criteria)
	if err != nil {
		return errorEnvelope(err, echo), err
	}
	return result, nil
}

func parseTrainArgs(args map[string]any) (service.TrainCriteria, error) {
	var c service.TrainCriteria
	var err error

	if c.FromCity, err = params.String(args, "from_city"); err != nil {
		return c, err
	}
	if c.ToCity, err = params.String(args, "to_city"); err != nil {
		return c, err
	}
	if c.Date, err = params.Date(args, "date"); err != nil {
		return c, err
	}
	if c.Passengers, err = params.PositiveIntOr(args, "passengers", 1); err != nil {
		return c, err
	}
	return c, nil
}
