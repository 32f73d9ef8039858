package toolset

import (
	"context"

	"github.com/tripstack/travel-mcp-server/internal/params"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func flightsDescriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "searchFlights",
		Title:       "Search Flights",
		Description: "Search for flights between two airports using the live Booking.com API",
		Params: []registry.Param{
			{Name: "from_id", Type: "string", Description: "Departure airport ID (e.g., 'BOM.AIRPORT', 'LON.AIRPORT')", Required: true},
			{Name: "to_id", Type: "string", Description: "Arrival airport ID (e.g., 'DEL.AIRPORT', 'NYC.AIRPORT')", Required: true},
			{Name: "depart_date", Type: "string", Description: "Departure date in YYYY-MM-DD format", Required: true},
			{Name: "return_date", Type: "string", Description: "Return date in YYYY-MM-DD format for round trips"},
			{Name: "adults", Type: "integer", Description: "Number of adult passengers", Default: 1},
			{Name: "children", Type: "integer", Description: "Number of child passengers", Default: 0},
			{Name: "stops", Type: "string", Description: "Maximum number of stops", Default: "none", Enum: []string{"none", "one", "any"}},
			{Name: "cabin_class", Type: "string", Description: "Cabin class", Default: "ECONOMY", Enum: []string{"ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"}},
			{Name: "currency_code", Type: "string", Description: "Currency code", Default: "USD"},
		},
	}
}

// searchFlights validates fields in declaration order, so the first
// violation reported is always the same for a given input.
func (s Services) searchFlights(ctx context.Context, args map[string]any) (map[string]any, error) {
	echo := rawEcho(args, "from_id", "to_id", "depart_date", "return_date", "adults", "children", "stops", "cabin_class", "currency_code")

	criteria, err := parseFlightArgs(args)
	if err != nil {
		return errorEnvelope(err, echo), err
	}

	result, err := s.Flights.Search(ctx, criteria)
	if err != nil {
		return errorEnvelope(err, echo), err
	}
	return result, nil
}

func parseFlightArgs(args map[string]any) (service.FlightCriteria, error) {
	var c service.FlightCriteria
	var err error

	if c.FromID, err = params.String(args, "from_id"); err != nil {
		return c, err
	}
	if c.ToID, err = params.String(args, "to_id"); err != nil {
		return c, err
	}
	if c.DepartDate, err = params.Date(args, "depart_date"); err != nil {
		return c, err
	}
	if c.ReturnDate, c.HasReturn, err = params.DateOr(args, "return_date"); err != nil {
		return c, err
	}
	if c.Adults, err = params.PositiveIntOr(args, "adults", 1); err != nil {
		return c, err
	}
	if c.Children, err = params.NonNegativeIntOr(args, "children", 0); err != nil {
		return c, err
	}
	if c.Stops, err = params.Enum(args, "stops", "none", "none", "one", "any"); err != nil {
		return c, err
	}
	if c.CabinClass, err = params.Enum(args, "cabin_class", "ECONOMY", "ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"); err != nil {
		return c, err
	}
	if c.CurrencyCode, err = params.StringOr(args, "currency_code", "USD"); err != nil {
		return c, err
	}
	return c, nil
}
