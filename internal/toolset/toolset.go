// Package toolset binds the search services to the tool registry. Each
// tool wrapper validates its arguments in a fixed declaration order,
// invokes its service, and shapes the result envelope the client sees.
package toolset

import (
	"errors"
	"strings"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

// Services collects the per-vertical search services.
type Services struct {
	Flights     *service.FlightService
	Hotels      *service.HotelService
	Cars        *service.CarService
	Trains      *service.TrainService
	Itineraries *service.ItineraryService
}

// Register adds every travel tool to the registry. Registration order is
// the client-facing listing order.
func Register(reg *registry.Registry, s Services) error {
	bindings := []struct {
		descriptor registry.Descriptor
		handler    registry.Handler
	}{
		{flightsDescriptor(), registry.HandlerFunc(s.searchFlights)},
		{hotelsDescriptor(), registry.HandlerFunc(s.searchHotels)},
		{carsDescriptor(), registry.HandlerFunc(s.searchCars)},
		{trainsDescriptor(), registry.HandlerFunc(s.searchTrains)},
		{itineraryDescriptor(), registry.HandlerFunc(s.generateItinerary)},
	}
	for _, binding := range bindings {
		if err := reg.Register(binding.descriptor, binding.handler); err != nil {
			return err
		}
	}
	return nil
}

// errorEnvelope shapes a failed tool call. Results keys are absent; the
// criteria echo carries whatever raw input the caller supplied.
func errorEnvelope(err error, criteria map[string]any) map[string]any {
	envelope := map[string]any{
		"error":          err.Error(),
		"code":           errdefs.Code(err),
		"searchCriteria": criteria,
	}

	var upstreamErr *errdefs.UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.RequestID != "" {
		envelope["requestId"] = upstreamErr.RequestID
	}
	var locationErr *errdefs.UnknownLocationError
	if errors.As(err, &locationErr) && len(locationErr.Known) > 0 {
		envelope["details"] = "supported: " + strings.Join(locationErr.Known, ", ")
	}
	return envelope
}

// rawEcho copies the named arguments that were actually supplied, so an
// error response still mirrors the caller's input.
func rawEcho(args map[string]any, names ...string) map[string]any {
	echo := make(map[string]any, len(names))
	for _, name := range names {
		if value, ok := args[name]; ok && value != nil {
			echo[name] = value
		}
	}
	return echo
}
