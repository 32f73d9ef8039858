package service_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func trainCriteria() service.TrainCriteria {
	return service.TrainCriteria{
		FromCity:   "NYC",
		ToCity:     "Boston",
		Date:       time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Passengers: 2,
	}
}

func TestTrainSearch(t *testing.T) {
	svc := service.NewTrainService(refdata.Trains(), fixedNow)

	got, err := svc.Search(context.Background(), trainCriteria())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	trains := got["trains"].([]map[string]any)
	if len(trains) < 3 || len(trains) > 8 {
		t.Fatalf("len(trains) = %d, want 3..8", len(trains))
	}
	if got["resultsFound"] != len(trains) {
		t.Errorf("resultsFound = %v, trains = %d", got["resultsFound"], len(trains))
	}

	prevDeparture := ""
	for _, train := range trains {
		departure := train["departure"].(map[string]any)["time"].(string)
		if departure < prevDeparture {
			t.Errorf("trains not sorted by departure: %s after %s", departure, prevDeparture)
		}
		prevDeparture = departure

		for _, class := range train["classes"].([]map[string]any) {
			perPerson := class["pricePerPerson"].(float64)
			total := class["totalPrice"].(float64)
			if math.Abs(total-service.Round2(perPerson*2)) > 1e-9 {
				t.Errorf("class %v: totalPrice %v != pricePerPerson %v x 2", class["className"], total, perPerson)
			}
		}
	}
}

func TestTrainSearchDeterministic(t *testing.T) {
	svc := service.NewTrainService(refdata.Trains(), fixedNow)

	first, err := svc.Search(context.Background(), trainCriteria())
	if err != nil {
		t.Fatalf("first Search failed: %v", err)
	}
	second, err := svc.Search(context.Background(), trainCriteria())
	if err != nil {
		t.Fatalf("second Search failed: %v", err)
	}

	if !reflect.DeepEqual(first["trains"], second["trains"]) {
		t.Error("same route and date produced different schedules")
	}
}

func TestTrainSearchCityAliases(t *testing.T) {
	svc := service.NewTrainService(refdata.Trains(), fixedNow)

	c := trainCriteria()
	c.FromCity = "New York"
	if _, err := svc.Search(context.Background(), c); err != nil {
		t.Errorf("alias New York not resolved: %v", err)
	}

	// Reverse direction is served by the same route entry.
	c = trainCriteria()
	c.FromCity, c.ToCity = c.ToCity, c.FromCity
	if _, err := svc.Search(context.Background(), c); err != nil {
		t.Errorf("reverse direction failed: %v", err)
	}
}

func TestTrainSearchUnknownRoute(t *testing.T) {
	svc := service.NewTrainService(refdata.Trains(), fixedNow)

	c := trainCriteria()
	c.ToCity = "Anchorage"
	got, err := svc.Search(context.Background(), c)
	if got != nil {
		t.Error("unknown route produced results")
	}
	var unknown *errdefs.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if len(unknown.Known) == 0 {
		t.Error("error does not list served routes")
	}
}

func TestTrainSearchPastDate(t *testing.T) {
	svc := service.NewTrainService(refdata.Trains(), fixedNow)

	c := trainCriteria()
	c.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Search(context.Background(), c)
	var v *errdefs.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if v.Field != "date" {
		t.Errorf("field = %q, want date", v.Field)
	}
}
