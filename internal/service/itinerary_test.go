package service_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func TestGenerateItinerary(t *testing.T) {
	svc := service.NewItineraryService(refdata.Itineraries(), fixedNow)

	got, err := svc.Generate(context.Background(), service.ItineraryCriteria{
		City:      "Austin",
		Days:      3,
		Interests: []string{"music", "food", "outdoors"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	itinerary := got["itinerary"].(map[string]any)
	if len(itinerary) != 3 {
		t.Fatalf("itinerary has %d days, want 3", len(itinerary))
	}

	budgetTotal := 0
	for day := 1; day <= 3; day++ {
		key := fmt.Sprintf("day%d", day)
		plan, ok := itinerary[key].(map[string]any)
		if !ok {
			t.Fatalf("missing %s", key)
		}
		if plan["day"] != day {
			t.Errorf("%s day field = %v", key, plan["day"])
		}
		if len(plan["morning"].([]map[string]any)) == 0 {
			t.Errorf("%s has an empty morning", key)
		}

		budget := plan["dailyBudget"].(map[string]any)
		sum := budget["food"].(int) + budget["attractions"].(int) + budget["activities"].(int) + budget["transportation"].(int)
		if budget["total"] != sum {
			t.Errorf("%s budget total %v != component sum %d", key, budget["total"], sum)
		}
		budgetTotal += budget["total"].(int)
	}

	summary := got["summary"].(map[string]any)
	estimate := summary["totalEstimatedBudget"].(map[string]any)
	if estimate["perPerson"] != budgetTotal {
		t.Errorf("summary perPerson = %v, daily totals sum to %d", estimate["perPerson"], budgetTotal)
	}
	if summary["duration"] != "3 days" {
		t.Errorf("duration = %v", summary["duration"])
	}
}

func TestGenerateItineraryDeterministic(t *testing.T) {
	svc := service.NewItineraryService(refdata.Itineraries(), fixedNow)
	criteria := service.ItineraryCriteria{City: "San Francisco", Days: 2, Interests: []string{"culture"}}

	first, err := svc.Generate(context.Background(), criteria)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := svc.Generate(context.Background(), criteria)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if !reflect.DeepEqual(first["itinerary"], second["itinerary"]) {
		t.Error("same criteria produced different itineraries")
	}
}

func TestGenerateItineraryDefaultInterests(t *testing.T) {
	svc := service.NewItineraryService(refdata.Itineraries(), fixedNow)

	got, err := svc.Generate(context.Background(), service.ItineraryCriteria{City: "New York", Days: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	summary := got["summary"].(map[string]any)
	interests := summary["interests"].([]string)
	if !reflect.DeepEqual(interests, []string{"culture", "food", "nature"}) {
		t.Errorf("default interests = %v", interests)
	}
	if summary["duration"] != "1 day" {
		t.Errorf("duration = %v", summary["duration"])
	}
}

func TestGenerateItineraryUnknownCity(t *testing.T) {
	svc := service.NewItineraryService(refdata.Itineraries(), fixedNow)

	got, err := svc.Generate(context.Background(), service.ItineraryCriteria{City: "Gotham", Days: 2})
	if got != nil {
		t.Error("unknown city produced an itinerary")
	}
	var unknown *errdefs.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
}

func TestGenerateItineraryDaysRange(t *testing.T) {
	svc := service.NewItineraryService(refdata.Itineraries(), fixedNow)

	for _, days := range []int{0, 8} {
		_, err := svc.Generate(context.Background(), service.ItineraryCriteria{City: "Austin", Days: days})
		var v *errdefs.ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("days=%d: expected ValidationError, got %v", days, err)
		}
		if v.Field != "days" {
			t.Errorf("days=%d: field = %q", days, v.Field)
		}
	}
}
