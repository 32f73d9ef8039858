package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/service"
)

func fixedNow() time.Time {
	return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
}

func TestHotelSearch(t *testing.T) {
	svc := service.NewHotelService(refdata.Hotels(), fixedNow)

	got, err := svc.Search(context.Background(), service.HotelCriteria{
		City:    "Austin",
		CheckIn: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Nights:  3,
		Guests:  2,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	criteria := got["searchCriteria"].(map[string]any)
	if criteria["checkOut"] != "2025-10-04" {
		t.Errorf("checkOut = %v, want 2025-10-04", criteria["checkOut"])
	}

	hotels := got["hotels"].([]map[string]any)
	if len(hotels) == 0 {
		t.Fatal("no hotels returned for Austin")
	}
	if got["resultsFound"] != len(hotels) {
		t.Errorf("resultsFound = %v, hotels = %d", got["resultsFound"], len(hotels))
	}

	for _, hotel := range hotels {
		if hotel["checkOut"] != "2025-10-04" {
			t.Errorf("hotel %v checkOut = %v", hotel["name"], hotel["checkOut"])
		}
		perNight := hotel["pricePerNight"].(float64)
		taxes := hotel["taxesAndFees"].(float64)
		total := hotel["totalPrice"].(float64)

		wantTaxes := service.Round2(perNight * 3 * 0.15)
		if math.Abs(taxes-wantTaxes) > 1e-9 {
			t.Errorf("hotel %v taxesAndFees = %v, want %v", hotel["name"], taxes, wantTaxes)
		}
		wantTotal := service.Round2(perNight*3 + taxes)
		if math.Abs(total-wantTotal) > 1e-9 {
			t.Errorf("hotel %v totalPrice = %v, want %v", hotel["name"], total, wantTotal)
		}
	}
}

func TestHotelSearchUnknownCity(t *testing.T) {
	svc := service.NewHotelService(refdata.Hotels(), fixedNow)

	got, err := svc.Search(context.Background(), service.HotelCriteria{
		City:    "Atlantis",
		CheckIn: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Nights:  2,
		Guests:  2,
	})
	if got != nil {
		t.Error("unknown city produced results")
	}
	var unknown *errdefs.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if len(unknown.Known) == 0 {
		t.Error("error does not list supported cities")
	}
}

func TestHotelSearchPastCheckIn(t *testing.T) {
	svc := service.NewHotelService(refdata.Hotels(), fixedNow)

	_, err := svc.Search(context.Background(), service.HotelCriteria{
		City:    "Austin",
		CheckIn: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Nights:  2,
		Guests:  2,
	})
	var v *errdefs.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if v.Field != "check_in" {
		t.Errorf("field = %q, want check_in", v.Field)
	}
}

func TestHotelSearchTodayAccepted(t *testing.T) {
	svc := service.NewHotelService(refdata.Hotels(), fixedNow)

	_, err := svc.Search(context.Background(), service.HotelCriteria{
		City:    "Austin",
		CheckIn: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		Nights:  1,
		Guests:  1,
	})
	if err != nil {
		t.Fatalf("same-day check-in rejected: %v", err)
	}
}
