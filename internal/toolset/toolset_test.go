package toolset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/geo"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/service"
	"github.com/tripstack/travel-mcp-server/internal/toolset"
	"github.com/tripstack/travel-mcp-server/internal/upstream"
)

func fixedNow() time.Time {
	return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
}

// newFixture registers the full toolset against a fake upstream. The
// handler serves every live-API path; tests that must not reach the
// network pass a handler that fails the test.
func newFixture(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *registry.Registry {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := &upstream.Client{Timeout: timeout}
	creds := service.Credentials{Host: "api.test", Key: "test-key", BaseURL: server.URL}
	geocoder := &geo.Geocoder{Client: client, BaseURL: server.URL + "/geocode", UserAgent: "test"}

	reg := registry.New()
	err := toolset.Register(reg, toolset.Services{
		Flights:     service.NewFlightService(client, creds, fixedNow),
		Hotels:      service.NewHotelService(refdata.Hotels(), fixedNow),
		Cars:        service.NewCarService(client, geocoder, creds, fixedNow),
		Trains:      service.NewTrainService(refdata.Trains(), fixedNow),
		Itineraries: service.NewItineraryService(refdata.Itineraries(), fixedNow),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return reg
}

func noUpstream(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call to %s", r.URL.Path)
	}
}

func TestRegisterListsToolsInOrder(t *testing.T) {
	reg := newFixture(t, noUpstream(t), 0)

	want := []string{"searchFlights", "searchHotels", "searchCars", "searchTrains", "generateItinerary"}
	list := reg.List()
	if len(list) != len(want) {
		t.Fatalf("registered %d tools, want %d", len(list), len(want))
	}
	for i, descriptor := range list {
		if descriptor.Name != want[i] {
			t.Errorf("tool[%d] = %s, want %s", i, descriptor.Name, want[i])
		}
	}
}

func TestValidationFailureSkipsUpstream(t *testing.T) {
	reg := newFixture(t, noUpstream(t), 0)

	handler, err := reg.Get("searchFlights")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	args := map[string]any{
		"from_id":     "AUS.AIRPORT",
		"to_id":       "JFK.AIRPORT",
		"depart_date": "10/01/2025",
	}
	envelope, callErr := handler.Execute(context.Background(), args)
	if callErr == nil {
		t.Fatal("malformed depart_date accepted")
	}

	if envelope["code"] != errdefs.CodeValidation {
		t.Errorf("code = %v, want %s", envelope["code"], errdefs.CodeValidation)
	}
	if envelope["error"] == nil {
		t.Error("envelope has no error message")
	}
	if _, ok := envelope["flights"]; ok {
		t.Error("error envelope carries results")
	}

	criteria := envelope["searchCriteria"].(map[string]any)
	if criteria["depart_date"] != "10/01/2025" {
		t.Errorf("criteria echo = %v", criteria)
	}
}

func TestUpstreamTimeoutEnvelope(t *testing.T) {
	reg := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geocode" {
			w.Write([]byte(`[{"lat": "30.2672", "lon": "-97.7431"}]`))
			return
		}
		time.Sleep(300 * time.Millisecond)
	}, 50*time.Millisecond)

	handler, err := reg.Get("searchCars")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	args := map[string]any{"city": "Austin", "pickup_date": "2025-10-01", "days": float64(3)}
	envelope, callErr := handler.Execute(context.Background(), args)
	if callErr == nil {
		t.Fatal("timed-out search reported success")
	}

	if envelope["code"] != errdefs.CodeUpstreamTimeout {
		t.Errorf("code = %v, want %s", envelope["code"], errdefs.CodeUpstreamTimeout)
	}
	if _, ok := envelope["cars"]; ok {
		t.Error("error envelope carries results")
	}
	criteria := envelope["searchCriteria"].(map[string]any)
	if criteria["city"] != "Austin" {
		t.Errorf("criteria echo = %v", criteria)
	}
}

func TestUnknownLocationEnvelopeDetails(t *testing.T) {
	reg := newFixture(t, noUpstream(t), 0)

	handler, err := reg.Get("searchHotels")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	args := map[string]any{"city": "Atlantis", "check_in": "2025-10-01", "nights": float64(2)}
	envelope, callErr := handler.Execute(context.Background(), args)
	if callErr == nil {
		t.Fatal("unknown city reported success")
	}
	if envelope["code"] != errdefs.CodeUnknownLocation {
		t.Errorf("code = %v", envelope["code"])
	}
	details, _ := envelope["details"].(string)
	if details == "" {
		t.Error("envelope does not list supported cities")
	}
}

func TestMockToolSuccess(t *testing.T) {
	reg := newFixture(t, noUpstream(t), 0)

	handler, err := reg.Get("searchTrains")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	args := map[string]any{
		"from_city":  "NYC",
		"to_city":    "Boston",
		"date":       "2025-10-01",
		"passengers": float64(2),
	}
	envelope, callErr := handler.Execute(context.Background(), args)
	if callErr != nil {
		t.Fatalf("Execute failed: %v", callErr)
	}
	if _, ok := envelope["trains"]; !ok {
		t.Error("success envelope has no trains")
	}
	if _, ok := envelope["error"]; ok {
		t.Error("success envelope carries an error")
	}
}
