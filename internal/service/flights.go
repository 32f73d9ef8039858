package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
	"github.com/tripstack/travel-mcp-server/internal/upstream"
)

// maxFlightResults caps the number of offers mapped into a response.
const maxFlightResults = 10

// Credentials configures one RapidAPI-backed vertical.
type Credentials struct {
	// Host is the X-RapidAPI-Host header value.
	Host string
	// Key is the X-RapidAPI-Key header value.
	Key string
	// BaseURL is the API root, e.g. "https://booking-com15.p.rapidapi.com/api/v1/flights".
	BaseURL string
}

// validate fails with ConfigurationError when any field is missing. A
// live vertical without credentials degrades to this deterministic
// error; it never falls back to fabricated data.
func (c Credentials) validate(vertical string) error {
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		return &errdefs.ConfigurationError{Reason: vertical + " base_url is not configured"}
	case strings.TrimSpace(c.Host) == "":
		return &errdefs.ConfigurationError{Reason: vertical + " rapidapi host is not configured"}
	case strings.TrimSpace(c.Key) == "":
		return &errdefs.ConfigurationError{Reason: vertical + " rapidapi key is not configured"}
	}
	return nil
}

// headers returns the RapidAPI auth headers.
func (c Credentials) headers() map[string]string {
	return map[string]string{
		"X-RapidAPI-Host": c.Host,
		"X-RapidAPI-Key":  c.Key,
	}
}

// FlightCriteria is a validated flight search request.
type FlightCriteria struct {
	FromID       string
	ToID         string
	DepartDate   time.Time
	ReturnDate   time.Time
	HasReturn    bool
	Adults       int
	Children     int
	Stops        string
	CabinClass   string
	CurrencyCode string
}

// FlightService searches flights through the Booking.com RapidAPI.
type FlightService struct {
	client *upstream.Client
	creds  Credentials
	now    func() time.Time
}

// NewFlightService builds a flight service. A nil now defaults to
// time.Now.
func NewFlightService(client *upstream.Client, creds Credentials, now func() time.Time) *FlightService {
	if now == nil {
		now = time.Now
	}
	return &FlightService{client: client, creds: creds, now: now}
}

type flightAggregation struct {
	TotalCount int       `json:"totalCount"`
	MinPrice   *apiPrice `json:"minPrice"`
	Budget     struct {
		Max *apiPrice `json:"max"`
	} `json:"budget"`
	Airlines []json.RawMessage `json:"airlines"`
	Stops    []struct {
		NumberOfStops int `json:"numberOfStops"`
		Count         int `json:"count"`
	} `json:"stops"`
}

type flightsEnvelope struct {
	Status bool `json:"status"`
	Data   struct {
		Error *struct {
			Code      string `json:"code"`
			RequestID string `json:"requestId"`
		} `json:"error"`
		FlightOffers []json.RawMessage `json:"flightOffers"`
		Aggregation  flightAggregation `json:"aggregation"`
	} `json:"data"`
}

type flightAirport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	CityName string `json:"cityName"`
}

type flightLeg struct {
	DepartureAirport flightAirport `json:"departureAirport"`
	ArrivalAirport   flightAirport `json:"arrivalAirport"`
	DepartureTime    string        `json:"departureTime"`
	ArrivalTime      string        `json:"arrivalTime"`
	TotalTime        int           `json:"totalTime"`
	CabinClass       string        `json:"cabinClass"`
	FlightStops      []json.RawMessage `json:"flightStops"`
	FlightInfo       struct {
		FlightNumber int `json:"flightNumber"`
		CarrierInfo  struct {
			MarketingCarrier string `json:"marketingCarrier"`
		} `json:"carrierInfo"`
	} `json:"flightInfo"`
	CarriersData []struct {
		Name string `json:"name"`
	} `json:"carriersData"`
}

type flightOffer struct {
	Token    string `json:"token"`
	TripType string `json:"tripType"`
	Segments []struct {
		Legs []flightLeg `json:"legs"`
	} `json:"segments"`
	PriceBreakdown struct {
		Total    *apiPrice `json:"total"`
		BaseFare *apiPrice `json:"baseFare"`
		Tax      *apiPrice `json:"tax"`
	} `json:"priceBreakdown"`
}

// Search issues one searchFlights call and maps the response into the
// common schema. Malformed individual offers are skipped; a malformed
// top-level payload aborts with ResponseParseError.
func (s *FlightService) Search(ctx context.Context, c FlightCriteria) (map[string]any, error) {
	if err := s.creds.validate("flight_api"); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("fromId", c.FromID)
	query.Set("toId", c.ToID)
	query.Set("departDate", timeutil.FormatISODate(c.DepartDate))
	query.Set("pageNo", "1")
	query.Set("adults", strconv.Itoa(c.Adults))
	query.Set("children", fmt.Sprintf("%d,17", c.Children))
	query.Set("sort", "BEST")
	query.Set("cabinClass", c.CabinClass)
	query.Set("currency_code", c.CurrencyCode)
	query.Set("stops", c.Stops)
	if c.HasReturn {
		query.Set("returnDate", timeutil.FormatISODate(c.ReturnDate))
	}

	var envelope flightsEnvelope
	if err := s.client.GetJSON(ctx, s.creds.BaseURL+"/searchFlights", query, s.creds.headers(), &envelope); err != nil {
		return nil, err
	}

	if !envelope.Status || envelope.Data.Error != nil {
		upstreamErr := &errdefs.UpstreamError{Status: "api_error", Message: "upstream rejected the search"}
		if envelope.Data.Error != nil {
			upstreamErr.Message = envelope.Data.Error.Code
			upstreamErr.RequestID = envelope.Data.Error.RequestID
		}
		return nil, upstreamErr
	}

	flights := make([]map[string]any, 0, maxFlightResults)
	for _, raw := range envelope.Data.FlightOffers {
		if len(flights) == maxFlightResults {
			break
		}
		if flight, ok := parseFlightOffer(raw); ok {
			flights = append(flights, flight)
		}
	}

	aggregation := envelope.Data.Aggregation
	directFlights := 0
	for _, stop := range aggregation.Stops {
		if stop.NumberOfStops == 0 {
			directFlights = stop.Count
			break
		}
	}

	return map[string]any{
		"searchCriteria":   s.criteriaEcho(c),
		"resultsFound":     len(envelope.Data.FlightOffers),
		"resultsDisplayed": len(flights),
		"summary": map[string]any{
			"totalFlights":  aggregation.TotalCount,
			"minPrice":      formatAPIPrice(aggregation.MinPrice),
			"priceRange":    fmt.Sprintf("%s - %s", formatAPIPrice(aggregation.MinPrice), formatAPIPrice(aggregation.Budget.Max)),
			"airlines":      len(aggregation.Airlines),
			"directFlights": directFlights,
		},
		"flights":         flights,
		"searchTimestamp": s.now().Format(time.RFC3339),
		"source":          "Booking.com RapidAPI",
	}, nil
}

func (s *FlightService) criteriaEcho(c FlightCriteria) map[string]any {
	criteria := map[string]any{
		"from":       c.FromID,
		"to":         c.ToID,
		"departDate": timeutil.FormatISODate(c.DepartDate),
		"adults":     c.Adults,
		"children":   c.Children,
		"cabinClass": c.CabinClass,
		"stops":      c.Stops,
	}
	if c.HasReturn {
		criteria["returnDate"] = timeutil.FormatISODate(c.ReturnDate)
	}
	return criteria
}

// parseFlightOffer maps one raw offer to the simplified schema. A false
// return drops the record without failing the request.
func parseFlightOffer(raw json.RawMessage) (map[string]any, bool) {
	var offer flightOffer
	if err := json.Unmarshal(raw, &offer); err != nil {
		return nil, false
	}
	if len(offer.Segments) == 0 {
		return nil, false
	}

	segments := make([]map[string]any, 0, len(offer.Segments))
	for _, segment := range offer.Segments {
		if len(segment.Legs) == 0 {
			continue
		}
		// Direct flights or the first leg of a connection.
		leg := segment.Legs[0]

		departDate, departTime, ok := splitISOTimestamp(leg.DepartureTime)
		if !ok {
			return nil, false
		}
		arriveDate, arriveTime, ok := splitISOTimestamp(leg.ArrivalTime)
		if !ok {
			return nil, false
		}
		if leg.DepartureAirport.Code == "" || leg.ArrivalAirport.Code == "" {
			return nil, false
		}

		airline := "Unknown"
		if len(leg.CarriersData) > 0 {
			airline = leg.CarriersData[0].Name
		}
		cabin := leg.CabinClass
		if cabin == "" {
			cabin = "ECONOMY"
		}

		segments = append(segments, map[string]any{
			"departure": map[string]any{
				"airport":     leg.DepartureAirport.Code,
				"airportName": leg.DepartureAirport.Name,
				"city":        leg.DepartureAirport.CityName,
				"time":        departTime,
				"date":        departDate,
			},
			"arrival": map[string]any{
				"airport":     leg.ArrivalAirport.Code,
				"airportName": leg.ArrivalAirport.Name,
				"city":        leg.ArrivalAirport.CityName,
				"time":        arriveTime,
				"date":        arriveDate,
			},
			"duration":     formatSeconds(leg.TotalTime),
			"flightNumber": fmt.Sprintf("%s%d", leg.FlightInfo.CarrierInfo.MarketingCarrier, leg.FlightInfo.FlightNumber),
			"airline":      airline,
			"stops":        len(leg.FlightStops),
			"cabinClass":   cabin,
		})
	}
	if len(segments) == 0 {
		return nil, false
	}

	tripType := offer.TripType
	if tripType == "" {
		tripType = "UNKNOWN"
	}

	return map[string]any{
		"segments":   segments,
		"totalPrice": formatAPIPrice(offer.PriceBreakdown.Total),
		"priceBreakdown": map[string]any{
			"baseFare": formatAPIPrice(offer.PriceBreakdown.BaseFare),
			"taxes":    formatAPIPrice(offer.PriceBreakdown.Tax),
			"total":    formatAPIPrice(offer.PriceBreakdown.Total),
		},
		"tripType":     tripType,
		"bookingToken": offer.Token,
		"isRoundTrip":  len(offer.Segments) > 1,
	}, true
}

// splitISOTimestamp splits "2025-10-01T08:30:00" into date and HH:MM.
func splitISOTimestamp(value string) (date, clock string, ok bool) {
	parts := strings.SplitN(value, "T", 2)
	if len(parts) != 2 || len(parts[1]) < 5 {
		return "", "", false
	}
	return parts[0], parts[1][:5], true
}

// formatSeconds renders a duration in seconds as "4h 30m".
func formatSeconds(totalSeconds int) string {
	if totalSeconds <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", totalSeconds/3600, totalSeconds%3600/60)
}
