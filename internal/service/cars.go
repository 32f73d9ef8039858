package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/geo"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
	"github.com/tripstack/travel-mcp-server/internal/upstream"
)

// maxCarResults caps the number of rentals mapped into a response.
const maxCarResults = 15

// CarCriteria is a validated car rental search request.
type CarCriteria struct {
	City       string
	PickupDate time.Time
	Days       int
	CarType    string
}

// CarService searches rental cars through the Booking.com RapidAPI.
// The pickup city is geocoded first; pickup and drop-off share the same
// coordinates.
type CarService struct {
	client   *upstream.Client
	geocoder *geo.Geocoder
	creds    Credentials
	now      func() time.Time
}

// NewCarService builds a car rental service. A nil now defaults to
// time.Now.
func NewCarService(client *upstream.Client, geocoder *geo.Geocoder, creds Credentials, now func() time.Time) *CarService {
	if now == nil {
		now = time.Now
	}
	return &CarService{client: client, geocoder: geocoder, creds: creds, now: now}
}

type carsEnvelope struct {
	Status  bool            `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    struct {
		SearchResults []json.RawMessage `json:"search_results"`
		Count         int               `json:"count"`
		Provider      string            `json:"provider"`
	} `json:"data"`
}

type carRental struct {
	Vendor struct {
		Name   string          `json:"name"`
		Rating json.RawMessage `json:"rating"`
	} `json:"vendor"`
	Vehicle struct {
		VehicleInfo struct {
			Category        string          `json:"category"`
			Name            string          `json:"name"`
			Passengers      json.RawMessage `json:"passengers"`
			Doors           json.RawMessage `json:"doors"`
			Transmission    string          `json:"transmission"`
			FuelType        string          `json:"fuel_type"`
			AirConditioning bool            `json:"air_conditioning"`
		} `json:"vehicle_info"`
	} `json:"vehicle"`
	Pricing struct {
		TotalPrice json.RawMessage `json:"total_price"`
		DailyPrice json.RawMessage `json:"daily_price"`
		Taxes      json.RawMessage `json:"taxes"`
		Fees       json.RawMessage `json:"fees"`
		Currency   string          `json:"currency"`
	} `json:"pricing"`
	BookingToken string `json:"booking_token"`
}

// Search geocodes the pickup city, issues one searchCarRentals call, and
// maps the response into the common schema.
func (s *CarService) Search(ctx context.Context, c CarCriteria) (map[string]any, error) {
	if err := s.creds.validate("car_api"); err != nil {
		return nil, err
	}

	coords, err := s.geocoder.Lookup(ctx, c.City)
	if err != nil {
		return nil, err
	}

	dropOff := timeutil.AddDays(c.PickupDate, c.Days)

	query := url.Values{}
	query.Set("pick_up_latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("pick_up_longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("drop_off_latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("drop_off_longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("pick_up_date", timeutil.FormatISODate(c.PickupDate))
	query.Set("drop_off_date", timeutil.FormatISODate(dropOff))
	query.Set("pick_up_time", "10:00")
	query.Set("drop_off_time", "10:00")
	query.Set("driver_age", "30")
	query.Set("currency_code", "USD")
	query.Set("location", "US")

	var envelope carsEnvelope
	if err := s.client.GetJSON(ctx, s.creds.BaseURL+"/searchCarRentals", query, s.creds.headers(), &envelope); err != nil {
		return nil, err
	}

	if !envelope.Status {
		message := strings.Trim(string(bytes.TrimSpace(envelope.Message)), `"`)
		if message == "" {
			message = "upstream rejected the search"
		}
		return nil, &errdefs.UpstreamError{Status: "api_error", Message: message}
	}

	cars := make([]map[string]any, 0, maxCarResults)
	for _, raw := range envelope.Data.SearchResults {
		if len(cars) == maxCarResults {
			break
		}
		car, ok := s.parseRental(raw, c, dropOff)
		if !ok {
			continue
		}
		if !matchesCarType(car, c.CarType) {
			continue
		}
		cars = append(cars, car)
	}

	return map[string]any{
		"searchCriteria": map[string]any{
			"city":           c.City,
			"pickupLocation": fmt.Sprintf("Lat: %v, Lng: %v", coords.Latitude, coords.Longitude),
			"pickupDate":     timeutil.FormatISODate(c.PickupDate),
			"dropoffDate":    timeutil.FormatISODate(dropOff),
			"days":           c.Days,
			"carType":        c.CarType,
			"currency":       "USD",
		},
		"resultsFound":     envelope.Data.Count,
		"resultsDisplayed": len(cars),
		"cars":             cars,
		"provider":         envelope.Data.Provider,
		"searchTimestamp":  s.now().Format(time.RFC3339),
		"source":           "Booking.com RapidAPI",
	}, nil
}

// parseRental maps one raw rental to the simplified schema. A false
// return drops the record without failing the request.
func (s *CarService) parseRental(raw json.RawMessage, c CarCriteria, dropOff time.Time) (map[string]any, bool) {
	var rental carRental
	if err := json.Unmarshal(raw, &rental); err != nil {
		return nil, false
	}
	if rental.Vendor.Name == "" && rental.Vehicle.VehicleInfo.Name == "" {
		return nil, false
	}

	dailyRate, hasDaily := flexPrice(rental.Pricing.DailyPrice)
	taxes, _ := flexPrice(rental.Pricing.Taxes)
	fees, _ := flexPrice(rental.Pricing.Fees)
	taxesAndFees := Round2(taxes + fees)

	currency := rental.Pricing.Currency
	if currency == "" {
		currency = "USD"
	}

	var totalPrice float64
	if hasDaily {
		totalPrice = Round2(dailyRate*float64(c.Days) + taxesAndFees)
	} else if total, ok := flexPrice(rental.Pricing.TotalPrice); ok {
		totalPrice = Round2(total)
	}

	pricing := map[string]any{
		"dailyRate":    Round2(dailyRate),
		"taxesAndFees": taxesAndFees,
		"totalPrice":   totalPrice,
		"currency":     currency,
	}

	info := rental.Vehicle.VehicleInfo
	return map[string]any{
		"company":         rental.Vendor.Name,
		"carType":         info.Category,
		"model":           info.Name,
		"pickupLocation":  c.City,
		"dropoffLocation": c.City,
		"pickupDate":      timeutil.FormatISODate(c.PickupDate),
		"returnDate":      timeutil.FormatISODate(dropOff),
		"pricing":         pricing,
		"specifications": map[string]any{
			"passengers":      rawOrNA(info.Passengers),
			"doors":           rawOrNA(info.Doors),
			"transmission":    stringOrNA(info.Transmission),
			"fuelType":        stringOrNA(info.FuelType),
			"airConditioning": info.AirConditioning,
			"category":        stringOrNA(info.Category),
		},
		"policies": map[string]any{
			"mileage":      "Check with supplier",
			"fuelPolicy":   "Check with supplier",
			"cancellation": "Check with supplier",
			"minimumAge":   21,
		},
		"rating":       rawOrNA(rental.Vendor.Rating),
		"bookingToken": rental.BookingToken,
	}, true
}

// matchesCarType filters by the requested category; "any" and ""
// match everything.
func matchesCarType(car map[string]any, carType string) bool {
	if carType == "" || strings.EqualFold(carType, "any") {
		return true
	}
	category, _ := car["carType"].(string)
	return strings.Contains(strings.ToLower(category), strings.ToLower(carType))
}

// flexPrice accepts either a bare number or a units/nanos price object.
func flexPrice(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number, true
	}
	var object apiPrice
	if err := json.Unmarshal(raw, &object); err == nil {
		return object.value(), true
	}
	return 0, false
}

func rawOrNA(raw json.RawMessage) any {
	if len(raw) == 0 {
		return "N/A"
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil || value == nil {
		return "N/A"
	}
	return value
}

func stringOrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
