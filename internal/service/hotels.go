package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
)

// hotelTaxRate is the flat taxes-and-fees share of the room subtotal.
const hotelTaxRate = 0.15

// HotelCriteria is a validated hotel search request.
type HotelCriteria struct {
	City    string
	CheckIn time.Time
	Nights  int
	Guests  int
}

// HotelService synthesizes hotel offers from a reference table.
type HotelService struct {
	table refdata.HotelTable
	now   func() time.Time
}

// NewHotelService builds a hotel service over the given table. A nil now
// defaults to time.Now.
func NewHotelService(table refdata.HotelTable, now func() time.Time) *HotelService {
	if now == nil {
		now = time.Now
	}
	return &HotelService{table: table, now: now}
}

// Search returns hotel offers for a known city. Unknown cities fail with
// UnknownLocationError; no default city data is ever substituted.
func (s *HotelService) Search(ctx context.Context, c HotelCriteria) (map[string]any, error) {
	if c.CheckIn.Before(timeutil.Midnight(s.now())) {
		return nil, &errdefs.ValidationError{Field: "check_in", Reason: "must not be in the past"}
	}

	templates, ok := s.table[strings.ToLower(strings.TrimSpace(c.City))]
	if !ok {
		known := s.table.Cities()
		sort.Strings(known)
		return nil, &errdefs.UnknownLocationError{Location: c.City, Known: known}
	}

	checkOut := timeutil.AddDays(c.CheckIn, c.Nights)

	hotels := make([]map[string]any, 0, len(templates))
	for _, tpl := range templates {
		subtotal := tpl.PricePerNight * float64(c.Nights)
		taxes := Round2(subtotal * hotelTaxRate)
		hotels = append(hotels, map[string]any{
			"name":              tpl.Name,
			"area":              tpl.Area,
			"rating":            tpl.Rating,
			"reviewCount":       tpl.ReviewCount,
			"hotelClass":        tpl.HotelClass,
			"roomConfiguration": tpl.RoomConfiguration,
			"amenities":         tpl.Amenities,
			"checkIn":           timeutil.FormatISODate(c.CheckIn),
			"checkOut":          timeutil.FormatISODate(checkOut),
			"nights":            c.Nights,
			"guests":            c.Guests,
			"pricePerNight":     tpl.PricePerNight,
			"taxesAndFees":      taxes,
			"totalPrice":        Round2(subtotal + taxes),
			"currency":          "USD",
		})
	}

	return map[string]any{
		"searchCriteria": map[string]any{
			"city":     c.City,
			"checkIn":  timeutil.FormatISODate(c.CheckIn),
			"checkOut": timeutil.FormatISODate(checkOut),
			"nights":   c.Nights,
			"guests":   c.Guests,
		},
		"resultsFound":    len(hotels),
		"hotels":          hotels,
		"searchTimestamp": s.now().Format(time.RFC3339),
		"note":            "Hotel availability is illustrative. Confirm rates with the property before booking.",
	}, nil
}
