package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
)

// peakSurcharge is applied to fares departing in commuter windows. It
// folds into the per-person price so the per-class total always equals
// pricePerPerson times passengers.
const peakSurcharge = 1.15

// TrainCriteria is a validated train search request.
type TrainCriteria struct {
	FromCity   string
	ToCity     string
	Date       time.Time
	Passengers int
}

// TrainService synthesizes train schedules from a reference table. The
// schedule for a given route and date is stable across calls: the random
// source is seeded from the search itself.
type TrainService struct {
	table refdata.TrainTable
	now   func() time.Time
}

// NewTrainService builds a train service over the given table. A nil now
// defaults to time.Now.
func NewTrainService(table refdata.TrainTable, now func() time.Time) *TrainService {
	if now == nil {
		now = time.Now
	}
	return &TrainService{table: table, now: now}
}

// Search returns train schedules for a known route. Unknown routes fail
// with UnknownLocationError listing the served routes.
func (s *TrainService) Search(ctx context.Context, c TrainCriteria) (map[string]any, error) {
	from := s.table.Normalize(strings.TrimSpace(c.FromCity))
	to := s.table.Normalize(strings.TrimSpace(c.ToCity))

	route, _, ok := s.table.Find(from, to)
	if !ok {
		known := s.table.RouteNames()
		sort.Strings(known)
		return nil, &errdefs.UnknownLocationError{
			Location: fmt.Sprintf("%s → %s", c.FromCity, c.ToCity),
			Known:    known,
		}
	}

	if c.Date.Before(timeutil.Midnight(s.now())) {
		return nil, &errdefs.ValidationError{Field: "date", Reason: "must not be in the past"}
	}

	rng := rand.New(rand.NewSource(scheduleSeed(from, to, c.Date)))

	count := rng.Intn(6) + 3
	trains := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		trains = append(trains, s.buildTrain(rng, route, c))
	}

	sort.Slice(trains, func(i, j int) bool {
		left := trains[i]["departure"].(map[string]any)["time"].(string)
		right := trains[j]["departure"].(map[string]any)["time"].(string)
		return left < right
	})

	return map[string]any{
		"searchCriteria": map[string]any{
			"from":       c.FromCity,
			"to":         c.ToCity,
			"date":       timeutil.FormatISODate(c.Date),
			"passengers": c.Passengers,
		},
		"route": map[string]any{
			"operator":        route.Operator,
			"distance":        route.Distance,
			"averageDuration": timeutil.FormatMinutes(route.BaseDurationMinutes),
		},
		"resultsFound":    len(trains),
		"trains":          trains,
		"searchTimestamp": s.now().Format(time.RFC3339),
		"note":            "Schedules are illustrative. Confirm departures with the operator before booking.",
	}, nil
}

func (s *TrainService) buildTrain(rng *rand.Rand, route refdata.TrainRoute, c TrainCriteria) map[string]any {
	departureHour := rng.Intn(15) + 6
	departureMinute := []int{0, 15, 30, 45}[rng.Intn(4)]

	duration := route.BaseDurationMinutes + rng.Intn(46) - 15
	departure := time.Date(c.Date.Year(), c.Date.Month(), c.Date.Day(), departureHour, departureMinute, 0, 0, c.Date.Location())
	arrival := departure.Add(time.Duration(duration) * time.Minute)

	peak := (departureHour >= 7 && departureHour <= 9) || (departureHour >= 17 && departureHour <= 19)

	classes := make([]map[string]any, 0, len(s.table.Classes))
	for _, class := range s.table.Classes {
		perPerson := route.BasePrice * class.Multiplier
		if peak {
			perPerson *= peakSurcharge
		}
		perPerson = Round2(perPerson)
		classes = append(classes, map[string]any{
			"className":      class.Name,
			"pricePerPerson": perPerson,
			"totalPrice":     Round2(perPerson * float64(c.Passengers)),
			"amenities":      class.Amenities,
			"availability":   []string{"Available", "Available", "Available", "Limited", "Sold Out"}[rng.Intn(5)],
		})
	}

	operatorPrefix := strings.ToUpper(strings.Fields(route.Operator)[0])
	if len(operatorPrefix) > 2 {
		operatorPrefix = operatorPrefix[:2]
	}

	return map[string]any{
		"trainNumber": fmt.Sprintf("%s%d", operatorPrefix, rng.Intn(900)+100),
		"operator":    route.Operator,
		"departure": map[string]any{
			"city":    c.FromCity,
			"time":    fmt.Sprintf("%02d:%02d", departureHour, departureMinute),
			"date":    timeutil.FormatISODate(c.Date),
			"station": c.FromCity + " Union Station",
		},
		"arrival": map[string]any{
			"city":    c.ToCity,
			"time":    arrival.Format("15:04"),
			"date":    timeutil.FormatISODate(arrival),
			"station": c.ToCity + " Union Station",
		},
		"duration":   timeutil.FormatMinutes(duration),
		"distance":   route.Distance,
		"passengers": c.Passengers,
		"classes":    classes,
		"amenities":  []string{"Restrooms", "Snack Car", "WiFi", "Power Outlets", "Climate Control", "Large Windows"},
		"policies": map[string]any{
			"baggage":      "2 personal items + 2 carry-on bags free",
			"cancellation": "Full refund up to 24 hours before departure",
			"boarding":     "30 minutes before departure",
			"pets":         "Small pets allowed in carriers",
		},
	}
}

// scheduleSeed derives a stable seed from the route and travel date.
func scheduleSeed(from, to string, date time.Time) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", from, to, timeutil.FormatISODate(date))
	return int64(h.Sum64())
}
