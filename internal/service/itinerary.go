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

// dailyTransportBudget is the flat per-day transport estimate in USD.
const dailyTransportBudget = 25

// mealBudget maps a price bucket to an estimated cost per meal in USD.
var mealBudget = map[string]int{"$": 15, "$$": 35, "$$$": 65, "$$$$": 120}

// ItineraryCriteria is a validated itinerary request.
type ItineraryCriteria struct {
	City      string
	Days      int
	Interests []string
}

// ItineraryService builds day-by-day travel plans from a reference
// table. Plans are stable for a given request: the random source is
// seeded from the criteria.
type ItineraryService struct {
	table refdata.ItineraryTable
	now   func() time.Time
}

// NewItineraryService builds an itinerary service over the given table.
// A nil now defaults to time.Now.
func NewItineraryService(table refdata.ItineraryTable, now func() time.Time) *ItineraryService {
	if now == nil {
		now = time.Now
	}
	return &ItineraryService{table: table, now: now}
}

// Generate produces an itinerary for a known city over 1-7 days.
func (s *ItineraryService) Generate(ctx context.Context, c ItineraryCriteria) (map[string]any, error) {
	city, guide, ok := s.lookupCity(c.City)
	if !ok {
		known := s.table.Cities()
		sort.Strings(known)
		return nil, &errdefs.UnknownLocationError{Location: c.City, Known: known}
	}
	if c.Days < 1 || c.Days > 7 {
		return nil, &errdefs.ValidationError{Field: "days", Reason: "must be between 1 and 7"}
	}

	interests := c.Interests
	if len(interests) == 0 {
		interests = []string{"culture", "food", "nature"}
	}

	rng := rand.New(rand.NewSource(itinerarySeed(city, c.Days, interests)))

	attractions := filterByType(guide.Attractions, interests)
	activities := filterByType(guide.Activities, interests)

	itinerary := make(map[string]any, c.Days)
	start := timeutil.Midnight(s.now())

	budgetTotal := 0
	budgetFood := 0
	budgetAttractions := 0
	budgetActivities := 0

	for day := 1; day <= c.Days; day++ {
		var morning, afternoon, evening []map[string]any

		breakfast := pickRestaurant(rng, guide.Restaurants, []string{"Breakfast", "Bakery", "American"})
		morning = append(morning, mealEntry("8:00 AM", "Breakfast", breakfast))

		if len(attractions) > 0 {
			var spot refdata.Attraction
			spot, attractions = pickAttraction(rng, attractions)
			morning = append(morning, attractionEntry("9:00 AM", "Visit", spot))
		}

		if lunch, ok := pickByPrice(rng, guide.Restaurants, []string{"$", "$$"}); ok {
			afternoon = append(afternoon, mealEntry("1:00 PM", "Lunch", lunch))
		}
		switch {
		case len(activities) > 0:
			var spot refdata.Attraction
			spot, activities = pickAttraction(rng, activities)
			afternoon = append(afternoon, attractionEntry("3:00 PM", "Experience", spot))
		case len(attractions) > 0:
			var spot refdata.Attraction
			spot, attractions = pickAttraction(rng, attractions)
			afternoon = append(afternoon, attractionEntry("3:00 PM", "Explore", spot))
		}

		if dinner, ok := pickByPrice(rng, guide.Restaurants, []string{"$$", "$$$", "$$$$"}); ok {
			evening = append(evening, mealEntry("7:00 PM", "Dinner", dinner))
		}
		if containsString(interests, "nightlife") {
			nightlife := filterByType(append(append([]refdata.Attraction{}, guide.Attractions...), guide.Activities...), []string{"nightlife"})
			if len(nightlife) > 0 {
				spot := nightlife[rng.Intn(len(nightlife))]
				evening = append(evening, attractionEntry("9:00 PM", "Enjoy", spot))
			}
		}

		budget := estimateDailyBudget(morning, afternoon, evening)
		budgetFood += budget["food"].(int)
		budgetAttractions += budget["attractions"].(int)
		budgetActivities += budget["activities"].(int)
		budgetTotal += budget["total"].(int)

		itinerary[fmt.Sprintf("day%d", day)] = map[string]any{
			"day":         day,
			"date":        timeutil.FormatISODate(timeutil.AddDays(start, day-1)),
			"morning":     morning,
			"afternoon":   afternoon,
			"evening":     evening,
			"dailyBudget": budget,
			"transportation": map[string]any{
				"primary":     guide.Transportation.Primary,
				"alternative": guide.Transportation.Alternative,
				"note":        guide.Transportation.Note,
			},
			"tips": dailyTips(guide, day, interests),
		}
	}

	summary := map[string]any{
		"destination": city,
		"duration":    formatDays(c.Days),
		"interests":   interests,
		"totalEstimatedBudget": map[string]any{
			"perPerson": budgetTotal,
			"breakdown": map[string]any{
				"food":           budgetFood,
				"attractions":    budgetAttractions,
				"activities":     budgetActivities,
				"transportation": dailyTransportBudget * c.Days,
			},
		},
		"bestTimeToVisit": guide.BestTime,
		"packingTips":     guide.PackingTips,
		"localTips":       guide.LocalTips,
	}

	return map[string]any{
		"summary":     summary,
		"itinerary":   itinerary,
		"generatedAt": s.now().Format(time.RFC3339),
		"note":        "Generated itinerary. Times and availability may vary; confirm hours and reservations.",
	}, nil
}

// lookupCity resolves a city case-insensitively against the table keys.
func (s *ItineraryService) lookupCity(city string) (string, refdata.CityGuide, bool) {
	trimmed := strings.TrimSpace(city)
	for key, guide := range s.table {
		if strings.EqualFold(key, trimmed) {
			return key, guide, true
		}
	}
	return "", refdata.CityGuide{}, false
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func filterByType(items []refdata.Attraction, interests []string) []refdata.Attraction {
	out := make([]refdata.Attraction, 0, len(items))
	for _, item := range items {
		if containsString(interests, item.Type) {
			out = append(out, item)
		}
	}
	return out
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// pickAttraction removes and returns a random element so days never
// repeat an attraction.
func pickAttraction(rng *rand.Rand, items []refdata.Attraction) (refdata.Attraction, []refdata.Attraction) {
	i := rng.Intn(len(items))
	picked := items[i]
	return picked, append(items[:i:i], items[i+1:]...)
}

// pickRestaurant prefers the given cuisines, falling back to the first
// entries of the table.
func pickRestaurant(rng *rand.Rand, restaurants []refdata.Restaurant, cuisines []string) refdata.Restaurant {
	matches := make([]refdata.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if containsString(cuisines, r.Cuisine) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		limit := len(restaurants)
		if limit > 3 {
			limit = 3
		}
		matches = restaurants[:limit]
	}
	return matches[rng.Intn(len(matches))]
}

func pickByPrice(rng *rand.Rand, restaurants []refdata.Restaurant, prices []string) (refdata.Restaurant, bool) {
	matches := make([]refdata.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if containsString(prices, r.Price) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return refdata.Restaurant{}, false
	}
	return matches[rng.Intn(len(matches))], true
}

func mealEntry(at, label string, r refdata.Restaurant) map[string]any {
	return map[string]any{
		"time":     at,
		"activity": fmt.Sprintf("%s at %s", label, r.Name),
		"type":     "food",
		"cuisine":  r.Cuisine,
		"price":    r.Price,
		"note":     r.Note,
	}
}

func attractionEntry(at, verb string, a refdata.Attraction) map[string]any {
	return map[string]any{
		"time":        at,
		"activity":    a.Name,
		"type":        a.Type,
		"duration":    a.Duration,
		"cost":        a.Cost,
		"description": fmt.Sprintf("%s %s", verb, a.Name),
	}
}

// estimateDailyBudget totals the day's entries: meals by price bucket,
// everything else by the first number in its cost string.
func estimateDailyBudget(slots ...[]map[string]any) map[string]any {
	food := 0
	attractions := 0
	activities := 0
	for _, slot := range slots {
		for _, entry := range slot {
			if entry["type"] == "food" {
				price, _ := entry["price"].(string)
				cost, ok := mealBudget[price]
				if !ok {
					cost = mealBudget["$$"]
				}
				food += cost
				continue
			}
			costStr, _ := entry["cost"].(string)
			amount, ok := firstNumber(costStr)
			if !ok {
				continue
			}
			if entry["type"] == "nature" {
				activities += amount
			} else {
				attractions += amount
			}
		}
	}
	return map[string]any{
		"food":           food,
		"attractions":    attractions,
		"activities":     activities,
		"transportation": dailyTransportBudget,
		"total":          food + attractions + activities + dailyTransportBudget,
	}
}

// firstNumber extracts the first run of digits from a cost string like
// "$30-50" or "$100+".
func firstNumber(s string) (int, bool) {
	value := 0
	found := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return value, found
}

func dailyTips(guide refdata.CityGuide, day int, interests []string) []string {
	var tips []string
	if day == 1 {
		tips = append(tips, "Start with major attractions to get oriented", "Download local transportation apps")
	}
	if containsString(interests, "food") {
		tips = append(tips, "Make dinner reservations in advance")
	}
	if containsString(interests, "nature") {
		tips = append(tips, "Check weather and dress appropriately")
	}
	tips = append(tips, guide.DailyTips...)
	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// itinerarySeed derives a stable seed from the request criteria.
func itinerarySeed(city string, days int, interests []string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%s", city, days, strings.Join(interests, ","))
	return int64(h.Sum64())
}
