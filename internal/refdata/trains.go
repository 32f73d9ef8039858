package refdata

// RouteKey identifies a directed train route between two cities.
type RouteKey struct {
	From string
	To   string
}

// TrainRoute describes a rail connection between two cities.
type TrainRoute struct {
	// Operator runs the route.
	Operator string
	// Distance is the human-readable route length.
	Distance string
	// BaseDurationMinutes is the scheduled travel time.
	BaseDurationMinutes int
	// BasePrice is the Coach fare per person in USD.
	BasePrice float64
}

// TrainClass describes a ticket class and its fare multiplier.
type TrainClass struct {
	// Name is the class name shown to the client.
	Name string
	// Multiplier scales the route base price.
	Multiplier float64
	// Amenities lists the class amenities.
	Amenities []string
}

// TrainTable holds routes, city aliases, and ticket classes.
type TrainTable struct {
	Routes  map[RouteKey]TrainRoute
	Aliases map[string]string
	Classes []TrainClass
}

// Trains returns the built-in train reference table.
func Trains() TrainTable {
	return TrainTable{
		Routes: map[RouteKey]TrainRoute{
			{From: "NYC", To: "Boston"}:                {Operator: "Amtrak Northeast Regional", Distance: "230 miles", BaseDurationMinutes: 240, BasePrice: 120},
			{From: "NYC", To: "Philadelphia"}:          {Operator: "Amtrak Northeast Regional", Distance: "95 miles", BaseDurationMinutes: 90, BasePrice: 65},
			{From: "NYC", To: "Washington DC"}:         {Operator: "Amtrak Northeast Regional", Distance: "225 miles", BaseDurationMinutes: 180, BasePrice: 110},
			{From: "Chicago", To: "Milwaukee"}:         {Operator: "Amtrak Hiawatha", Distance: "85 miles", BaseDurationMinutes: 90, BasePrice: 45},
			{From: "San Francisco", To: "Los Angeles"}: {Operator: "Amtrak Coast Starlight", Distance: "470 miles", BaseDurationMinutes: 720, BasePrice: 180},
			{From: "Seattle", To: "Portland"}:          {Operator: "Amtrak Cascades", Distance: "173 miles", BaseDurationMinutes: 210, BasePrice: 85},
			{From: "Austin", To: "Dallas"}:             {Operator: "Texas Central Railway", Distance: "200 miles", BaseDurationMinutes: 180, BasePrice: 95},
			{From: "Miami", To: "Orlando"}:             {Operator: "Brightline", Distance: "235 miles", BaseDurationMinutes: 210, BasePrice: 120},
		},
		Aliases: map[string]string{
			"New York":      "NYC",
			"New York City": "NYC",
			"Washington":    "Washington DC",
			"DC":            "Washington DC",
		},
		Classes: []TrainClass{
			{Name: "Coach", Multiplier: 1.0, Amenities: []string{"Comfortable seating", "WiFi", "Power outlets", "Overhead storage"}},
			{Name: "Business Class", Multiplier: 1.6, Amenities: []string{"Extra legroom", "WiFi", "Power outlets", "Complimentary drinks", "Priority boarding"}},
			{Name: "First Class", Multiplier: 2.4, Amenities: []string{"Premium seating", "WiFi", "Power outlets", "Meal service", "Priority boarding", "Lounge access"}},
		},
	}
}

// Normalize maps a city through the alias table.
func (t TrainTable) Normalize(city string) string {
	if alias, ok := t.Aliases[city]; ok {
		return alias
	}
	return city
}

// Find looks up a route in either direction. The reversed flag reports
// whether the match was against the opposite direction.
func (t TrainTable) Find(from, to string) (TrainRoute, bool, bool) {
	if route, ok := t.Routes[RouteKey{From: from, To: to}]; ok {
		return route, false, true
	}
	if route, ok := t.Routes[RouteKey{From: to, To: from}]; ok {
		return route, true, true
	}
	return TrainRoute{}, false, false
}

// RouteNames lists all directed routes as "Origin → Destination".
func (t TrainTable) RouteNames() []string {
	out := make([]string, 0, len(t.Routes))
	for key := range t.Routes {
		out = append(out, key.From+" → "+key.To)
	}
	return out
}
