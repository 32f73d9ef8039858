// Package refdata holds the immutable reference tables backing the mock
// search verticals. Tables are plain values handed to services at
// construction, so tests can substitute their own datasets.
package refdata

// HotelTemplate describes one hotel offered in a city.
type HotelTemplate struct {
	// Name is the hotel name.
	Name string
	// Area is the neighbourhood shown to the client.
	Area string
	// Rating is the review score on a 5-point scale.
	Rating float64
	// ReviewCount is the number of reviews.
	ReviewCount int
	// HotelClass is the star class (1-5).
	HotelClass int
	// PricePerNight is the nightly rate in USD.
	PricePerNight float64
	// RoomConfiguration describes the default room.
	RoomConfiguration string
	// Amenities lists notable amenities.
	Amenities []string
}

// HotelTable maps a lowercase city name to its hotel templates.
type HotelTable map[string][]HotelTemplate

// Hotels returns the built-in hotel reference table.
func Hotels() HotelTable {
	return HotelTable{
		"austin": {
			{Name: "The Driskill", Area: "Downtown", Rating: 4.6, ReviewCount: 2841, HotelClass: 4, PricePerNight: 289.00, RoomConfiguration: "King Room", Amenities: []string{"Free WiFi", "Bar", "Fitness Center"}},
			{Name: "South Congress Hotel", Area: "South Congress", Rating: 4.5, ReviewCount: 1677, HotelClass: 4, PricePerNight: 245.00, RoomConfiguration: "Queen Room", Amenities: []string{"Rooftop Pool", "Free WiFi", "Restaurant"}},
			{Name: "Hotel San José", Area: "South Congress", Rating: 4.3, ReviewCount: 980, HotelClass: 3, PricePerNight: 185.00, RoomConfiguration: "Courtyard Room", Amenities: []string{"Pool", "Free WiFi", "Lounge"}},
			{Name: "Austin Motel", Area: "South Congress", Rating: 4.2, ReviewCount: 1204, HotelClass: 2, PricePerNight: 139.00, RoomConfiguration: "Standard Double", Amenities: []string{"Pool", "Free WiFi"}},
			{Name: "Fairmont Austin", Area: "Downtown", Rating: 4.5, ReviewCount: 3310, HotelClass: 5, PricePerNight: 329.00, RoomConfiguration: "Deluxe King", Amenities: []string{"Pool", "Spa", "Fitness Center", "Free WiFi"}},
		},
		"san francisco": {
			{Name: "Hotel Nikko", Area: "Union Square", Rating: 4.4, ReviewCount: 2965, HotelClass: 4, PricePerNight: 259.00, RoomConfiguration: "City King", Amenities: []string{"Indoor Pool", "Fitness Center", "Free WiFi"}},
			{Name: "The Fairmont San Francisco", Area: "Nob Hill", Rating: 4.5, ReviewCount: 4102, HotelClass: 5, PricePerNight: 399.00, RoomConfiguration: "Fairmont King", Amenities: []string{"Spa", "Restaurant", "Free WiFi"}},
			{Name: "Hotel Zephyr", Area: "Fisherman's Wharf", Rating: 4.2, ReviewCount: 2210, HotelClass: 3, PricePerNight: 219.00, RoomConfiguration: "Bay View Queen", Amenities: []string{"Free WiFi", "Game Courtyard"}},
			{Name: "Phoenix Hotel", Area: "Tenderloin", Rating: 4.0, ReviewCount: 761, HotelClass: 2, PricePerNight: 159.00, RoomConfiguration: "Standard Double", Amenities: []string{"Outdoor Pool", "Free WiFi"}},
			{Name: "Argonaut Hotel", Area: "Fisherman's Wharf", Rating: 4.6, ReviewCount: 1888, HotelClass: 4, PricePerNight: 289.00, RoomConfiguration: "Harbor King", Amenities: []string{"Fitness Center", "Pet Friendly", "Free WiFi"}},
		},
		"new york": {
			{Name: "The Plaza", Area: "Midtown", Rating: 4.6, ReviewCount: 5204, HotelClass: 5, PricePerNight: 695.00, RoomConfiguration: "Plaza King", Amenities: []string{"Spa", "Butler Service", "Free WiFi"}},
			{Name: "Pod 51", Area: "Midtown East", Rating: 4.1, ReviewCount: 3420, HotelClass: 2, PricePerNight: 129.00, RoomConfiguration: "Pod Double", Amenities: []string{"Rooftop Deck", "Free WiFi"}},
			{Name: "Arlo SoHo", Area: "SoHo", Rating: 4.3, ReviewCount: 2112, HotelClass: 3, PricePerNight: 229.00, RoomConfiguration: "Queen Room", Amenities: []string{"Rooftop Bar", "Free WiFi"}},
			{Name: "The Standard High Line", Area: "Meatpacking District", Rating: 4.4, ReviewCount: 2789, HotelClass: 4, PricePerNight: 349.00, RoomConfiguration: "Standard King", Amenities: []string{"Restaurant", "Free WiFi"}},
			{Name: "citizenM Times Square", Area: "Times Square", Rating: 4.5, ReviewCount: 4510, HotelClass: 4, PricePerNight: 209.00, RoomConfiguration: "citizenM Room", Amenities: []string{"Rooftop Bar", "Free WiFi", "24h Canteen"}},
		},
		"miami": {
			{Name: "The Setai", Area: "South Beach", Rating: 4.7, ReviewCount: 1850, HotelClass: 5, PricePerNight: 549.00, RoomConfiguration: "Studio Suite", Amenities: []string{"Three Pools", "Spa", "Beachfront", "Free WiFi"}},
			{Name: "Freehand Miami", Area: "Mid-Beach", Rating: 4.2, ReviewCount: 2034, HotelClass: 3, PricePerNight: 149.00, RoomConfiguration: "Queen Room", Amenities: []string{"Pool", "Bar", "Free WiFi"}},
			{Name: "The Betsy", Area: "South Beach", Rating: 4.6, ReviewCount: 1422, HotelClass: 4, PricePerNight: 379.00, RoomConfiguration: "Ocean King", Amenities: []string{"Rooftop Pool", "Library", "Free WiFi"}},
			{Name: "Kimpton EPIC", Area: "Downtown", Rating: 4.5, ReviewCount: 3105, HotelClass: 4, PricePerNight: 279.00, RoomConfiguration: "Bay View King", Amenities: []string{"Pool", "Marina", "Free WiFi"}},
		},
		"chicago": {
			{Name: "Palmer House Hilton", Area: "The Loop", Rating: 4.3, ReviewCount: 5120, HotelClass: 4, PricePerNight: 199.00, RoomConfiguration: "Two Doubles", Amenities: []string{"Indoor Pool", "Fitness Center", "Free WiFi"}},
			{Name: "The Langham Chicago", Area: "River North", Rating: 4.8, ReviewCount: 2310, HotelClass: 5, PricePerNight: 475.00, RoomConfiguration: "Classic King", Amenities: []string{"Spa", "Pool", "Free WiFi"}},
			{Name: "Freehand Chicago", Area: "River North", Rating: 4.1, ReviewCount: 1755, HotelClass: 3, PricePerNight: 135.00, RoomConfiguration: "Queen Room", Amenities: []string{"Bar", "Free WiFi"}},
			{Name: "Hotel Lincoln", Area: "Lincoln Park", Rating: 4.4, ReviewCount: 1602, HotelClass: 3, PricePerNight: 179.00, RoomConfiguration: "Park View Queen", Amenities: []string{"Rooftop Bar", "Free WiFi"}},
		},
		"seattle": {
			{Name: "The Edgewater", Area: "Waterfront", Rating: 4.4, ReviewCount: 2241, HotelClass: 4, PricePerNight: 269.00, RoomConfiguration: "Water View King", Amenities: []string{"Restaurant", "Fitness Center", "Free WiFi"}},
			{Name: "Ace Hotel Seattle", Area: "Belltown", Rating: 4.0, ReviewCount: 987, HotelClass: 2, PricePerNight: 139.00, RoomConfiguration: "Standard Queen", Amenities: []string{"Free WiFi"}},
			{Name: "Fairmont Olympic", Area: "Downtown", Rating: 4.6, ReviewCount: 3019, HotelClass: 5, PricePerNight: 359.00, RoomConfiguration: "Fairmont King", Amenities: []string{"Indoor Pool", "Spa", "Free WiFi"}},
		},
		"boston": {
			{Name: "Omni Parker House", Area: "Downtown", Rating: 4.3, ReviewCount: 4088, HotelClass: 4, PricePerNight: 229.00, RoomConfiguration: "Classic Queen", Amenities: []string{"Fitness Center", "Restaurant", "Free WiFi"}},
			{Name: "The Verb Hotel", Area: "Fenway", Rating: 4.6, ReviewCount: 1509, HotelClass: 3, PricePerNight: 189.00, RoomConfiguration: "King Room", Amenities: []string{"Outdoor Pool", "Free WiFi"}},
			{Name: "Boston Harbor Hotel", Area: "Waterfront", Rating: 4.8, ReviewCount: 1927, HotelClass: 5, PricePerNight: 449.00, RoomConfiguration: "Harbor View King", Amenities: []string{"Spa", "Pool", "Marina", "Free WiFi"}},
		},
	}
}

// Cities returns the lowercase city keys present in the table, sorted by
// the caller if order matters.
func (t HotelTable) Cities() []string {
	out := make([]string, 0, len(t))
	for city := range t {
		out = append(out, city)
	}
	return out
}
