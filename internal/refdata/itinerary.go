package refdata

// Attraction is a sight or activity offered in a city.
type Attraction struct {
	Name     string
	Type     string
	Duration string
	Cost     string
}

// Restaurant is a dining option in a city.
type Restaurant struct {
	Name    string
	Cuisine string
	// Price is a $..$$$$ bucket.
	Price string
	Note  string
}

// Transportation suggests how to get around a city.
type Transportation struct {
	Primary     string
	Alternative string
	Note        string
}

// CityGuide aggregates everything the itinerary generator knows about a
// city.
type CityGuide struct {
	Attractions    []Attraction
	Restaurants    []Restaurant
	Activities     []Attraction
	Transportation Transportation
	DailyTips      []string
	BestTime       string
	PackingTips    []string
	LocalTips      []string
}

// ItineraryTable maps a city name to its guide data.
type ItineraryTable map[string]CityGuide

// Itineraries returns the built-in itinerary reference table.
func Itineraries() ItineraryTable {
	return ItineraryTable{
		"Austin": {
			Attractions: []Attraction{
				{Name: "Texas State Capitol", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Lady Bird Lake", Type: "nature", Duration: "Half day", Cost: "Free"},
				{Name: "South Congress Bridge Bats", Type: "nature", Duration: "1 hour", Cost: "Free"},
				{Name: "Zilker Park", Type: "nature", Duration: "Half day", Cost: "Free"},
				{Name: "Blanton Museum of Art", Type: "culture", Duration: "2-3 hours", Cost: "$12"},
				{Name: "Bullock Texas State History Museum", Type: "culture", Duration: "3-4 hours", Cost: "$15"},
				{Name: "Austin City Limits Music Festival", Type: "nightlife", Duration: "Full day", Cost: "$100+"},
				{Name: "South Congress Shopping", Type: "shopping", Duration: "3-4 hours", Cost: "Varies"},
				{Name: "Barton Springs Pool", Type: "nature", Duration: "2-3 hours", Cost: "$5"},
				{Name: "6th Street Entertainment District", Type: "nightlife", Duration: "Evening", Cost: "Varies"},
			},
			Restaurants: []Restaurant{
				{Name: "Franklin Barbecue", Cuisine: "BBQ", Price: "$$", Note: "Famous BBQ, expect long lines"},
				{Name: "Uchi", Cuisine: "Japanese", Price: "$$$", Note: "Upscale sushi restaurant"},
				{Name: "Torchy's Tacos", Cuisine: "Mexican", Price: "$", Note: "Local taco chain"},
				{Name: "The Salt Lick", Cuisine: "BBQ", Price: "$$", Note: "Hill Country BBQ"},
				{Name: "Amy's Ice Cream", Cuisine: "Dessert", Price: "$", Note: "Local ice cream shop"},
				{Name: "Paperboy", Cuisine: "Breakfast", Price: "$$", Note: "Popular breakfast spot"},
				{Name: "Veracruz All Natural", Cuisine: "Mexican", Price: "$", Note: "Fresh Mexican food"},
				{Name: "Home Slice Pizza", Cuisine: "Italian", Price: "$$", Note: "NY-style pizza"},
			},
			Activities: []Attraction{
				{Name: "Kayaking on Lady Bird Lake", Type: "nature", Duration: "2-3 hours", Cost: "$30-50"},
				{Name: "Food truck tours", Type: "food", Duration: "3-4 hours", Cost: "$40-60"},
				{Name: "Live music at The Continental Club", Type: "nightlife", Duration: "Evening", Cost: "$10-20"},
				{Name: "Hiking at Mount Bonnell", Type: "nature", Duration: "1-2 hours", Cost: "Free"},
				{Name: "Shopping at The Domain", Type: "shopping", Duration: "Half day", Cost: "Varies"},
			},
			Transportation: Transportation{Primary: "Car/Rideshare", Alternative: "Capital Metro Bus", Note: "Car recommended for attractions outside downtown"},
			DailyTips:      []string{"Keep Austin Weird!", "Music venues often have cover charges"},
			BestTime:       "March-May and September-November (avoid summer heat)",
			PackingTips:    []string{"Light, breathable clothing", "Comfortable walking shoes", "Sunscreen and hat"},
			LocalTips:      []string{"Food trucks are a local institution", "Music is everywhere - embrace it", "Traffic can be heavy during rush hour"},
		},
		"San Francisco": {
			Attractions: []Attraction{
				{Name: "Golden Gate Bridge", Type: "nature", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Alcatraz Island", Type: "culture", Duration: "Half day", Cost: "$45"},
				{Name: "Fisherman's Wharf", Type: "culture", Duration: "3-4 hours", Cost: "Free"},
				{Name: "Lombard Street", Type: "culture", Duration: "1 hour", Cost: "Free"},
				{Name: "Golden Gate Park", Type: "nature", Duration: "Half day", Cost: "Free"},
				{Name: "Chinatown", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Mission District Murals", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Cable Car rides", Type: "culture", Duration: "1-2 hours", Cost: "$8"},
				{Name: "Coit Tower", Type: "culture", Duration: "1-2 hours", Cost: "$10"},
				{Name: "Palace of Fine Arts", Type: "culture", Duration: "1-2 hours", Cost: "Free"},
			},
			Restaurants: []Restaurant{
				{Name: "Ghirardelli Ice Cream", Cuisine: "Dessert", Price: "$$", Note: "Famous chocolate and ice cream"},
				{Name: "Swan Oyster Depot", Cuisine: "Seafood", Price: "$$$", Note: "Historic seafood counter"},
				{Name: "Mission Chinese Food", Cuisine: "Chinese", Price: "$$", Note: "Modern Chinese cuisine"},
				{Name: "Tartine Bakery", Cuisine: "Bakery", Price: "$$", Note: "Artisanal bakery"},
				{Name: "In-N-Out Burger", Cuisine: "American", Price: "$", Note: "California burger chain"},
				{Name: "Boudin Bakery", Cuisine: "Bakery", Price: "$$", Note: "Famous sourdough bread"},
				{Name: "La Taquería", Cuisine: "Mexican", Price: "$", Note: "Authentic Mission burritos"},
			},
			Activities: []Attraction{
				{Name: "Wine tasting in Napa Valley", Type: "food", Duration: "Full day", Cost: "$100-200"},
				{Name: "Bike ride across Golden Gate Bridge", Type: "nature", Duration: "Half day", Cost: "$40-60"},
				{Name: "Food tour in Chinatown", Type: "food", Duration: "3-4 hours", Cost: "$60-80"},
				{Name: "Shopping at Union Square", Type: "shopping", Duration: "Half day", Cost: "Varies"},
				{Name: "Sunset at Baker Beach", Type: "nature", Duration: "2 hours", Cost: "Free"},
			},
			Transportation: Transportation{Primary: "Public Transit", Alternative: "Walking + Muni", Note: "Excellent public transportation system"},
			DailyTips:      []string{"Bring layers - weather changes quickly", "Book Alcatraz tickets in advance"},
			BestTime:       "September-November (warmest and clearest weather)",
			PackingTips:    []string{"Layered clothing", "Light jacket", "Comfortable walking shoes"},
			LocalTips:      []string{"Steep hills everywhere - wear good shoes", "Foggy afternoons are common", "Neighborhoods have distinct personalities"},
		},
		"New York": {
			Attractions: []Attraction{
				{Name: "Central Park", Type: "nature", Duration: "Half day", Cost: "Free"},
				{Name: "Statue of Liberty", Type: "culture", Duration: "Half day", Cost: "$25"},
				{Name: "Times Square", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "9/11 Memorial", Type: "culture", Duration: "2-3 hours", Cost: "$26"},
				{Name: "Brooklyn Bridge", Type: "culture", Duration: "1-2 hours", Cost: "Free"},
				{Name: "High Line", Type: "nature", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Empire State Building", Type: "culture", Duration: "2-3 hours", Cost: "$42"},
				{Name: "Metropolitan Museum of Art", Type: "culture", Duration: "Half day", Cost: "$30"},
				{Name: "Broadway Show", Type: "nightlife", Duration: "3 hours", Cost: "$80-300"},
				{Name: "Little Italy", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
			},
			Restaurants: []Restaurant{
				{Name: "Katz's Delicatessen", Cuisine: "Deli", Price: "$$", Note: "Famous pastrami sandwiches"},
				{Name: "Peter Luger Steak House", Cuisine: "Steakhouse", Price: "$$$$", Note: "Historic Brooklyn steakhouse"},
				{Name: "Di Fara Pizza", Cuisine: "Pizza", Price: "$$", Note: "Artisanal Brooklyn pizza"},
				{Name: "Russ & Daughters", Cuisine: "Jewish", Price: "$$", Note: "Traditional appetizing shop"},
				{Name: "Joe's Pizza", Cuisine: "Pizza", Price: "$", Note: "Classic NY pizza slice"},
				{Name: "Levain Bakery", Cuisine: "Bakery", Price: "$", Note: "Famous cookies"},
				{Name: "Xi'an Famous Foods", Cuisine: "Chinese", Price: "$", Note: "Hand-pulled noodles"},
			},
			Activities: []Attraction{
				{Name: "Food tour in Greenwich Village", Type: "food", Duration: "3-4 hours", Cost: "$70-90"},
				{Name: "Shopping in SoHo", Type: "shopping", Duration: "Half day", Cost: "Varies"},
				{Name: "Jazz at Blue Note", Type: "nightlife", Duration: "Evening", Cost: "$30-50"},
				{Name: "Ferry to Staten Island", Type: "nature", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Rooftop bars in Manhattan", Type: "nightlife", Duration: "Evening", Cost: "$15-25/drink"},
			},
			Transportation: Transportation{Primary: "Subway", Alternative: "Walking + Taxi", Note: "Subway is fastest for long distances"},
			DailyTips:      []string{"Subway is fastest but walking shows you more", "Tipping is expected"},
			BestTime:       "April-June and September-November (mild weather)",
			PackingTips:    []string{"Comfortable walking shoes", "Weather-appropriate clothing", "Small day bag"},
			LocalTips:      []string{"Walk fast and stay right", "Street food is safe and delicious", "Each borough has its own character"},
		},
		"Miami": {
			Attractions: []Attraction{
				{Name: "South Beach", Type: "nature", Duration: "Half day", Cost: "Free"},
				{Name: "Art Deco Historic District", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Vizcaya Museum & Gardens", Type: "culture", Duration: "3-4 hours", Cost: "$22"},
				{Name: "Wynwood Walls", Type: "culture", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Little Havana", Type: "culture", Duration: "3-4 hours", Cost: "Free"},
				{Name: "Bayside Marketplace", Type: "shopping", Duration: "2-3 hours", Cost: "Free"},
				{Name: "Miami Beach Boardwalk", Type: "nature", Duration: "1-2 hours", Cost: "Free"},
				{Name: "Pérez Art Museum Miami", Type: "culture", Duration: "2-3 hours", Cost: "$16"},
			},
			Restaurants: []Restaurant{
				{Name: "Joe's Stone Crab", Cuisine: "Seafood", Price: "$$$", Note: "Iconic Miami seafood"},
				{Name: "Versailles Restaurant", Cuisine: "Cuban", Price: "$$", Note: "Famous Cuban restaurant"},
				{Name: "Yardbird Southern Table", Cuisine: "Southern", Price: "$$", Note: "Modern Southern cuisine"},
				{Name: "Puerto Sagua", Cuisine: "Cuban", Price: "$", Note: "Authentic Cuban diner"},
				{Name: "The Bazaar by José Andrés", Cuisine: "Spanish", Price: "$$$$", Note: "Upscale Spanish tapas"},
			},
			Activities: []Attraction{
				{Name: "Art Basel Miami Beach", Type: "culture", Duration: "Full day", Cost: "$50+"},
				{Name: "Boat tour of Biscayne Bay", Type: "nature", Duration: "2-3 hours", Cost: "$40-60"},
				{Name: "Salsa dancing in Little Havana", Type: "nightlife", Duration: "Evening", Cost: "$20-30"},
				{Name: "Shopping at Lincoln Road", Type: "shopping", Duration: "Half day", Cost: "Varies"},
			},
			Transportation: Transportation{Primary: "Car/Rideshare", Alternative: "Metrobus", Note: "Car recommended for beach areas"},
			DailyTips:      []string{"UV protection essential", "Many attractions close early on Sundays"},
			BestTime:       "December-April (dry season, less humid)",
			PackingTips:    []string{"Swimwear", "Light clothing", "Sunscreen", "Sandals and comfortable shoes"},
			LocalTips:      []string{"Spanish is widely spoken", "Beach culture is relaxed", "Art scene is world-class"},
		},
	}
}

// Cities returns the city keys present in the table.
func (t ItineraryTable) Cities() []string {
	out := make([]string, 0, len(t))
	for city := range t {
		out = append(out, city)
	}
	return out
}
