package api

// QuoteRequest is the wire form of a quote calculation request.
type QuoteRequest struct {
	PickupLocation   string   `json:"pickup_location"`
	PickupState      string   `json:"pickup_state"`
	DeliveryLocation string   `json:"delivery_location"`
	DeliveryState    string   `json:"delivery_state"`
	PickupDate       string   `json:"pickup_date"`
	PickupTime       string   `json:"pickup_time"`
	CarTypes         []string `json:"car_types"`
	IsSuperload      bool     `json:"is_superload"`
}

type DailyLineItem struct {
	Day          int     `json:"day"`
	Miles        float64 `json:"miles"`
	MileageCost  float64 `json:"mileage_cost"`
	DayRate      float64 `json:"day_rate"`
	DailyCost    float64 `json:"daily_cost"`
	OvernightFee float64 `json:"overnight_fee"`
}

type CarTypeQuote struct {
	Total          float64         `json:"total"`
	DailyBreakdown []DailyLineItem `json:"daily_breakdown"`
	MileRate       float64         `json:"mile_rate"`
	DayRate        float64         `json:"day_rate"`
}

type QuoteResponse struct {
	ID        string                  `json:"id"`
	Distance  float64                 `json:"distance"`
	RateTier  string                  `json:"rate_type"`
	Region    string                  `json:"region"`
	TripDays  int                     `json:"trip_days"`
	TotalCost float64                 `json:"total_cost"`
	Breakdown map[string]CarTypeQuote `json:"breakdown"`
}

// Error is the common error envelope.
type Error struct {
	Error string `json:"error"`
}

// RegionResponse describes the rate schedule applied to a pickup state.
type RegionResponse struct {
	State  string              `json:"state"`
	Region string              `json:"region"`
	Rates  map[string]RateCard `json:"rates"`
}

type RateCard struct {
	StandardMile float64 `json:"standard_mile"`
	PremiumMile  float64 `json:"premium_mile"`
	StandardDay  float64 `json:"standard_day"`
	PremiumDay   float64 `json:"premium_day"`
}
