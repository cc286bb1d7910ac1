package domain

// Region is one of the five fixed pricing regions.
type Region string

const (
	RegionNortheast        Region = "Northeast"
	RegionMidwest          Region = "Midwest"
	RegionSoutheast        Region = "Southeast"
	RegionSouthwest        Region = "Southwest"
	RegionPacificNorthwest Region = "Pacific Northwest"
)

// RateTier selects between standard and premium pricing.
type RateTier string

const (
	RateTierStandard RateTier = "standard"
	RateTierPremium  RateTier = "premium"
)

// CarType is an escort vehicle type known to the rate schedule.
type CarType string

const (
	CarTypeLeadChase   CarType = "Lead / Chase"
	CarTypeHighPole    CarType = "High Pole"
	CarTypeSteerman    CarType = "Steerman"
	CarTypeRouteSurvey CarType = "Route Survey"
)

// RateCard holds the per-mile and day-minimum rates for one car type in one
// region.
type RateCard struct {
	StandardMile float64
	PremiumMile  float64
	StandardDay  float64
	PremiumDay   float64
}

// QuoteRequest carries everything needed to price an escort job.
// PickupDate is YYYY-MM-DD, PickupTime is HH:MM (24h).
type QuoteRequest struct {
	PickupLocation   string
	PickupState      string
	DeliveryLocation string
	DeliveryState    string
	PickupDate       string
	PickupTime       string
	CarTypes         []CarType
	IsSuperload      bool
}

// DailyLineItem is one travel day of a car type's cost breakdown.
// DailyCost = max(MileageCost, DayRate), plus the overnight fee on every day
// except the last.
type DailyLineItem struct {
	Day          int
	Miles        float64
	MileageCost  float64
	DayRate      float64
	DailyCost    float64
	OvernightFee float64
}

// CarTypeQuote is the itemized cost for a single escort vehicle type.
type CarTypeQuote struct {
	Total    float64
	Days     []DailyLineItem
	MileRate float64
	DayRate  float64
}

// QuoteResult is the full multi-day cost estimate. Currency figures are
// rounded to 2 decimal places and mileage to 1, at output time only.
type QuoteResult struct {
	ID            string
	DistanceMiles float64
	RateTier      RateTier
	Region        Region
	TripDays      int
	TotalCost     float64
	Breakdown     map[CarType]CarTypeQuote
}

// TripPlan is the day-by-day mileage split for a trip.
type TripPlan struct {
	TotalDays int
	DayMiles  []float64
}
