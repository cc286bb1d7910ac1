package domain

// RoadType distinguishes regulation sets within a state.
type RoadType string

const (
	RoadTypeInterstate    RoadType = "Interstate"
	RoadTypeNonInterstate RoadType = "Non-Interstate"
)

// LoadSpec describes an oversize load. Linear dimensions are decimal feet,
// weight is pounds.
type LoadSpec struct {
	LengthFt        float64
	WidthFt         float64
	HeightFt        float64
	WeightLb        float64
	RoadType        RoadType
	FrontOverhangFt float64
	RearOverhangFt  float64
}

// Sentinel values used in EscortRequirementResult for states without usable
// regulation data.
const (
	NoneRequired       = "None Required"
	NoDataAvailable    = "No data available"
	NoRegulationsFound = "State regulations not found"
)

// EscortRequirementResult is the per-state outcome of matching a load
// against that state's escort regulations.
type EscortRequirementResult struct {
	State              string
	RoadType           RoadType
	EscortRequirements string
	Notes              string
}
