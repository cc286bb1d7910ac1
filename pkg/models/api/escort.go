package api

// EscortRequest is the wire form of an escort-requirement resolution
// request. Dimensions may be feet/inches strings (`14'3"`) or decimals.
type EscortRequest struct {
	Width    string   `json:"width"`
	Height   string   `json:"height"`
	Length   string   `json:"length"`
	Weight   string   `json:"weight"`
	RoadType string   `json:"road_type"`
	States   []string `json:"states"`
}

type EscortRequirement struct {
	State              string `json:"state"`
	RoadType           string `json:"road_type"`
	EscortRequirements string `json:"escort_requirements"`
	Notes              string `json:"notes"`
}

type EscortResponse struct {
	Results []EscortRequirement `json:"results"`
}
