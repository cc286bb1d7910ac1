package domain

import "encoding/json"

// RegulationRecord is one row of a state's escort regulation table.
// Linear thresholds are feet/inches strings (e.g. `12'6"`); weight
// thresholds are pounds. An empty threshold means "not specified" and the
// axis default applies during matching.
type RegulationRecord struct {
	State    string   `json:"state"`
	RoadType RoadType `json:"road_type"`

	WidthMin     string `json:"width_min,omitempty"`
	WidthMax     string `json:"width_max,omitempty"`
	WidthEscorts string `json:"width_escorts,omitempty"`

	HeightMin     string `json:"height_min,omitempty"`
	HeightMax     string `json:"height_max,omitempty"`
	HeightEscorts string `json:"height_escorts,omitempty"`

	LengthMin     string `json:"length_min,omitempty"`
	LengthMax     string `json:"length_max,omitempty"`
	LengthEscorts string `json:"length_escorts,omitempty"`

	WeightMin     json.Number `json:"weight_min,omitempty"`
	WeightMax     json.Number `json:"weight_max,omitempty"`
	WeightEscorts string      `json:"weight_escorts,omitempty"`

	// Overhang thresholds are carried for dataset fidelity; matching is
	// performed on the four primary axes only.
	OverhangMin     string `json:"overhang_min,omitempty"`
	OverhangMax     string `json:"overhang_max,omitempty"`
	OverhangEscorts string `json:"overhang_escorts,omitempty"`

	Notes string `json:"notes,omitempty"`
}
