package rates

import (
	"strings"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

// OvernightFee is the flat per-night fee charged on every trip day except
// the last.
const OvernightFee = 125

// regionOrder fixes the iteration order for region lookup.
var regionOrder = []domain.Region{
	domain.RegionNortheast,
	domain.RegionMidwest,
	domain.RegionSoutheast,
	domain.RegionSouthwest,
	domain.RegionPacificNorthwest,
}

var regionStates = map[domain.Region][]string{
	domain.RegionNortheast:        {"ME", "NH", "VT", "MA", "RI", "CT", "NY", "NJ", "PA", "DE", "DC", "MD"},
	domain.RegionMidwest:          {"OH", "MI", "IL", "IN", "IA", "MO", "MN", "WI", "ND", "SD", "NE"},
	domain.RegionSoutheast:        {"AR", "LA", "MS", "AL", "FL", "GA", "TN", "SC", "NC", "VA", "WV", "KY"},
	domain.RegionSouthwest:        {"TX", "OK", "KS", "CO", "UT", "NM", "NV", "AZ"},
	domain.RegionPacificNorthwest: {"CA", "OR", "WA", "ID", "MT", "WY"},
}

var regionRates = map[domain.Region]map[domain.CarType]domain.RateCard{
	domain.RegionNortheast: {
		domain.CarTypeLeadChase:   {StandardMile: 1.90, PremiumMile: 2.00, StandardDay: 550, PremiumDay: 600},
		domain.CarTypeHighPole:    {StandardMile: 2.15, PremiumMile: 2.25, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeSteerman:    {StandardMile: 2.15, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeRouteSurvey: {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 800, PremiumDay: 800},
	},
	domain.RegionMidwest: {
		domain.CarTypeLeadChase:   {StandardMile: 1.90, PremiumMile: 2.00, StandardDay: 550, PremiumDay: 600},
		domain.CarTypeHighPole:    {StandardMile: 2.10, PremiumMile: 2.25, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeSteerman:    {StandardMile: 2.10, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeRouteSurvey: {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 800, PremiumDay: 800},
	},
	domain.RegionSoutheast: {
		domain.CarTypeLeadChase:   {StandardMile: 1.90, PremiumMile: 2.00, StandardDay: 550, PremiumDay: 600},
		domain.CarTypeHighPole:    {StandardMile: 2.10, PremiumMile: 2.25, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeSteerman:    {StandardMile: 2.10, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeRouteSurvey: {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 800, PremiumDay: 800},
	},
	domain.RegionSouthwest: {
		domain.CarTypeLeadChase:   {StandardMile: 1.90, PremiumMile: 2.00, StandardDay: 550, PremiumDay: 600},
		domain.CarTypeHighPole:    {StandardMile: 2.10, PremiumMile: 2.25, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeSteerman:    {StandardMile: 2.10, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeRouteSurvey: {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 800, PremiumDay: 800},
	},
	domain.RegionPacificNorthwest: {
		domain.CarTypeLeadChase:   {StandardMile: 2.00, PremiumMile: 2.15, StandardDay: 600, PremiumDay: 650},
		domain.CarTypeHighPole:    {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeSteerman:    {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 650, PremiumDay: 750},
		domain.CarTypeRouteSurvey: {StandardMile: 2.25, PremiumMile: 2.50, StandardDay: 800, PremiumDay: 800},
	},
}

// Store exposes the static regional rate schedule.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// RegionFor returns the pricing region for a state code, defaulting to
// Southeast when the state matches no region.
func (s *Store) RegionFor(stateCode string) domain.Region {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	for _, region := range regionOrder {
		for _, st := range regionStates[region] {
			if st == code {
				return region
			}
		}
	}
	return domain.RegionSoutheast
}

// RatesFor returns the rate table for a region. The result is a copy; the
// underlying schedule is never mutated at runtime.
func (s *Store) RatesFor(region domain.Region) map[domain.CarType]domain.RateCard {
	table, ok := regionRates[region]
	if !ok {
		return nil
	}

	out := make(map[domain.CarType]domain.RateCard, len(table))
	for carType, card := range table {
		out[carType] = card
	}
	return out
}
