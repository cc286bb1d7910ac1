package quote

import (
	"math"
	"strconv"
	"strings"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

const (
	// Daily mileage cap for a full travel day.
	fullDayMiles = 400
	// Cap for the first day when pickup happens at or after 1 PM.
	lateStartFirstDayMiles = 150
	lateStartHour          = 13
)

// PlanTrip splits a trip into travel days. A pickup at or after 1 PM caps
// the first day at 150 miles; every other day covers up to 400 miles. An
// unparsable pickup time silently takes the early-pickup branch.
func PlanTrip(distanceMiles float64, pickupTime string) domain.TripPlan {
	hour, err := parsePickupHour(pickupTime)
	lateStart := err == nil && hour >= lateStartHour

	firstDayCap := float64(fullDayMiles)
	if lateStart {
		firstDayCap = lateStartFirstDayMiles
	}

	dayMiles := []float64{math.Min(distanceMiles, firstDayCap)}
	remaining := math.Max(0, distanceMiles-firstDayCap)
	for remaining > 0 {
		miles := math.Min(remaining, fullDayMiles)
		dayMiles = append(dayMiles, miles)
		remaining -= miles
	}

	return domain.TripPlan{
		TotalDays: len(dayMiles),
		DayMiles:  dayMiles,
	}
}

func parsePickupHour(pickupTime string) (int, error) {
	hourPart, _, _ := strings.Cut(pickupTime, ":")
	return strconv.Atoi(strings.TrimSpace(hourPart))
}
