package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

const pickupDateLayout = "2006-01-02"

// nextDayPremiumStates bill next-day pickups at premium rates in addition
// to the general same-day rule.
var nextDayPremiumStates = map[string]struct{}{
	"NC": {},
	"VA": {},
	"SC": {},
}

// TierFor selects the rate tier from pickup lead time. Superloads are
// always premium. NC, VA and SC charge premium for same-day and next-day
// pickups; everywhere else, premium applies under two days of lead time.
func TierFor(pickupDate, pickupState string, isSuperload bool, now time.Time) (domain.RateTier, error) {
	pickup, err := time.Parse(pickupDateLayout, pickupDate)
	if err != nil {
		return "", fmt.Errorf("parse pickup date %q: %w", pickupDate, err)
	}

	if isSuperload {
		return domain.RateTierPremium, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysUntilPickup := int(pickup.Sub(today).Hours() / 24)

	state := strings.ToUpper(strings.TrimSpace(pickupState))
	if _, ok := nextDayPremiumStates[state]; ok {
		if daysUntilPickup <= 1 {
			return domain.RateTierPremium, nil
		}
		return domain.RateTierStandard, nil
	}

	if daysUntilPickup < 2 {
		return domain.RateTierPremium, nil
	}
	return domain.RateTierStandard, nil
}
