package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

var tierNow = time.Date(2026, time.August, 10, 9, 30, 0, 0, time.UTC)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name        string
		pickupDate  string
		pickupState string
		isSuperload bool
		expected    domain.RateTier
	}{
		{name: "virginia tomorrow", pickupDate: "2026-08-11", pickupState: "VA", expected: domain.RateTierPremium},
		{name: "virginia same day", pickupDate: "2026-08-10", pickupState: "VA", expected: domain.RateTierPremium},
		{name: "virginia five days out", pickupDate: "2026-08-15", pickupState: "VA", expected: domain.RateTierStandard},
		{name: "virginia two days out", pickupDate: "2026-08-12", pickupState: "VA", expected: domain.RateTierStandard},
		{name: "north carolina next day", pickupDate: "2026-08-11", pickupState: "nc", expected: domain.RateTierPremium},
		{name: "south carolina past date", pickupDate: "2026-08-01", pickupState: "SC", expected: domain.RateTierPremium},
		{name: "ohio next day", pickupDate: "2026-08-11", pickupState: "OH", expected: domain.RateTierPremium},
		{name: "ohio two days out", pickupDate: "2026-08-12", pickupState: "OH", expected: domain.RateTierStandard},
		{name: "texas same day", pickupDate: "2026-08-10", pickupState: "TX", expected: domain.RateTierPremium},
		{name: "superload far out", pickupDate: "2026-09-20", pickupState: "OH", isSuperload: true, expected: domain.RateTierPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := TierFor(tt.pickupDate, tt.pickupState, tt.isSuperload, tierNow)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}
}

func TestTierForBadDate(t *testing.T) {
	_, err := TierFor("08/10/2026", "VA", false, tierNow)
	assert.Error(t, err)

	_, err = TierFor("", "VA", false, tierNow)
	assert.Error(t, err)
}
