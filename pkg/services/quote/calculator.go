package quote

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pilotsmatch/escort-engine/pkg/metrics"
	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
	"github.com/pilotsmatch/escort-engine/pkg/services/distance"
	"github.com/pilotsmatch/escort-engine/pkg/store/rates"
)

// Error is a structured quote failure: the calculation could not produce a
// meaningful total. It is returned, never panicked, and carries a
// human-readable reason.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Calculator orchestrates distance estimation, rate selection and trip-day
// segmentation into an itemized multi-day cost estimate.
type Calculator struct {
	estimator *distance.Estimator
	rates     *rates.Store
	sink      *metrics.Sink
	now       func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock overrides the wall clock used for lead-time calculations.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

func NewCalculator(estimator *distance.Estimator, rateStore *rates.Store, sink *metrics.Sink, opts ...Option) *Calculator {
	c := &Calculator{
		estimator: estimator,
		rates:     rateStore,
		sink:      sink,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate produces a quote for the request. Car types missing from the
// region's rate table are silently skipped; a request whose car types all
// miss yields a zero-total quote with an empty breakdown.
func (c *Calculator) Calculate(ctx context.Context, req domain.QuoteRequest) (*domain.QuoteResult, error) {
	logger := zerolog.Ctx(ctx)

	origin := fmt.Sprintf("%s, %s", req.PickupLocation, req.PickupState)
	dest := fmt.Sprintf("%s, %s", req.DeliveryLocation, req.DeliveryState)
	dist := c.estimator.Estimate(ctx, origin, dest, req.PickupState, req.DeliveryState)

	tier, err := TierFor(req.PickupDate, req.PickupState, req.IsSuperload, c.now())
	if err != nil {
		return nil, &Error{Reason: fmt.Sprintf("invalid pickup date %q, expected YYYY-MM-DD", req.PickupDate)}
	}

	region := c.rates.RegionFor(req.PickupState)
	table := c.rates.RatesFor(region)
	if len(table) == 0 {
		// Unreachable with the fixed five-region schedule, guarded anyway.
		return nil, &Error{Reason: fmt.Sprintf("no rate table for region %q", region)}
	}

	plan := PlanTrip(dist, req.PickupTime)

	breakdown := make(map[domain.CarType]domain.CarTypeQuote, len(req.CarTypes))
	total := 0.0

	for _, carType := range req.CarTypes {
		card, ok := table[carType]
		if !ok {
			logger.Debug().
				Str("car_type", string(carType)).
				Str("region", string(region)).
				Msg("car type not in rate table, skipping")
			continue
		}

		mileRate, dayRate := card.StandardMile, card.StandardDay
		if tier == domain.RateTierPremium {
			mileRate, dayRate = card.PremiumMile, card.PremiumDay
		}

		carTotal := 0.0
		days := make([]domain.DailyLineItem, 0, plan.TotalDays)
		for i, dayMiles := range plan.DayMiles {
			mileageCost := dayMiles * mileRate
			dailyCost := math.Max(mileageCost, dayRate)

			overnightFee := 0.0
			if i < plan.TotalDays-1 {
				overnightFee = rates.OvernightFee
				dailyCost += overnightFee
			}

			days = append(days, domain.DailyLineItem{
				Day:          i + 1,
				Miles:        round1(dayMiles),
				MileageCost:  round2(mileageCost),
				DayRate:      dayRate,
				DailyCost:    round2(dailyCost),
				OvernightFee: overnightFee,
			})

			// Accumulate at full precision; rounding happens per line item
			// and on the final totals only.
			carTotal += dailyCost
		}

		breakdown[carType] = domain.CarTypeQuote{
			Total:    round2(carTotal),
			Days:     days,
			MileRate: mileRate,
			DayRate:  dayRate,
		}
		total += carTotal
	}

	c.sink.RecordQuote(string(tier))

	return &domain.QuoteResult{
		ID:            uuid.NewString(),
		DistanceMiles: round1(dist),
		RateTier:      tier,
		Region:        region,
		TripDays:      plan.TotalDays,
		TotalCost:     round2(total),
		Breakdown:     breakdown,
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
