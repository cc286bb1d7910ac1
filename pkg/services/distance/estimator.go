package distance

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pilotsmatch/escort-engine/pkg/metrics"
)

// Estimator resolves road distances, preferring the live routing provider
// and degrading to the deterministic centroid fallback. It never fails:
// every call returns a positive mileage estimate.
type Estimator struct {
	provider Provider
	sink     *metrics.Sink
}

// NewEstimator wires an estimator. provider may be nil, in which case every
// estimate uses the fallback path.
func NewEstimator(provider Provider, sink *metrics.Sink) *Estimator {
	return &Estimator{provider: provider, sink: sink}
}

// Estimate returns the road distance in miles between the origin and
// destination, given as free-text places plus their state codes.
func (e *Estimator) Estimate(ctx context.Context, origin, destination, originState, destinationState string) float64 {
	logger := zerolog.Ctx(ctx)

	if e.provider != nil {
		miles, err := e.provider.Distance(ctx, origin, destination)
		// A zero-mile provider result is treated as unusable and routed to
		// the fallback, which keeps every estimate strictly positive.
		if err == nil && miles > 0 {
			return miles
		}
		logger.Warn().
			Err(err).
			Str("origin", origin).
			Str("destination", destination).
			Msg("routing provider unavailable, using fallback distance")
	}

	e.sink.RecordDistanceFallback()
	return Fallback(originState, destinationState)
}
