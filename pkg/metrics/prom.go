package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sink records engine events in Prometheus metrics. A nil *Sink is valid
// and drops every record, so callers never need to branch on wiring.
type Sink struct {
	quotes            *prometheus.CounterVec
	escortResolutions *prometheus.CounterVec
	distanceFallbacks prometheus.Counter
}

// NewSink registers the engine metrics on the provided registerer. If reg
// is nil, the default registerer is used. Collectors that are already
// registered are reused.
func NewSink(reg prometheus.Registerer) (*Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_total",
		Help: "Total number of quotes calculated",
	}, []string{"tier"})
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "escort_resolutions_total",
		Help: "Total number of per-state escort requirement resolutions",
	}, []string{"outcome"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "distance_fallback_total",
		Help: "Distance estimates served by the haversine fallback",
	})

	if err := reg.Register(quotes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			quotes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(resolutions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			resolutions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fallbacks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fallbacks = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}

	return &Sink{
		quotes:            quotes,
		escortResolutions: resolutions,
		distanceFallbacks: fallbacks,
	}, nil
}

// RecordQuote counts a calculated quote by rate tier.
func (s *Sink) RecordQuote(tier string) {
	if s == nil {
		return
	}
	s.quotes.WithLabelValues(tier).Inc()
}

// RecordEscortResolution counts a per-state resolution outcome.
func (s *Sink) RecordEscortResolution(outcome string) {
	if s == nil {
		return
	}
	s.escortResolutions.WithLabelValues(outcome).Inc()
}

// RecordDistanceFallback counts a distance estimate that fell back to the
// deterministic haversine path.
func (s *Sink) RecordDistanceFallback() {
	if s == nil {
		return
	}
	s.distanceFallbacks.Inc()
}
