package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSinkRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewSink(reg)
	require.NoError(t, err)

	// Second registration reuses the existing collectors.
	second, err := NewSink(reg)
	require.NoError(t, err)

	first.RecordQuote("standard")
	second.RecordQuote("standard")

	assert.InDelta(t, 2.0, testutil.ToFloat64(first.quotes.WithLabelValues("standard")), 1e-9)
}

func TestSinkCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewSink(reg)
	require.NoError(t, err)

	sink.RecordDistanceFallback()
	sink.RecordDistanceFallback()
	sink.RecordEscortResolution("none_required")

	assert.InDelta(t, 2.0, testutil.ToFloat64(sink.distanceFallbacks), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(sink.escortResolutions.WithLabelValues("none_required")), 1e-9)
}

func TestNilSinkIsSafe(t *testing.T) {
	var sink *Sink
	sink.RecordQuote("premium")
	sink.RecordEscortResolution("required")
	sink.RecordDistanceFallback()
}
