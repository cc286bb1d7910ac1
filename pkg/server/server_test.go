package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotsmatch/escort-engine/pkg/models/api"
	"github.com/pilotsmatch/escort-engine/pkg/services/distance"
	quotesvc "github.com/pilotsmatch/escort-engine/pkg/services/quote"
	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
	"github.com/pilotsmatch/escort-engine/pkg/store/rates"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.New(zerolog.NewTestWriter(t))
	rateStore := rates.NewStore()
	regStore := regulation.NewStore("")

	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	calculator := quotesvc.NewCalculator(
		distance.NewEstimator(distance.StaticProvider{Miles: 350}, nil),
		rateStore,
		nil,
		quotesvc.WithClock(func() time.Time { return now }),
	)

	return ConfigureRouter(Config{
		Dependencies: Dependencies{
			Calculator: calculator,
			Resolver:   regulation.NewResolver(regStore, nil),
			Rates:      rateStore,
			Logger:     logger,
		},
	})
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := httptest.NewServer(newTestRouter(t))
	defer testServer.Close()

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("create quote", func(t *testing.T) {
		body, _ := json.Marshal(api.QuoteRequest{
			PickupLocation:   "Richmond",
			PickupState:      "VA",
			DeliveryLocation: "Charlotte",
			DeliveryState:    "NC",
			PickupDate:       "2026-08-20",
			PickupTime:       "08:00",
			CarTypes:         []string{"Lead / Chase"},
		})

		resp, err := http.Post(testServer.URL+"/api/v1/quotes", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var quote api.QuoteResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))

		assert.Equal(t, "standard", quote.RateTier)
		assert.Equal(t, "Southeast", quote.Region)
		assert.Equal(t, 1, quote.TripDays)
		assert.InDelta(t, 665.00, quote.TotalCost, 1e-9)
	})

	t.Run("resolve escorts", func(t *testing.T) {
		body, _ := json.Marshal(api.EscortRequest{
			Width:    `14'3"`,
			RoadType: "Interstate",
			States:   []string{"VA", "NC"},
		})

		resp, err := http.Post(testServer.URL+"/api/v1/escorts/resolve", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var escorts api.EscortResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&escorts))
		require.Len(t, escorts.Results, 2)
		assert.Equal(t, "VA", escorts.Results[0].State)
		assert.Equal(t, "NC", escorts.Results[1].State)
	})

	t.Run("region lookup", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/regions/TX")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var region api.RegionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&region))
		assert.Equal(t, "Southwest", region.Region)
		assert.Len(t, region.Rates, 4)
	})
}
