package distance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.NotEmpty(t, r.URL.Query().Get("origins"))
		assert.NotEmpty(t, r.URL.Query().Get("destinations"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func newTestProvider(t *testing.T, srv *httptest.Server) *MatrixProvider {
	t.Helper()
	provider, err := NewMatrixProvider(MatrixOptions{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return provider
}

func okBody(distanceText string) string {
	return fmt.Sprintf(`{
		"status": "OK",
		"rows": [{"elements": [{"status": "OK", "distance": {"text": %q}}]}]
	}`, distanceText)
}

func TestMatrixDistance(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected float64
		wantErr  bool
	}{
		{name: "simple distance", status: 200, body: okBody("676 mi"), expected: 676 * 1.2},
		{name: "comma grouped distance", status: 200, body: okBody("1,234 mi"), expected: 1234 * 1.2},
		{name: "non-OK top status", status: 200, body: `{"status": "REQUEST_DENIED", "rows": []}`, wantErr: true},
		{name: "non-OK element status", status: 200, body: `{"status": "OK", "rows": [{"elements": [{"status": "NOT_FOUND"}]}]}`, wantErr: true},
		{name: "empty rows", status: 200, body: `{"status": "OK", "rows": []}`, wantErr: true},
		{name: "http error", status: 503, body: "unavailable", wantErr: true},
		{name: "malformed body", status: 200, body: "{not json", wantErr: true},
		{name: "unparsable distance text", status: 200, body: okBody("far away"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := matrixServer(t, tt.status, tt.body)
			defer srv.Close()

			provider := newTestProvider(t, srv)
			miles, err := provider.Distance(context.Background(), "Richmond, VA", "Charlotte, NC")

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, miles, 1e-9)
		})
	}
}

func TestMatrixProviderValidation(t *testing.T) {
	_, err := NewMatrixProvider(MatrixOptions{APIKey: "k"})
	assert.Error(t, err)

	_, err = NewMatrixProvider(MatrixOptions{BaseURL: "https://example.com"})
	assert.Error(t, err)
}

func TestMatrixDistanceEmptyPlaces(t *testing.T) {
	srv := matrixServer(t, 200, okBody("10 mi"))
	defer srv.Close()

	provider := newTestProvider(t, srv)
	_, err := provider.Distance(context.Background(), "", "Charlotte, NC")
	assert.Error(t, err)
}
