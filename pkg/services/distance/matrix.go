package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// routingBuffer widens the provider's corridor distance to cover real-world
// escort routing.
const routingBuffer = 1.2

const defaultTimeout = 10 * time.Second

// Provider returns a road distance in miles between two free-text places.
type Provider interface {
	Distance(ctx context.Context, origin, destination string) (float64, error)
}

// MatrixProvider queries a distance-matrix style routing service.
type MatrixProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

// MatrixOptions configures the routing service endpoint.
type MatrixOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewMatrixProvider(opts MatrixOptions) (*MatrixProvider, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("routing base URL is empty")
	}
	if opts.APIKey == "" {
		return nil, errors.New("routing api key is empty")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &MatrixProvider{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
	}, nil
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Distance fetches the routed distance between origin and destination and
// applies the routing buffer.
func (p *MatrixProvider) Distance(ctx context.Context, origin, destination string) (float64, error) {
	if origin == "" || destination == "" {
		return 0, errors.New("origin and destination must be non-empty")
	}

	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", destination)
	params.Set("units", "imperial")
	params.Set("key", p.apiKey)

	endpoint := p.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("routing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing request: unexpected status %d", resp.StatusCode)
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode routing response: %w", err)
	}

	if body.Status != "OK" {
		return 0, fmt.Errorf("routing response status %q", body.Status)
	}
	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, errors.New("routing response has no matrix elements")
	}

	elem := body.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return 0, fmt.Errorf("routing element status %q", elem.Status)
	}

	miles, err := parseMilesText(elem.Distance.Text)
	if err != nil {
		return 0, err
	}

	return miles * routingBuffer, nil
}

// parseMilesText extracts a mileage value from text such as "1,234 mi".
func parseMilesText(text string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "mi"))
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	if trimmed == "" {
		return 0, errors.New("routing response has no distance text")
	}

	miles, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse distance text %q: %w", text, err)
	}
	return miles, nil
}
