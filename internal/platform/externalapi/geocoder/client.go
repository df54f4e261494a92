package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"mtc_backend/internal/platform/externalapi/geocoder/dto"
)

// Result is the normalized output of one forward-geocode lookup.
// Coordinates stay pointers: the provider can answer without them, and the
// caller reports that as a validation failure rather than zero coordinates.
type Result struct {
	Longitude        *float64
	Latitude         *float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Client calls the forward-geocoding HTTP API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a geocoding client with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Forward geocodes a free-form query (street address or zipcode) and
// returns the first candidate. An empty Result with nil coordinates means
// the provider could not resolve the query.
func (g *Client) Forward(ctx context.Context, query string) (Result, error) {
	q := url.Values{}
	q.Set("access_key", g.cfg.APIKey)
	q.Set("query", query)
	q.Set("limit", "1")

	u := fmt.Sprintf("%s/forward?%s", g.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}, err
	}

	res, err := g.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return Result{}, fmt.Errorf("geocoder http %d", res.StatusCode)
	}

	var body dto.ForwardResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Result{}, err
	}
	if body.Error.Code != "" {
		return Result{}, fmt.Errorf("geocoder: %s", body.Error.Message)
	}
	if len(body.Data) == 0 {
		return Result{}, nil
	}

	first := body.Data[0]
	return Result{
		Longitude:        first.Longitude,
		Latitude:         first.Latitude,
		FormattedAddress: first.Label,
		Street:           first.Street,
		City:             first.Locality,
		State:            first.RegionCode,
		Zipcode:          first.PostalCode,
		Country:          first.CountryCode,
	}, nil
}
