// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"context"
	"time"

	mtcusecase "mtc_backend/internal/feature/mtc/usecase"
	"mtc_backend/internal/platform/config"
	"mtc_backend/internal/platform/externalapi/geocoder"
	infrahttp "mtc_backend/internal/platform/http"
	"mtc_backend/internal/shared/ratelimiter"
)

// geocoderAdapter converts the geocoding client's results into the shape
// the mtc usecase consumes, throttled to the provider's request budget.
type geocoderAdapter struct {
	client  *geocoder.Client
	limiter ratelimiter.RateLimiterInterface
}

var _ mtcusecase.Geocoder = geocoderAdapter{}

func (a geocoderAdapter) Forward(ctx context.Context, query string) (mtcusecase.GeocodeResult, error) {
	a.limiter.WaitIfNeeded()

	res, err := a.client.Forward(ctx, query)
	if err != nil {
		return mtcusecase.GeocodeResult{}, err
	}
	return mtcusecase.GeocodeResult{
		Longitude:        res.Longitude,
		Latitude:         res.Latitude,
		FormattedAddress: res.FormattedAddress,
		Street:           res.Street,
		City:             res.City,
		State:            res.State,
		Zipcode:          res.Zipcode,
		Country:          res.Country,
	}, nil
}

// NewGeocoder creates a fully configured forward-geocoding client with its
// own HTTP client.
func NewGeocoder(cfg *config.Config) mtcusecase.Geocoder {
	gcfg := geocoder.Config{
		APIKey:  cfg.GeocoderAPIKey,
		BaseURL: cfg.GeocoderBaseURL,
		Timeout: cfg.GeocoderTimeout,
	}
	return geocoderAdapter{
		client:  geocoder.NewClient(gcfg, infrahttp.NewHTTPClient(gcfg.Timeout)),
		limiter: ratelimiter.NewRateLimiter(cfg.GeocoderRateLimit, time.Minute),
	}
}
