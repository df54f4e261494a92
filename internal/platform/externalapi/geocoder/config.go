// Package geocoder provides a client for the forward-geocoding HTTP API
// used to turn street addresses and zipcodes into coordinates.
package geocoder

import "time"

// Config holds configuration for the geocoding API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL of the geocode endpoint
	Timeout time.Duration // HTTP request timeout
}
