// Package dto defines data transfer objects for the geocoding API responses.
package dto

// ForwardResponse represents the JSON response from the forward geocode
// endpoint. Coordinates are pointers so an absent value can be told apart
// from zero.
type ForwardResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Data []struct {
		Longitude   *float64 `json:"longitude"`
		Latitude    *float64 `json:"latitude"`
		Label       string   `json:"label"`
		Street      string   `json:"street"`
		Locality    string   `json:"locality"`
		RegionCode  string   `json:"region_code"`
		PostalCode  string   `json:"postal_code"`
		CountryCode string   `json:"country_code"`
	} `json:"data"`
}
