package validation

import "math"

// ValidateLocation checks the coordinates and formatted address returned by
// the geocoding provider. Missing values use geocoder-specific messages since
// the caller never supplied them directly.
func ValidateLocation(longitude, latitude, formattedAddress any) []FieldError {
	var errs []FieldError

	validateLongitude(&errs, longitude)
	validateLatitude(&errs, latitude)
	validateFormattedAddress(&errs, formattedAddress)

	return errs
}

func validateLongitude(errs *[]FieldError, value any) {
	if err := NumberField(value, "longitude", false, LongitudeProvideValueMessage); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if math.Abs(asNumber(value)) >= 180 {
		*errs = append(*errs, NewFieldError("longitude", LongitudeIntervalMessage))
	}
}

func validateLatitude(errs *[]FieldError, value any) {
	if err := NumberField(value, "latitude", false, LatitudeProvideValueMessage); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if math.Abs(asNumber(value)) >= 90 {
		*errs = append(*errs, NewFieldError("latitude", LatitudeIntervalMessage))
	}
}

func validateFormattedAddress(errs *[]FieldError, value any) {
	if err := StringField(value, "formattedAddress", FormattedAddressProvideValueMessage); err != nil {
		*errs = append(*errs, *err)
	}
}
