package validation

// MeasurementUnit is the distance unit accepted by radius search.
type MeasurementUnit string

const (
	UnitKilometers MeasurementUnit = "KM"
	UnitMiles      MeasurementUnit = "MI"
)

// ValidateWithinRadius checks the zipcode/distance/unit triple of a radius
// search. The unit arrives as a path string, zipcode and distance as raw
// values so wrong-typed bodies report the type message.
func ValidateWithinRadius(zipcode, distance any, unit string) []FieldError {
	var errs []FieldError

	validateRadiusZipcode(&errs, zipcode)
	validateRadiusDistance(&errs, distance)
	validateMeasurementUnit(&errs, unit)

	return errs
}

func validateRadiusZipcode(errs *[]FieldError, value any) {
	if err := StringField(value, "zipcode", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if !isValidZipcode(value.(string)) {
		*errs = append(*errs, NewFieldError("zipcode", ValidZipcodeMessage))
	}
}

func validateRadiusDistance(errs *[]FieldError, value any) {
	if err := NumberField(value, "distance", false, ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if asNumber(value) <= 0 {
		*errs = append(*errs, NewFieldError("distance", DistanceIntervalMessage))
	}
}

func validateMeasurementUnit(errs *[]FieldError, unit string) {
	if err := StringField(unit, "measurementUnits", ""); err != nil {
		*errs = append(*errs, *err)
		return
	}
	if MeasurementUnit(unit) != UnitKilometers && MeasurementUnit(unit) != UnitMiles {
		*errs = append(*errs, NewFieldError("measurementUnits", ValidMeasurementUnitsMsg))
	}
}
