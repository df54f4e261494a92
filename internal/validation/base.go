package validation

import "math"

// StringField checks one string field of a decoded request. It fails with
// the missing-value message when the value is absent or empty (the custom
// message, when non-empty, replaces the default) and with the wrong-type
// message when present but not a string. A nil result means the field is
// valid.
func StringField(value any, fieldName, customMissingMessage string) *FieldError {
	missing := ProvideValueMessage
	if customMissingMessage != "" {
		missing = customMissingMessage
	}

	if value == nil {
		e := NewFieldError(fieldName, missing)
		return &e
	}
	s, ok := value.(string)
	if !ok {
		e := NewFieldError(fieldName, MustBeStringMessage)
		return &e
	}
	if s == "" {
		e := NewFieldError(fieldName, missing)
		return &e
	}
	return nil
}

// NumberField checks one numeric field of a decoded request. Decoded JSON
// numbers arrive as float64; requireInteger additionally rejects values
// with a fractional component. Zero is a valid number.
func NumberField(value any, fieldName string, requireInteger bool, customMissingMessage string) *FieldError {
	missing := ProvideValueMessage
	if customMissingMessage != "" {
		missing = customMissingMessage
	}

	if value == nil {
		e := NewFieldError(fieldName, missing)
		return &e
	}

	var f float64
	switch n := value.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		e := NewFieldError(fieldName, MustBeNumberMessage)
		return &e
	}

	if requireInteger && f != math.Trunc(f) {
		e := NewFieldError(fieldName, MustBeIntegerMessage)
		return &e
	}
	return nil
}

// asNumber returns the numeric value behind a field that already passed
// NumberField.
func asNumber(value any) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// BooleanField checks one boolean field of a decoded request.
func BooleanField(value any, fieldName string) *FieldError {
	if value == nil {
		e := NewFieldError(fieldName, ProvideValueMessage)
		return &e
	}
	if _, ok := value.(bool); !ok {
		e := NewFieldError(fieldName, MustBeBooleanMessage)
		return &e
	}
	return nil
}
