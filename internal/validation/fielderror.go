// Package validation implements the request validators: pure functions that
// check one decoded request shape and return an ordered list of field
// errors. An empty list means the request is valid. Validators never panic
// and never return an error for anything but field content; each call
// allocates its own result list, so validators are safe for concurrent use.
//
// Per field, checks short-circuit: the first failing check is recorded and
// the remaining checks for that field are skipped, so a field never appears
// twice in one result. The list order follows field declaration order.
package validation

// FieldError pairs a field name with a human-readable problem description.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewFieldError builds a FieldError.
func NewFieldError(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// Details converts a field error list into the detail list carried by the
// error response envelope.
func Details(errs []FieldError) []any {
	out := make([]any, 0, len(errs))
	for _, e := range errs {
		out = append(out, e)
	}
	return out
}
