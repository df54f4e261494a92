// Package api defines the JSON response envelopes shared by every handler.
package api

// StatusSuccess is the status string of every successful response.
const StatusSuccess = "success"

// RootMessage is returned by the API root endpoint.
const RootMessage = "Root Endpoint Healthcare Courses API"

// StandardResponse is the envelope for successful responses.
type StandardResponse struct {
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

// OK builds a success envelope around a result payload.
func OK(result any, message string) StandardResponse {
	return StandardResponse{Result: result, Message: message, Status: StatusSuccess}
}

// ErrorResponse is the envelope for failed responses.
type ErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorDetails []any  `json:"errorDetails"`
	Type         string `json:"type"`
}
