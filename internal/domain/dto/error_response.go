package dto

import "time"

// ErrorResponse is the standardized error body returned by every
// failing endpoint.
//
// Only Message is part of the stable API contract (the "error" key).
// ErrorDetails carries an optional inner error string and is omitted
// when empty; internal errors never populate it so no internal detail
// leaks to clients.
type ErrorResponse struct {
	Message      string    `json:"error" example:"An internal server error occurred."`
	ErrorDetails string    `json:"details,omitempty" example:"parse date: invalid format"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// as a regular error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
