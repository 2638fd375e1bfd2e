// Package api defines the shared JSON response envelopes used by all handlers.
package api

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for successful requests that carry no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error builds an ErrorResponse with Success set to false.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// Message builds a MessageResponse with Success set to true.
func Message(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
