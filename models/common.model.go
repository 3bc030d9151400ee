package models

// APIResponse is the standard failure envelope: {message, error?}.
// Handlers build success bodies inline since each names its entity.
type APIResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse creates a standardized error response. detail is
// optional diagnostic text, included only when non-empty.
func ErrorResponse(message, detail string) APIResponse {
	return APIResponse{
		Message: message,
		Error:   detail,
	}
}
