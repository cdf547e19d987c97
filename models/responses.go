package models

// APIResponse is the uniform envelope returned by every HTTP endpoint.
//
// Successful responses carry the payload in Data and Success=true; failures
// carry Success=false and a caller-safe Message plus optional detail strings
// in Errors. The HTTP status code is duplicated in the body so that browser
// clients reading through fetch wrappers do not need to inspect transport
// metadata.
type APIResponse struct {
	// StatusCode mirrors the HTTP status code of the response.
	StatusCode int `json:"status_code"`

	// Data holds the operation result. Omitted on failures.
	Data any `json:"data,omitempty"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Errors lists additional caller-safe failure details, if any.
	Errors []string `json:"errors,omitempty"`
}

// NewSuccessResponse builds a success envelope around data.
func NewSuccessResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

// NewErrorResponse builds a failure envelope. Internal error details must be
// logged, not passed here: everything in the envelope reaches the caller.
func NewErrorResponse(statusCode int, message string, errs ...string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

// SessionResponse is the payload returned by login and refresh endpoints:
// the sanitized account plus the freshly minted token pair. Tokens are also
// delivered as HttpOnly cookies; the body copy exists for non-browser clients.
type SessionResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}
