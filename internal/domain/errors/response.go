package errors

// ErrorInfo contains detailed error information.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "AUTHENTICATION_FAILED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope for non-GraphQL HTTP responses.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-facing message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
