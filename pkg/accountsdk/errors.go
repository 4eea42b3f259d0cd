package accountsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-validation error response from the accounts service.
// It implements the error interface and can be used both by the server (to
// write responses) and by the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is the fixed human-readable message for the error
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("accounts: %d %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(MessageResponse{Message: e.Message})
}

// Predefined errors matching the service's fixed response bodies.
var (
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid credentials",
	}
	ErrInternal = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request body",
	}
	ErrTooManyRequests = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "Too many requests. Please try again later.",
	}
)

// ValidationError is a 400 sign-up response carrying per-field rule
// violations.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return "accounts: validation failed: " + strings.Join(msgs, "; ")
}

// parseError converts a non-2xx response body into the most specific error
// type it can.
func parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "unreadable response body"}
	}

	if resp.StatusCode == http.StatusBadRequest {
		var vr ValidationResponse
		if err := json.Unmarshal(body, &vr); err == nil && len(vr.Message) > 0 {
			return &ValidationError{Fields: vr.Message}
		}
	}

	var mr MessageResponse
	if err := json.Unmarshal(body, &mr); err == nil && mr.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: mr.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
