// Package httperr defines the typed API error rendered by the HTTP error
// handler into the uniform envelope {"error": {"code", "message", "details"}}.
package httperr

import "net/http"

// FieldIssue is one violated constraint on one field of a request body.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error carries the HTTP status, machine-readable code, and human-readable
// message for an expected, user-facing failure. Details is populated only for
// validation errors.
type Error struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// New builds an Error with the given status, code, and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Validation builds the 422 VALIDATION_ERROR response carrying the ordered
// field-level issues.
func Validation(issues []FieldIssue) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "Request validation failed",
		Details: issues,
	}
}
