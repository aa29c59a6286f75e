package dto

import (
	"net/http"
	"strings"
)

// ErrorResponse is the wire format for every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	"VALIDATION_ERROR": http.StatusBadRequest,
	"INVALID_INPUT":    http.StatusBadRequest,
	"NOT_FOUND":        http.StatusNotFound,
	"ALREADY_EXISTS":   http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Field-level codes (INVALID_EMAIL, INVALID_TITLE, ...) all map to 400.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
