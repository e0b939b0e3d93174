package dto

import (
	"net/http"

	"github.com/biztime/backend/internal/domain/shared"
)

// CodePayloadTooLarge is reported when a streamed body exceeds the limit
const CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound: http.StatusNotFound,

	// Input errors -> 400 Bad Request
	shared.CodeBadRequest:       http.StatusBadRequest,
	shared.CodeInvalidInput:     http.StatusBadRequest,
	shared.CodeValidation:       http.StatusBadRequest,
	shared.CodeInvalidReference: http.StatusBadRequest,

	shared.CodeAlreadyExists: http.StatusConflict,

	CodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	shared.CodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Messages used when a status has no domain error behind it
const (
	MessageNotFound           = "Not Found"
	MessageInternal           = "An unexpected error occurred"
	MessageNotAllowed         = "Not Allowed"
	MessageServiceUnavailable = "Service Unavailable"
)
