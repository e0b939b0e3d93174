package dto

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Message: message,
			Status:  status,
		},
	}
}

// StatusResponse acknowledges a delete
type StatusResponse struct {
	Status string `json:"status"`
}

// Deleted is returned by every successful DELETE
var Deleted = StatusResponse{Status: "deleted"}
