package utils

import "errors"

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse shapes any error into the JSON error body.
func NewErrorResponse(err error) ErrorResponse {
	var e *Error
	if errors.As(err, &e) {
		return ErrorResponse{Code: string(e.Code), Message: e.Message}
	}
	return ErrorResponse{
		Code:    string(CodeInternal),
		Message: "internal server error",
		Error:   err.Error(),
	}
}
