package dto

import "net/http"

// Response is the common API envelope
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries a machine-readable code and a human message
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message, RequestID: requestID},
	}
}

// GetHTTPStatus maps domain error codes to HTTP status codes
func GetHTTPStatus(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "ALREADY_EXISTS", "NUMBER_CONFLICT", "USERNAME_TAKEN", "EMAIL_TAKEN", "CONCURRENCY_CONFLICT":
		return http.StatusConflict
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "INVALID_STATE", "ALREADY_SENT", "ALREADY_PAID":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
