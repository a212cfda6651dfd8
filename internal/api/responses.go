// Package api defines the shared JSON response envelopes used by every
// transport handler. The platform's frontend expects a {success, message}
// pair on each response, with `data` carried on reads, `result` on writes
// and `token` on login.
package api

// MessageResponse is the minimal success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope. Success is always false.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// DataResponse carries retrieved records.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ResultResponse carries the outcome of a write (generated id, affected
// rows and the like).
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// Error builds an ErrorResponse with the given message.
func Error(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
