package middleware

import (
	"encoding/json"
	"net/http"
)

// The error funnel renders every authentication and authorization
// failure in one shape. Middleware and handlers classify; only this
// file formats.

const (
	CodeAuthRequired = "AUTH_REQUIRED" // no/invalid credential on a protected route
	CodeAccessDenied = "ACCESS_DENIED" // valid credential, insufficient rights
)

type errorBody struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// Unauthenticated renders an authentication failure (401).
func Unauthenticated(w http.ResponseWriter, message string) {
	if message == "" {
		message = "authentication required"
	}
	writeError(w, http.StatusUnauthorized, CodeAuthRequired, message)
}

// Forbidden renders an authorization failure (403), distinct from
// an authentication failure.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "access denied"
	}
	writeError(w, http.StatusForbidden, CodeAccessDenied, message)
}
