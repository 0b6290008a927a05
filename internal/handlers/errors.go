package handlers

import (
	"time"

	"github.com/contaplena/site-api/internal/utils"
)

// ErrorResponse is the generic error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse names the offending fields of a rejected input
type ValidationErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []utils.ValidationError `json:"fields"`
}

// MessageResponse carries a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports the service and its dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
