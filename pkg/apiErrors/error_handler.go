// Package apiErrors standardizes the error payloads returned by the API.
package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Authentication errors
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_004"
	ErrExpiredToken          = "AUTH_005"
	ErrInsufficientPrivilege = "AUTH_006"
	ErrUserAlreadyExists     = "AUTH_007"

	// Validation errors
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Queue errors
	ErrQueueEntryNotFound  = "QUE_001"
	ErrAlreadyQueued       = "QUE_002"
	ErrAlreadyFeatured     = "QUE_003"
	ErrInvalidQueueOrder   = "QUE_004"
	ErrQueueEntryNotActive = "QUE_005"

	// Rotation errors
	ErrRotationInProgress = "ROT_001"
	ErrQueueEmpty         = "ROT_002"
	ErrTargetNotFound     = "ROT_003"
	ErrTargetFeatured     = "ROT_004"
	ErrConfigMissing      = "ROT_005"

	// Selection errors
	ErrNoCandidateFound = "SEL_001"

	// Server errors
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrQueueEntryNotFound:    http.StatusNotFound,
	ErrAlreadyQueued:         http.StatusConflict,
	ErrAlreadyFeatured:       http.StatusConflict,
	ErrInvalidQueueOrder:     http.StatusBadRequest,
	ErrQueueEntryNotActive:   http.StatusConflict,
	ErrRotationInProgress:    http.StatusConflict,
	ErrQueueEmpty:            http.StatusConflict,
	ErrTargetNotFound:        http.StatusNotFound,
	ErrTargetFeatured:        http.StatusConflict,
	ErrConfigMissing:         http.StatusInternalServerError,
	ErrNoCandidateFound:      http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload with the mapped status.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
