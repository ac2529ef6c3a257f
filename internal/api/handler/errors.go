package handler

import (
	"net/http"

	"github.com/giufus/workout-streak-bot/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest   = apierr.CodeInvalidRequest
	CodeInvalidAmount    = apierr.CodeInvalidAmount
	CodeUnknownAlias     = apierr.CodeUnknownAlias
	CodeExerciseNotFound = apierr.CodeExerciseNotFound
	CodePlayerNotFound   = apierr.CodePlayerNotFound
	CodeCatalogNotSeeded = apierr.CodeCatalogNotSeeded
	CodeStoreUnavailable = apierr.CodeStoreUnavailable
	CodeUnauthorized     = apierr.CodeUnauthorized
	CodeForbidden        = apierr.CodeForbidden
	CodeInternalError    = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
