package handlers

import (
	"errors"
	"net/http"

	"finlit-agent/internal/apperrors"
)

// statusFor maps pipeline failures to a status class. Anything unrecognized
// is an internal error.
func statusFor(err error) int {
	var validation *apperrors.ValidationError
	var store *apperrors.StoreUnavailableError
	var generative *apperrors.GenerativeUnavailableError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &store):
		return http.StatusServiceUnavailable
	case errors.As(err, &generative):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
