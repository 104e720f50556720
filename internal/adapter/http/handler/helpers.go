package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkotenko/gotransfer/internal/adapter/http/dto"
	"github.com/dkotenko/gotransfer/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Precondition
// violations are client errors; anything unrecognized is a server error.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrHolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrUnknownCurrency),
		errors.Is(err, domain.ErrSamePayerAndPayee),
		errors.Is(err, domain.ErrMissingAmount),
		errors.Is(err, domain.ErrMissingCurrency),
		errors.Is(err, domain.ErrMissingPayer),
		errors.Is(err, domain.ErrMissingPayee),
		errors.Is(err, domain.ErrMissingTimestamp):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
