package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/onewin/internal/domain"
	"go.uber.org/zap"
)

type Response struct {
	Error         string     `json:"error,omitempty"`
	Message       string     `json:"message,omitempty"`
	NextAvailable *time.Time `json:"next_available,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if code == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Error: message})
}

// StatusFor maps the domain error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyInClan), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTooEarly):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithDomainError writes a typed failure. Unknown errors are hidden behind a 500.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		RespondWithError(w, code, "Internal server error")
		return
	}

	resp := Response{Error: err.Error()}
	if next, ok := domain.NextAvailable(err); ok {
		resp.NextAvailable = &next
	}
	RespondWithJSON(w, code, resp)
}
