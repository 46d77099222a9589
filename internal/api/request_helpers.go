package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// Pagination defaults and bounds for list endpoints.
const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// getPathUUID extracts a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPagination reads offset/limit query parameters, applying the default
// limit and rejecting negative values. The limit is capped at maxListLimit.
func getPagination(r *http.Request) (offset, limit int, err error) {
	offset = 0
	limit = defaultListLimit

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, domain.NewValidationError("offset", "must be a non-negative integer", domain.ErrValidation)
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, domain.NewValidationError("limit", "must be a non-negative integer", domain.ErrValidation)
		}
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	return offset, limit, nil
}
