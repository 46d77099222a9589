package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// DoseFormStore defines the interface for dose form data persistence.
type DoseFormStore interface {
	// Create saves a new dose form to the store.
	Create(ctx context.Context, doseForm *domain.DoseForm) error

	// GetByID retrieves a dose form by its unique ID.
	// Returns ErrDoseFormNotFound if the dose form does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error)

	// List retrieves dose forms ordered by name with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.DoseForm, error)
}
