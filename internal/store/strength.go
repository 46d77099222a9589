package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// StrengthStore defines the interface for strength data persistence.
// All read methods exclude soft-deleted rows.
type StrengthStore interface {
	// Create saves a new strength to the store.
	// Returns ErrStrengthExists if an identical variant already exists for
	// the medicine and ErrInvalidEntity if the medicine or dose form does
	// not exist.
	Create(ctx context.Context, strength *domain.Strength) error

	// GetByID retrieves a strength by its unique ID.
	// Returns ErrStrengthNotFound if the strength does not exist or has
	// been soft-deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Strength, error)

	// ListByMedicine retrieves all live strengths for a medicine, ordered
	// by concentration amount.
	ListByMedicine(ctx context.Context, medicineID uuid.UUID) ([]*domain.Strength, error)

	// SoftDelete marks a strength as deleted by setting its deleted_at
	// timestamp. The row stays in place until purged.
	// Returns ErrStrengthNotFound if the strength does not exist or is
	// already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// PurgeDeleted permanently removes strengths soft-deleted before the
	// given cutoff. Returns the number of rows removed.
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error)
}
