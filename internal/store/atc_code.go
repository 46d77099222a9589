package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// ATCCodeStore defines the interface for ATC code data persistence.
// All read methods exclude soft-deleted rows.
type ATCCodeStore interface {
	// Create saves a new ATC code to the store.
	// Returns ErrATCCodeExists if the code string is taken, ErrSlugExists
	// if the slug is taken, and ErrInvalidEntity if the parent does not
	// exist.
	Create(ctx context.Context, atcCode *domain.ATCCode) error

	// GetByID retrieves an ATC code by its unique ID.
	// Returns ErrATCCodeNotFound if the code does not exist or has been
	// soft-deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error)

	// GetByCode retrieves an ATC code by its unique code string.
	// Returns ErrATCCodeNotFound if the code does not exist.
	GetByCode(ctx context.Context, code string) (*domain.ATCCode, error)

	// GetBySlug retrieves an ATC code by its slug.
	// Returns ErrATCCodeNotFound if the code does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.ATCCode, error)

	// List retrieves ATC codes ordered by code with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.ATCCode, error)

	// SoftDelete marks an ATC code as deleted, recording who deleted it.
	// Returns ErrATCCodeNotFound if the code does not exist or is already
	// deleted, and ErrHasChildren if other codes still reference it as
	// parent.
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error

	// PurgeDeleted permanently removes ATC codes soft-deleted before the
	// given cutoff. Returns the number of rows removed.
	PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error)
}
