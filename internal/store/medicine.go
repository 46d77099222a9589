package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// MedicineStore defines the interface for medicine data persistence,
// including the category and ATC code association pivots.
type MedicineStore interface {
	// Create saves a new medicine to the store.
	// Returns ErrSlugExists if a medicine with the same slug already exists.
	Create(ctx context.Context, medicine *domain.Medicine) error

	// GetByID retrieves a medicine by its unique ID.
	// The returned medicine has no associations populated; callers that
	// need categories, strengths, or ATC codes load them separately.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)

	// GetBySlug retrieves a medicine by its unique slug.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.Medicine, error)

	// List retrieves medicines ordered by name with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.Medicine, error)

	// Update persists changes to an existing medicine's scalar fields.
	// Associations are managed through the Add/Remove methods below.
	// Returns ErrMedicineNotFound if the medicine does not exist and
	// ErrSlugExists if the new slug collides with another medicine.
	Update(ctx context.Context, medicine *domain.Medicine) error

	// Delete removes a medicine from the store by its ID.
	// Returns ErrMedicineNotFound if the medicine does not exist.
	//
	// Associated strengths and pivot rows are removed by database-level
	// ON DELETE CASCADE constraints, not by application code.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddCategories links the given categories to a medicine. Adding an
	// existing link is a no-op (the pivot insert uses ON CONFLICT DO NOTHING).
	// Returns ErrInvalidEntity if the medicine or a category does not exist.
	AddCategories(ctx context.Context, medicineID uuid.UUID, categoryIDs []uuid.UUID) error

	// RemoveCategories unlinks the given categories from a medicine.
	// Removing an absent link is a no-op.
	RemoveCategories(ctx context.Context, medicineID uuid.UUID, categoryIDs []uuid.UUID) error

	// AddATCCodes links the given ATC codes to a medicine. Adding an
	// existing link is a no-op.
	// Returns ErrInvalidEntity if the medicine or an ATC code does not exist.
	AddATCCodes(ctx context.Context, medicineID uuid.UUID, atcCodeIDs []uuid.UUID) error

	// RemoveATCCodes unlinks the given ATC codes from a medicine.
	// Removing an absent link is a no-op.
	RemoveATCCodes(ctx context.Context, medicineID uuid.UUID, atcCodeIDs []uuid.UUID) error

	// GetCategories retrieves the categories linked to a medicine,
	// ordered by name.
	GetCategories(ctx context.Context, medicineID uuid.UUID) ([]*domain.Category, error)

	// GetATCCodes retrieves the non-deleted ATC codes linked to a medicine,
	// ordered by code.
	GetATCCodes(ctx context.Context, medicineID uuid.UUID) ([]*domain.ATCCode, error)

	// WithTx returns a MedicineStore bound to the provided transaction, so
	// multiple operations can execute atomically. Use together with
	// store.RunInTransaction; the transaction is managed by the caller.
	WithTx(tx *sql.Tx) MedicineStore
}
