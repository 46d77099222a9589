package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns ErrSlugExists if the slug is taken and ErrInvalidEntity if
	// the parent category does not exist.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetBySlug retrieves a category by its slug.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// List retrieves categories ordered by name with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)

	// ListAll retrieves every category ordered by name. Used by the tree
	// assembly, which links parents and children in memory.
	ListAll(ctx context.Context) ([]*domain.Category, error)

	// Update persists changes to an existing category.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its ID.
	// Returns ErrCategoryNotFound if the category does not exist and
	// ErrHasChildren if other categories still reference it as parent.
	Delete(ctx context.Context, id uuid.UUID) error
}
