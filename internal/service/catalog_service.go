package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/platform/logger"
	"github.com/imslabs/ims-api/internal/store"
)

// CatalogService provides operations on the reference data medicines hang
// off: categories, dose forms, and ATC codes.
type CatalogService interface {
	// CreateCategory creates a new category, optionally under a parent.
	CreateCategory(ctx context.Context, category *domain.Category) error

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetCategoryBySlug retrieves a category by slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)

	// ListCategories retrieves a page of categories.
	ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error)

	// CategoryTree returns all root categories with their Children populated
	// recursively.
	CategoryTree(ctx context.Context) ([]*domain.Category, error)

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category *domain.Category) error

	// DeleteCategory removes a category. Returns store.ErrHasChildren if the
	// category still has child categories.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CreateDoseForm creates a new dose form.
	CreateDoseForm(ctx context.Context, doseForm *domain.DoseForm) error

	// GetDoseForm retrieves a dose form by ID.
	GetDoseForm(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error)

	// ListDoseForms retrieves a page of dose forms.
	ListDoseForms(ctx context.Context, offset, limit int) ([]*domain.DoseForm, error)

	// CreateATCCode creates a new ATC classification code, validating that a
	// child code's level is exactly one below its parent's.
	CreateATCCode(ctx context.Context, atcCode *domain.ATCCode) error

	// GetATCCode retrieves an ATC code by ID.
	GetATCCode(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error)

	// GetATCCodeByCode retrieves an ATC code by its code string.
	GetATCCodeByCode(ctx context.Context, code string) (*domain.ATCCode, error)

	// GetATCCodeBySlug retrieves an ATC code by slug.
	GetATCCodeBySlug(ctx context.Context, slug string) (*domain.ATCCode, error)

	// ListATCCodes retrieves a page of ATC codes.
	ListATCCodes(ctx context.Context, offset, limit int) ([]*domain.ATCCode, error)

	// DeleteATCCode soft-deletes an ATC code, recording who removed it.
	// Returns store.ErrHasChildren if live child codes still reference it.
	DeleteATCCode(ctx context.Context, id uuid.UUID, deletedBy string) error
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	categoryStore store.CategoryStore
	doseFormStore store.DoseFormStore
	atcCodeStore  store.ATCCodeStore
	logger        *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if any of the required dependencies are nil.
func NewCatalogService(
	categoryStore store.CategoryStore,
	doseFormStore store.DoseFormStore,
	atcCodeStore store.ATCCodeStore,
	logger *slog.Logger,
) (CatalogService, error) {
	if categoryStore == nil {
		return nil, domain.NewValidationError("categoryStore", "cannot be nil", domain.ErrValidation)
	}
	if doseFormStore == nil {
		return nil, domain.NewValidationError("doseFormStore", "cannot be nil", domain.ErrValidation)
	}
	if atcCodeStore == nil {
		return nil, domain.NewValidationError("atcCodeStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		categoryStore: categoryStore,
		doseFormStore: doseFormStore,
		atcCodeStore:  atcCodeStore,
		logger:        logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// CreateCategory implements CatalogService.CreateCategory
func (s *catalogServiceImpl) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.ParentID != nil {
		if _, err := s.categoryStore.GetByID(ctx, *category.ParentID); err != nil {
			return NewCatalogServiceError("create_category", "parent category lookup failed", err)
		}
	}
	return s.categoryStore.Create(ctx, category)
}

// GetCategory implements CatalogService.GetCategory
func (s *catalogServiceImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categoryStore.GetByID(ctx, id)
}

// GetCategoryBySlug implements CatalogService.GetCategoryBySlug
func (s *catalogServiceImpl) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categoryStore.GetBySlug(ctx, slug)
}

// ListCategories implements CatalogService.ListCategories
func (s *catalogServiceImpl) ListCategories(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Category, error) {
	return s.categoryStore.List(ctx, offset, limit)
}

// CategoryTree implements CatalogService.CategoryTree
// The tree is assembled in memory from a single full scan so the database
// never runs recursive queries.
func (s *catalogServiceImpl) CategoryTree(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	all, err := s.categoryStore.ListAll(ctx)
	if err != nil {
		log.Error("failed to load categories for tree", slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("category_tree", "failed to load categories", err)
	}

	byID := make(map[uuid.UUID]*domain.Category, len(all))
	for _, c := range all {
		c.Children = []*domain.Category{}
		byID[c.ID] = c
	}

	roots := make([]*domain.Category, 0)
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok {
			// Orphaned parent reference; surface the node as a root rather
			// than dropping it.
			log.Warn("category has unknown parent",
				slog.String("category_id", c.ID.String()),
				slog.String("parent_id", c.ParentID.String()))
			roots = append(roots, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}

	return roots, nil
}

// UpdateCategory implements CatalogService.UpdateCategory
func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if category.ParentID != nil && *category.ParentID == category.ID {
		return domain.ErrCategorySelfParent
	}
	return s.categoryStore.Update(ctx, category)
}

// DeleteCategory implements CatalogService.DeleteCategory
func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categoryStore.Delete(ctx, id)
}

// CreateDoseForm implements CatalogService.CreateDoseForm
func (s *catalogServiceImpl) CreateDoseForm(ctx context.Context, doseForm *domain.DoseForm) error {
	return s.doseFormStore.Create(ctx, doseForm)
}

// GetDoseForm implements CatalogService.GetDoseForm
func (s *catalogServiceImpl) GetDoseForm(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error) {
	return s.doseFormStore.GetByID(ctx, id)
}

// ListDoseForms implements CatalogService.ListDoseForms
func (s *catalogServiceImpl) ListDoseForms(
	ctx context.Context,
	offset, limit int,
) ([]*domain.DoseForm, error) {
	return s.doseFormStore.List(ctx, offset, limit)
}

// CreateATCCode implements CatalogService.CreateATCCode
func (s *catalogServiceImpl) CreateATCCode(ctx context.Context, atcCode *domain.ATCCode) error {
	if atcCode.ParentID != nil {
		parent, err := s.atcCodeStore.GetByID(ctx, *atcCode.ParentID)
		if err != nil {
			return NewCatalogServiceError("create_atc_code", "parent code lookup failed", err)
		}
		if atcCode.Level != parent.Level+1 {
			return domain.NewValidationError(
				"level",
				"must be exactly one below the parent level",
				domain.ErrValidation,
			)
		}
	}
	return s.atcCodeStore.Create(ctx, atcCode)
}

// GetATCCode implements CatalogService.GetATCCode
func (s *catalogServiceImpl) GetATCCode(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error) {
	return s.atcCodeStore.GetByID(ctx, id)
}

// GetATCCodeByCode implements CatalogService.GetATCCodeByCode
func (s *catalogServiceImpl) GetATCCodeByCode(ctx context.Context, code string) (*domain.ATCCode, error) {
	return s.atcCodeStore.GetByCode(ctx, code)
}

// GetATCCodeBySlug implements CatalogService.GetATCCodeBySlug
func (s *catalogServiceImpl) GetATCCodeBySlug(ctx context.Context, slug string) (*domain.ATCCode, error) {
	return s.atcCodeStore.GetBySlug(ctx, slug)
}

// ListATCCodes implements CatalogService.ListATCCodes
func (s *catalogServiceImpl) ListATCCodes(
	ctx context.Context,
	offset, limit int,
) ([]*domain.ATCCode, error) {
	return s.atcCodeStore.List(ctx, offset, limit)
}

// DeleteATCCode implements CatalogService.DeleteATCCode
func (s *catalogServiceImpl) DeleteATCCode(ctx context.Context, id uuid.UUID, deletedBy string) error {
	return s.atcCodeStore.SoftDelete(ctx, id, deletedBy)
}
