package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/platform/logger"
	"github.com/imslabs/ims-api/internal/store"
)

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = "id, parent_id, name, slug, description, status, created_at, updated_at"

// scanCategory scans a single category row from the given scanner.
func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var category domain.Category
	var parentID uuid.NullUUID
	var slug, description sql.NullString

	err := row.Scan(
		&category.ID,
		&parentID,
		&category.Name,
		&slug,
		&description,
		&category.Status,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	category.ParentID = uuidPtr(parentID)
	category.Slug = stringValue(slug)
	category.Description = stringValue(description)
	return &category, nil
}

// Create implements store.CategoryStore.Create
// Returns store.ErrSlugExists if the slug is taken and store.ErrInvalidEntity
// if the parent category does not exist.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		INSERT INTO categories (id, parent_id, name, slug, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		nullUUID(category.ParentID),
		category.Name,
		nullString(category.Slug),
		nullString(category.Description),
		category.Status,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: parent category not found: %v", store.ErrInvalidEntity, err)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	log.Info("category created successfully",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories WHERE id = $1", categoryColumns)

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// GetBySlug implements store.CategoryStore.GetBySlug
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories WHERE slug = $1", categoryColumns)

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// List implements store.CategoryStore.List
func (s *PostgresCategoryStore) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM categories ORDER BY name, id OFFSET $1 LIMIT $2",
		categoryColumns,
	)
	return s.queryCategories(ctx, query, offset, limit)
}

// ListAll implements store.CategoryStore.ListAll
func (s *PostgresCategoryStore) ListAll(ctx context.Context) ([]*domain.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories ORDER BY name, id", categoryColumns)
	return s.queryCategories(ctx, query)
}

func (s *PostgresCategoryStore) queryCategories(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query categories", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error("failed to scan category row", slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Update implements store.CategoryStore.Update
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	category.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE categories
		SET parent_id = $1, name = $2, slug = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		nullUUID(category.ParentID),
		category.Name,
		nullString(category.Slug),
		nullString(category.Description),
		category.Status,
		category.UpdatedAt,
		category.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: parent category not found: %v", store.ErrInvalidEntity, err)
		}
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete implements store.CategoryStore.Delete
// Returns store.ErrHasChildren when other categories still reference this
// one as parent. The parent_id foreign key is RESTRICT, so the check is
// enforced by the database even under concurrent inserts.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: category is still referenced", store.ErrHasChildren)
		}
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category deleted successfully", slog.String("category_id", id.String()))
	return nil
}
