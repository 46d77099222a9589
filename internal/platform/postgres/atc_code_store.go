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

// PostgresATCCodeStore implements the store.ATCCodeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresATCCodeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresATCCodeStore creates a new PostgreSQL implementation of the
// ATCCodeStore interface. If logger is nil, a default logger will be used.
func NewPostgresATCCodeStore(db store.DBTX, logger *slog.Logger) *PostgresATCCodeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresATCCodeStore{
		db:     db,
		logger: logger.With(slog.String("component", "atc_code_store")),
	}
}

// Ensure PostgresATCCodeStore implements store.ATCCodeStore interface
var _ store.ATCCodeStore = (*PostgresATCCodeStore)(nil)

const atcCodeColumns = `id, parent_id, name, code, level, slug, status, description,
	created_by, updated_by, deleted_by, created_at, updated_at, deleted_at`

// scanATCCode scans a single ATC code row from the given scanner.
func scanATCCode(row interface{ Scan(dest ...any) error }) (*domain.ATCCode, error) {
	var atcCode domain.ATCCode
	var parentID uuid.NullUUID
	var description, createdBy, updatedBy, deletedBy sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&atcCode.ID,
		&parentID,
		&atcCode.Name,
		&atcCode.Code,
		&atcCode.Level,
		&atcCode.Slug,
		&atcCode.Status,
		&description,
		&createdBy,
		&updatedBy,
		&deletedBy,
		&atcCode.CreatedAt,
		&atcCode.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	atcCode.ParentID = uuidPtr(parentID)
	atcCode.Description = stringValue(description)
	atcCode.CreatedBy = stringValue(createdBy)
	atcCode.UpdatedBy = stringValue(updatedBy)
	atcCode.DeletedBy = stringValue(deletedBy)
	atcCode.DeletedAt = timePtr(deletedAt)
	return &atcCode, nil
}

// Create implements store.ATCCodeStore.Create
// Returns store.ErrATCCodeExists for code collisions, store.ErrSlugExists
// for slug collisions, and store.ErrInvalidEntity if the parent does not
// exist.
func (s *PostgresATCCodeStore) Create(ctx context.Context, atcCode *domain.ATCCode) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := atcCode.Validate(); err != nil {
		log.Warn("ATC code validation failed during create",
			slog.String("error", err.Error()),
			slog.String("atc_code_id", atcCode.ID.String()))
		return err
	}

	query := `
		INSERT INTO atc_codes (id, parent_id, name, code, level, slug, status, description,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		atcCode.ID,
		nullUUID(atcCode.ParentID),
		atcCode.Name,
		atcCode.Code,
		atcCode.Level,
		atcCode.Slug,
		atcCode.Status,
		nullString(atcCode.Description),
		nullString(atcCode.CreatedBy),
		nullString(atcCode.UpdatedBy),
		atcCode.CreatedAt,
		atcCode.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			if constraintName(err) == "atc_codes_slug_key" {
				return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
			}
			return fmt.Errorf("%w: %v", store.ErrATCCodeExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: parent ATC code not found: %v", store.ErrInvalidEntity, err)
		}
		log.Error("failed to create ATC code",
			slog.String("error", err.Error()),
			slog.String("atc_code_id", atcCode.ID.String()))
		return MapError(err)
	}

	log.Info("ATC code created successfully",
		slog.String("atc_code_id", atcCode.ID.String()),
		slog.String("code", atcCode.Code))
	return nil
}

// GetByID implements store.ATCCodeStore.GetByID
func (s *PostgresATCCodeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM atc_codes WHERE id = $1 AND deleted_at IS NULL",
		atcCodeColumns,
	)
	return s.getOne(ctx, query, id)
}

// GetByCode implements store.ATCCodeStore.GetByCode
func (s *PostgresATCCodeStore) GetByCode(ctx context.Context, code string) (*domain.ATCCode, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM atc_codes WHERE code = $1 AND deleted_at IS NULL",
		atcCodeColumns,
	)
	return s.getOne(ctx, query, code)
}

// GetBySlug implements store.ATCCodeStore.GetBySlug
func (s *PostgresATCCodeStore) GetBySlug(ctx context.Context, slug string) (*domain.ATCCode, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM atc_codes WHERE slug = $1 AND deleted_at IS NULL",
		atcCodeColumns,
	)
	return s.getOne(ctx, query, slug)
}

func (s *PostgresATCCodeStore) getOne(ctx context.Context, query string, arg any) (*domain.ATCCode, error) {
	atcCode, err := scanATCCode(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrATCCodeNotFound
		}
		return nil, err
	}
	return atcCode, nil
}

// List implements store.ATCCodeStore.List
func (s *PostgresATCCodeStore) List(ctx context.Context, offset, limit int) ([]*domain.ATCCode, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT %s FROM atc_codes
		WHERE deleted_at IS NULL
		ORDER BY code, id
		OFFSET $1 LIMIT $2`,
		atcCodeColumns,
	)

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to list ATC codes", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	atcCodes := make([]*domain.ATCCode, 0)
	for rows.Next() {
		atcCode, err := scanATCCode(rows)
		if err != nil {
			log.Error("failed to scan ATC code row", slog.String("error", err.Error()))
			return nil, err
		}
		atcCodes = append(atcCodes, atcCode)
	}

	return atcCodes, rows.Err()
}

// SoftDelete implements store.ATCCodeStore.SoftDelete
// Returns store.ErrHasChildren if live child codes still reference this one.
func (s *PostgresATCCodeStore) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var children int
	err := s.db.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM atc_codes WHERE parent_id = $1 AND deleted_at IS NULL",
		id,
	).Scan(&children)
	if err != nil {
		return MapError(err)
	}
	if children > 0 {
		return fmt.Errorf("%w: ATC code has %d live children", store.ErrHasChildren, children)
	}

	now := time.Now().UTC()
	query := `
		UPDATE atc_codes
		SET deleted_at = $1, updated_at = $1, deleted_by = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, now, nullString(deletedBy), id)
	if err != nil {
		log.Error("failed to soft delete ATC code",
			slog.String("error", err.Error()),
			slog.String("atc_code_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrATCCodeNotFound); err != nil {
		return err
	}

	log.Info("ATC code soft-deleted",
		slog.String("atc_code_id", id.String()),
		slog.String("deleted_by", deletedBy))
	return nil
}

// PurgeDeleted implements store.ATCCodeStore.PurgeDeleted
// Pivot rows referencing purged codes are removed by ON DELETE CASCADE.
func (s *PostgresATCCodeStore) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"DELETE FROM atc_codes WHERE deleted_at IS NOT NULL AND deleted_at < $1",
		cutoff,
	)
	if err != nil {
		log.Error("failed to purge deleted ATC codes", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return purged, nil
}
