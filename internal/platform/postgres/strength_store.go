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

// PostgresStrengthStore implements the store.StrengthStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStrengthStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStrengthStore creates a new PostgreSQL implementation of the
// StrengthStore interface. If logger is nil, a default logger will be used.
func NewPostgresStrengthStore(db store.DBTX, logger *slog.Logger) *PostgresStrengthStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStrengthStore{
		db:     db,
		logger: logger.With(slog.String("component", "strength_store")),
	}
}

// Ensure PostgresStrengthStore implements store.StrengthStore interface
var _ store.StrengthStore = (*PostgresStrengthStore)(nil)

const strengthColumns = `id, medicine_id, dose_form_id, concentration_amount, concentration_unit,
	volume_amount, volume_unit, chemical_form, info, description, created_at, updated_at, deleted_at`

// scanStrength scans a single strength row from the given scanner.
func scanStrength(row interface{ Scan(dest ...any) error }) (*domain.Strength, error) {
	var strength domain.Strength
	var volumeAmount sql.NullFloat64
	var volumeUnit, chemicalForm, info, description sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&strength.ID,
		&strength.MedicineID,
		&strength.DoseFormID,
		&strength.ConcentrationAmount,
		&strength.ConcentrationUnit,
		&volumeAmount,
		&volumeUnit,
		&chemicalForm,
		&info,
		&description,
		&strength.CreatedAt,
		&strength.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	strength.VolumeAmount = floatPtr(volumeAmount)
	strength.VolumeUnit = stringValue(volumeUnit)
	strength.ChemicalForm = stringValue(chemicalForm)
	strength.Info = stringValue(info)
	strength.Description = stringValue(description)
	strength.DeletedAt = timePtr(deletedAt)
	return &strength, nil
}

// Create implements store.StrengthStore.Create
// Returns store.ErrStrengthExists when the composite uniqueness constraint
// is violated and store.ErrInvalidEntity when the medicine or dose form
// does not exist.
func (s *PostgresStrengthStore) Create(ctx context.Context, strength *domain.Strength) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := strength.Validate(); err != nil {
		log.Warn("strength validation failed during create",
			slog.String("error", err.Error()),
			slog.String("strength_id", strength.ID.String()))
		return err
	}

	query := `
		INSERT INTO strengths (id, medicine_id, dose_form_id, concentration_amount, concentration_unit,
			volume_amount, volume_unit, chemical_form, info, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		strength.ID,
		strength.MedicineID,
		strength.DoseFormID,
		strength.ConcentrationAmount,
		strength.ConcentrationUnit,
		nullFloat(strength.VolumeAmount),
		nullString(strength.VolumeUnit),
		nullString(strength.ChemicalForm),
		nullString(strength.Info),
		nullString(strength.Description),
		strength.CreatedAt,
		strength.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate strength variant",
				slog.String("medicine_id", strength.MedicineID.String()))
			return fmt.Errorf("%w: %v", store.ErrStrengthExists, err)
		}
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: medicine or dose form not found: %v", store.ErrInvalidEntity, err)
		}
		log.Error("failed to create strength",
			slog.String("error", err.Error()),
			slog.String("strength_id", strength.ID.String()))
		return MapError(err)
	}

	log.Info("strength created successfully",
		slog.String("strength_id", strength.ID.String()),
		slog.String("medicine_id", strength.MedicineID.String()))
	return nil
}

// GetByID implements store.StrengthStore.GetByID
// Returns store.ErrStrengthNotFound if the strength does not exist or is
// soft-deleted.
func (s *PostgresStrengthStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Strength, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM strengths WHERE id = $1 AND deleted_at IS NULL",
		strengthColumns,
	)

	strength, err := scanStrength(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStrengthNotFound
		}
		return nil, err
	}

	return strength, nil
}

// ListByMedicine implements store.StrengthStore.ListByMedicine
func (s *PostgresStrengthStore) ListByMedicine(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.Strength, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT %s FROM strengths
		WHERE medicine_id = $1 AND deleted_at IS NULL
		ORDER BY concentration_amount, id`,
		strengthColumns,
	)

	rows, err := s.db.QueryContext(ctx, query, medicineID)
	if err != nil {
		log.Error("failed to list strengths",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicineID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	strengths := make([]*domain.Strength, 0)
	for rows.Next() {
		strength, err := scanStrength(rows)
		if err != nil {
			log.Error("failed to scan strength row", slog.String("error", err.Error()))
			return nil, err
		}
		strengths = append(strengths, strength)
	}

	return strengths, rows.Err()
}

// SoftDelete implements store.StrengthStore.SoftDelete
// Returns store.ErrStrengthNotFound if the strength does not exist or is
// already deleted.
func (s *PostgresStrengthStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		UPDATE strengths
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, now, id)
	if err != nil {
		log.Error("failed to soft delete strength",
			slog.String("error", err.Error()),
			slog.String("strength_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrStrengthNotFound); err != nil {
		return err
	}

	log.Info("strength soft-deleted", slog.String("strength_id", id.String()))
	return nil
}

// PurgeDeleted implements store.StrengthStore.PurgeDeleted
func (s *PostgresStrengthStore) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"DELETE FROM strengths WHERE deleted_at IS NOT NULL AND deleted_at < $1",
		cutoff,
	)
	if err != nil {
		log.Error("failed to purge deleted strengths", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return purged, nil
}
