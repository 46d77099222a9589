package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/platform/logger"
	"github.com/imslabs/ims-api/internal/store"
)

// PostgresDoseFormStore implements the store.DoseFormStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDoseFormStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDoseFormStore creates a new PostgreSQL implementation of the
// DoseFormStore interface. If logger is nil, a default logger will be used.
func NewPostgresDoseFormStore(db store.DBTX, logger *slog.Logger) *PostgresDoseFormStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDoseFormStore{
		db:     db,
		logger: logger.With(slog.String("component", "dose_form_store")),
	}
}

// Ensure PostgresDoseFormStore implements store.DoseFormStore interface
var _ store.DoseFormStore = (*PostgresDoseFormStore)(nil)

// Create implements store.DoseFormStore.Create
func (s *PostgresDoseFormStore) Create(ctx context.Context, doseForm *domain.DoseForm) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := doseForm.Validate(); err != nil {
		log.Warn("dose form validation failed during create",
			slog.String("error", err.Error()),
			slog.String("dose_form_id", doseForm.ID.String()))
		return err
	}

	query := `
		INSERT INTO dose_forms (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		doseForm.ID,
		doseForm.Name,
		nullString(doseForm.Description),
		doseForm.CreatedAt,
		doseForm.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create dose form",
			slog.String("error", err.Error()),
			slog.String("dose_form_id", doseForm.ID.String()))
		return MapError(err)
	}

	log.Info("dose form created successfully",
		slog.String("dose_form_id", doseForm.ID.String()),
		slog.String("name", doseForm.Name))
	return nil
}

// GetByID implements store.DoseFormStore.GetByID
// Returns store.ErrDoseFormNotFound if the dose form does not exist.
func (s *PostgresDoseFormStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM dose_forms
		WHERE id = $1
	`

	var doseForm domain.DoseForm
	var description sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&doseForm.ID,
		&doseForm.Name,
		&description,
		&doseForm.CreatedAt,
		&doseForm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDoseFormNotFound
		}
		return nil, err
	}

	doseForm.Description = stringValue(description)
	return &doseForm, nil
}

// List implements store.DoseFormStore.List
func (s *PostgresDoseFormStore) List(ctx context.Context, offset, limit int) ([]*domain.DoseForm, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM dose_forms
		ORDER BY name, id
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to list dose forms", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	doseForms := make([]*domain.DoseForm, 0)
	for rows.Next() {
		var doseForm domain.DoseForm
		var description sql.NullString

		err := rows.Scan(
			&doseForm.ID,
			&doseForm.Name,
			&description,
			&doseForm.CreatedAt,
			&doseForm.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan dose form row", slog.String("error", err.Error()))
			return nil, err
		}

		doseForm.Description = stringValue(description)
		doseForms = append(doseForms, &doseForm)
	}

	return doseForms, rows.Err()
}
