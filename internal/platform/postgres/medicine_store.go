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

// PostgresMedicineStore implements the store.MedicineStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMedicineStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMedicineStore creates a new PostgreSQL implementation of the
// MedicineStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresMedicineStore(db store.DBTX, logger *slog.Logger) *PostgresMedicineStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMedicineStore{
		db:     db,
		logger: logger.With(slog.String("component", "medicine_store")),
	}
}

// Ensure PostgresMedicineStore implements store.MedicineStore interface
var _ store.MedicineStore = (*PostgresMedicineStore)(nil)

// WithTx implements store.MedicineStore.WithTx
func (s *PostgresMedicineStore) WithTx(tx *sql.Tx) store.MedicineStore {
	return &PostgresMedicineStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.MedicineStore.Create
// It saves a new medicine to the database, handling domain validation.
// Returns store.ErrSlugExists if the slug is already taken.
func (s *PostgresMedicineStore) Create(ctx context.Context, medicine *domain.Medicine) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := medicine.Validate(); err != nil {
		log.Warn("medicine validation failed during create",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return err
	}

	query := `
		INSERT INTO medicines (id, name, slug, generic_name, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		medicine.ID,
		medicine.Name,
		medicine.Slug,
		nullString(medicine.GenericName),
		medicine.Status,
		nullString(medicine.Description),
		medicine.CreatedAt,
		medicine.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate slug during medicine creation",
				slog.String("slug", medicine.Slug))
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		log.Error("failed to create medicine",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return MapError(err)
	}

	log.Info("medicine created successfully",
		slog.String("medicine_id", medicine.ID.String()),
		slog.String("slug", medicine.Slug))
	return nil
}

const medicineColumns = "id, name, slug, generic_name, status, description, created_at, updated_at"

// scanMedicine scans a single medicine row from the given scanner.
func scanMedicine(row interface{ Scan(dest ...any) error }) (*domain.Medicine, error) {
	var medicine domain.Medicine
	var genericName, description sql.NullString

	err := row.Scan(
		&medicine.ID,
		&medicine.Name,
		&medicine.Slug,
		&genericName,
		&medicine.Status,
		&description,
		&medicine.CreatedAt,
		&medicine.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	medicine.GenericName = stringValue(genericName)
	medicine.Description = stringValue(description)
	return &medicine, nil
}

// GetByID implements store.MedicineStore.GetByID
// Returns store.ErrMedicineNotFound if the medicine does not exist.
func (s *PostgresMedicineStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf("SELECT %s FROM medicines WHERE id = $1", medicineColumns)

	medicine, err := scanMedicine(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("medicine not found", slog.String("medicine_id", id.String()))
			return nil, store.ErrMedicineNotFound
		}
		log.Error("failed to get medicine by ID",
			slog.String("error", err.Error()),
			slog.String("medicine_id", id.String()))
		return nil, err
	}

	return medicine, nil
}

// GetBySlug implements store.MedicineStore.GetBySlug
// Returns store.ErrMedicineNotFound if the medicine does not exist.
func (s *PostgresMedicineStore) GetBySlug(ctx context.Context, slug string) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf("SELECT %s FROM medicines WHERE slug = $1", medicineColumns)

	medicine, err := scanMedicine(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("medicine not found", slog.String("slug", slug))
			return nil, store.ErrMedicineNotFound
		}
		log.Error("failed to get medicine by slug",
			slog.String("error", err.Error()),
			slog.String("slug", slug))
		return nil, err
	}

	return medicine, nil
}

// List implements store.MedicineStore.List
func (s *PostgresMedicineStore) List(ctx context.Context, offset, limit int) ([]*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(
		"SELECT %s FROM medicines ORDER BY name, id OFFSET $1 LIMIT $2",
		medicineColumns,
	)

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to list medicines", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	medicines := make([]*domain.Medicine, 0)
	for rows.Next() {
		medicine, err := scanMedicine(rows)
		if err != nil {
			log.Error("failed to scan medicine row", slog.String("error", err.Error()))
			return nil, err
		}
		medicines = append(medicines, medicine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return medicines, nil
}

// Update implements store.MedicineStore.Update
// Returns store.ErrMedicineNotFound if the medicine does not exist and
// store.ErrSlugExists on slug collision.
func (s *PostgresMedicineStore) Update(ctx context.Context, medicine *domain.Medicine) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := medicine.Validate(); err != nil {
		log.Warn("medicine validation failed during update",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return err
	}

	medicine.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE medicines
		SET name = $1, slug = $2, generic_name = $3, status = $4, description = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		medicine.Name,
		medicine.Slug,
		nullString(medicine.GenericName),
		medicine.Status,
		nullString(medicine.Description),
		medicine.UpdatedAt,
		medicine.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrSlugExists, err)
		}
		log.Error("failed to update medicine",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrMedicineNotFound); err != nil {
		return err
	}

	log.Info("medicine updated successfully",
		slog.String("medicine_id", medicine.ID.String()))
	return nil
}

// Delete implements store.MedicineStore.Delete
// Returns store.ErrMedicineNotFound if the medicine does not exist.
// Strengths and pivot rows are removed by ON DELETE CASCADE.
func (s *PostgresMedicineStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM medicines WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete medicine",
			slog.String("error", err.Error()),
			slog.String("medicine_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrMedicineNotFound); err != nil {
		return err
	}

	log.Info("medicine deleted successfully", slog.String("medicine_id", id.String()))
	return nil
}

// AddCategories implements store.MedicineStore.AddCategories
// Existing links are skipped via ON CONFLICT DO NOTHING.
func (s *PostgresMedicineStore) AddCategories(
	ctx context.Context,
	medicineID uuid.UUID,
	categoryIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO medicine_category (medicine_id, category_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (medicine_id, category_id) DO NOTHING
	`
	now := time.Now().UTC()
	for _, categoryID := range categoryIDs {
		if _, err := s.db.ExecContext(ctx, query, medicineID, categoryID, now); err != nil {
			log.Warn("failed to link category to medicine",
				slog.String("error", err.Error()),
				slog.String("medicine_id", medicineID.String()),
				slog.String("category_id", categoryID.String()))
			return MapError(err)
		}
	}

	return nil
}

// RemoveCategories implements store.MedicineStore.RemoveCategories
func (s *PostgresMedicineStore) RemoveCategories(
	ctx context.Context,
	medicineID uuid.UUID,
	categoryIDs []uuid.UUID,
) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	query := `
		DELETE FROM medicine_category
		WHERE medicine_id = $1 AND category_id = ANY($2::uuid[])
	`
	if _, err := s.db.ExecContext(ctx, query, medicineID, uuidSlice(categoryIDs)); err != nil {
		return MapError(err)
	}

	return nil
}

// AddATCCodes implements store.MedicineStore.AddATCCodes
// Existing links are skipped via ON CONFLICT DO NOTHING.
func (s *PostgresMedicineStore) AddATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
	atcCodeIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO medicine_atc_code (medicine_id, atc_code_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (medicine_id, atc_code_id) DO NOTHING
	`
	now := time.Now().UTC()
	for _, atcCodeID := range atcCodeIDs {
		if _, err := s.db.ExecContext(ctx, query, medicineID, atcCodeID, now); err != nil {
			log.Warn("failed to link ATC code to medicine",
				slog.String("error", err.Error()),
				slog.String("medicine_id", medicineID.String()),
				slog.String("atc_code_id", atcCodeID.String()))
			return MapError(err)
		}
	}

	return nil
}

// RemoveATCCodes implements store.MedicineStore.RemoveATCCodes
func (s *PostgresMedicineStore) RemoveATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
	atcCodeIDs []uuid.UUID,
) error {
	if len(atcCodeIDs) == 0 {
		return nil
	}

	query := `
		DELETE FROM medicine_atc_code
		WHERE medicine_id = $1 AND atc_code_id = ANY($2::uuid[])
	`
	if _, err := s.db.ExecContext(ctx, query, medicineID, uuidSlice(atcCodeIDs)); err != nil {
		return MapError(err)
	}

	return nil
}

// GetCategories implements store.MedicineStore.GetCategories
func (s *PostgresMedicineStore) GetCategories(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT c.id, c.parent_id, c.name, c.slug, c.description, c.status, c.created_at, c.updated_at
		FROM categories c
		JOIN medicine_category mc ON mc.category_id = c.id
		WHERE mc.medicine_id = $1
		ORDER BY c.name
	`
	rows, err := s.db.QueryContext(ctx, query, medicineID)
	if err != nil {
		log.Error("failed to get medicine categories",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicineID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// GetATCCodes implements store.MedicineStore.GetATCCodes
// Soft-deleted codes are excluded.
func (s *PostgresMedicineStore) GetATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.ATCCode, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.id, a.parent_id, a.name, a.code, a.level, a.slug, a.status, a.description,
		       a.created_by, a.updated_by, a.deleted_by, a.created_at, a.updated_at, a.deleted_at
		FROM atc_codes a
		JOIN medicine_atc_code mac ON mac.atc_code_id = a.id
		WHERE mac.medicine_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.code
	`
	rows, err := s.db.QueryContext(ctx, query, medicineID)
	if err != nil {
		log.Error("failed to get medicine ATC codes",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicineID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	atcCodes := make([]*domain.ATCCode, 0)
	for rows.Next() {
		atcCode, err := scanATCCode(rows)
		if err != nil {
			return nil, err
		}
		atcCodes = append(atcCodes, atcCode)
	}

	return atcCodes, rows.Err()
}

// uuidSlice converts UUIDs to their string forms for use with ANY($n).
// The pq-style array binding works with a []string through the pgx stdlib
// driver without registering custom types.
func uuidSlice(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
