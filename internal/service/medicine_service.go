package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/platform/logger"
	"github.com/imslabs/ims-api/internal/store"
)

// AssociationChanges lists the category and ATC code links to add or remove
// alongside a medicine update. Empty slices are no-ops.
type AssociationChanges struct {
	AddCategoryIDs    []uuid.UUID
	RemoveCategoryIDs []uuid.UUID
	AddATCCodeIDs     []uuid.UUID
	RemoveATCCodeIDs  []uuid.UUID
}

// MedicineService provides medicine-related operations, including the
// strength subresource and category/ATC code associations.
type MedicineService interface {
	// CreateMedicine creates a medicine and links the given categories and
	// ATC codes in a single transaction.
	CreateMedicine(
		ctx context.Context,
		medicine *domain.Medicine,
		categoryIDs, atcCodeIDs []uuid.UUID,
	) error

	// GetMedicine retrieves a medicine by ID with its categories, strengths,
	// and ATC codes populated.
	GetMedicine(ctx context.Context, id uuid.UUID) (*domain.Medicine, error)

	// GetMedicineBySlug retrieves a medicine by slug with its associations
	// populated.
	GetMedicineBySlug(ctx context.Context, slug string) (*domain.Medicine, error)

	// ListMedicines retrieves a page of medicines without associations.
	ListMedicines(ctx context.Context, offset, limit int) ([]*domain.Medicine, error)

	// UpdateMedicine persists changes to a medicine's scalar fields and
	// applies the requested association changes in a single transaction.
	UpdateMedicine(ctx context.Context, medicine *domain.Medicine, changes AssociationChanges) error

	// DeleteMedicine removes a medicine. Strengths and association links are
	// removed with it.
	DeleteMedicine(ctx context.Context, id uuid.UUID) error

	// AddStrength creates a new strength variant for a medicine.
	AddStrength(ctx context.Context, strength *domain.Strength) error

	// GetStrength retrieves a single strength by ID.
	GetStrength(ctx context.Context, id uuid.UUID) (*domain.Strength, error)

	// ListStrengths retrieves the live strengths of a medicine.
	// Returns store.ErrMedicineNotFound if the medicine does not exist.
	ListStrengths(ctx context.Context, medicineID uuid.UUID) ([]*domain.Strength, error)

	// DeleteStrength soft-deletes a strength. The row is purged later by the
	// maintenance job.
	DeleteStrength(ctx context.Context, id uuid.UUID) error
}

// medicineServiceImpl implements the MedicineService interface
type medicineServiceImpl struct {
	db            *sql.DB
	medicineStore store.MedicineStore
	strengthStore store.StrengthStore
	logger        *slog.Logger
}

// NewMedicineService creates a new MedicineService.
// It returns an error if any of the required dependencies are nil.
func NewMedicineService(
	db *sql.DB,
	medicineStore store.MedicineStore,
	strengthStore store.StrengthStore,
	logger *slog.Logger,
) (MedicineService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if medicineStore == nil {
		return nil, domain.NewValidationError("medicineStore", "cannot be nil", domain.ErrValidation)
	}
	if strengthStore == nil {
		return nil, domain.NewValidationError("strengthStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &medicineServiceImpl{
		db:            db,
		medicineStore: medicineStore,
		strengthStore: strengthStore,
		logger:        logger.With(slog.String("component", "medicine_service")),
	}, nil
}

// CreateMedicine implements MedicineService.CreateMedicine
// The medicine row and its association links are written in one transaction
// so a failed link insert leaves no partial medicine behind.
func (s *medicineServiceImpl) CreateMedicine(
	ctx context.Context,
	medicine *domain.Medicine,
	categoryIDs, atcCodeIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("creating medicine",
		slog.String("medicine_id", medicine.ID.String()),
		slog.Int("category_count", len(categoryIDs)),
		slog.Int("atc_code_count", len(atcCodeIDs)))

	return store.RunInTransaction(
		ctx,
		s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			txStore := s.medicineStore.WithTx(tx)

			if err := txStore.Create(ctx, medicine); err != nil {
				return NewMedicineServiceError("create_medicine", "failed to save medicine", err)
			}

			if len(categoryIDs) > 0 {
				if err := txStore.AddCategories(ctx, medicine.ID, categoryIDs); err != nil {
					return NewMedicineServiceError("create_medicine", "failed to link categories", err)
				}
			}

			if len(atcCodeIDs) > 0 {
				if err := txStore.AddATCCodes(ctx, medicine.ID, atcCodeIDs); err != nil {
					return NewMedicineServiceError("create_medicine", "failed to link atc codes", err)
				}
			}

			return nil
		},
	)
}

// GetMedicine implements MedicineService.GetMedicine
func (s *medicineServiceImpl) GetMedicine(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	medicine, err := s.medicineStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.loadAssociations(ctx, medicine)
}

// GetMedicineBySlug implements MedicineService.GetMedicineBySlug
func (s *medicineServiceImpl) GetMedicineBySlug(ctx context.Context, slug string) (*domain.Medicine, error) {
	medicine, err := s.medicineStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.loadAssociations(ctx, medicine)
}

func (s *medicineServiceImpl) loadAssociations(
	ctx context.Context,
	medicine *domain.Medicine,
) (*domain.Medicine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	categories, err := s.medicineStore.GetCategories(ctx, medicine.ID)
	if err != nil {
		log.Error("failed to load medicine categories",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return nil, NewMedicineServiceError("get_medicine", "failed to load categories", err)
	}

	strengths, err := s.strengthStore.ListByMedicine(ctx, medicine.ID)
	if err != nil {
		log.Error("failed to load medicine strengths",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return nil, NewMedicineServiceError("get_medicine", "failed to load strengths", err)
	}

	atcCodes, err := s.medicineStore.GetATCCodes(ctx, medicine.ID)
	if err != nil {
		log.Error("failed to load medicine atc codes",
			slog.String("error", err.Error()),
			slog.String("medicine_id", medicine.ID.String()))
		return nil, NewMedicineServiceError("get_medicine", "failed to load atc codes", err)
	}

	medicine.Categories = categories
	medicine.Strengths = strengths
	medicine.ATCCodes = atcCodes
	return medicine, nil
}

// ListMedicines implements MedicineService.ListMedicines
func (s *medicineServiceImpl) ListMedicines(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Medicine, error) {
	return s.medicineStore.List(ctx, offset, limit)
}

// UpdateMedicine implements MedicineService.UpdateMedicine
// The scalar update and every association change share one transaction so a
// failed link write leaves the medicine row untouched. The update statement
// itself reports a missing medicine, so no separate existence check is needed.
func (s *medicineServiceImpl) UpdateMedicine(
	ctx context.Context,
	medicine *domain.Medicine,
	changes AssociationChanges,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("updating medicine",
		slog.String("medicine_id", medicine.ID.String()))

	return store.RunInTransaction(
		ctx,
		s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			txStore := s.medicineStore.WithTx(tx)

			if err := txStore.Update(ctx, medicine); err != nil {
				return NewMedicineServiceError("update_medicine", "failed to save medicine", err)
			}

			if len(changes.AddCategoryIDs) > 0 {
				if err := txStore.AddCategories(ctx, medicine.ID, changes.AddCategoryIDs); err != nil {
					return NewMedicineServiceError("update_medicine", "failed to link categories", err)
				}
			}

			if len(changes.RemoveCategoryIDs) > 0 {
				if err := txStore.RemoveCategories(ctx, medicine.ID, changes.RemoveCategoryIDs); err != nil {
					return NewMedicineServiceError("update_medicine", "failed to unlink categories", err)
				}
			}

			if len(changes.AddATCCodeIDs) > 0 {
				if err := txStore.AddATCCodes(ctx, medicine.ID, changes.AddATCCodeIDs); err != nil {
					return NewMedicineServiceError("update_medicine", "failed to link atc codes", err)
				}
			}

			if len(changes.RemoveATCCodeIDs) > 0 {
				if err := txStore.RemoveATCCodes(ctx, medicine.ID, changes.RemoveATCCodeIDs); err != nil {
					return NewMedicineServiceError("update_medicine", "failed to unlink atc codes", err)
				}
			}

			return nil
		},
	)
}

// DeleteMedicine implements MedicineService.DeleteMedicine
func (s *medicineServiceImpl) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	return s.medicineStore.Delete(ctx, id)
}

// AddStrength implements MedicineService.AddStrength
func (s *medicineServiceImpl) AddStrength(ctx context.Context, strength *domain.Strength) error {
	if _, err := s.medicineStore.GetByID(ctx, strength.MedicineID); err != nil {
		return err
	}
	return s.strengthStore.Create(ctx, strength)
}

// GetStrength implements MedicineService.GetStrength
func (s *medicineServiceImpl) GetStrength(ctx context.Context, id uuid.UUID) (*domain.Strength, error) {
	return s.strengthStore.GetByID(ctx, id)
}

// ListStrengths implements MedicineService.ListStrengths
func (s *medicineServiceImpl) ListStrengths(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.Strength, error) {
	if _, err := s.medicineStore.GetByID(ctx, medicineID); err != nil {
		return nil, err
	}
	return s.strengthStore.ListByMedicine(ctx, medicineID)
}

// DeleteStrength implements MedicineService.DeleteStrength
func (s *medicineServiceImpl) DeleteStrength(ctx context.Context, id uuid.UUID) error {
	return s.strengthStore.SoftDelete(ctx, id)
}
