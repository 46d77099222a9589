package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/store"
)

// MockMedicineStore mocks the store.MedicineStore interface
type MockMedicineStore struct {
	mock.Mock
}

func (m *MockMedicineStore) Create(ctx context.Context, medicine *domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineStore) GetBySlug(ctx context.Context, slug string) (*domain.Medicine, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineStore) List(ctx context.Context, offset, limit int) ([]*domain.Medicine, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Medicine), args.Error(1)
}

func (m *MockMedicineStore) Update(ctx context.Context, medicine *domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicineStore) AddCategories(
	ctx context.Context,
	medicineID uuid.UUID,
	categoryIDs []uuid.UUID,
) error {
	args := m.Called(ctx, medicineID, categoryIDs)
	return args.Error(0)
}

func (m *MockMedicineStore) RemoveCategories(
	ctx context.Context,
	medicineID uuid.UUID,
	categoryIDs []uuid.UUID,
) error {
	args := m.Called(ctx, medicineID, categoryIDs)
	return args.Error(0)
}

func (m *MockMedicineStore) AddATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
	atcCodeIDs []uuid.UUID,
) error {
	args := m.Called(ctx, medicineID, atcCodeIDs)
	return args.Error(0)
}

func (m *MockMedicineStore) RemoveATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
	atcCodeIDs []uuid.UUID,
) error {
	args := m.Called(ctx, medicineID, atcCodeIDs)
	return args.Error(0)
}

func (m *MockMedicineStore) GetCategories(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.Category, error) {
	args := m.Called(ctx, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockMedicineStore) GetATCCodes(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.ATCCode, error) {
	args := m.Called(ctx, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ATCCode), args.Error(1)
}

// WithTx returns the mock itself so transactional paths can be asserted
// without a live transaction.
func (m *MockMedicineStore) WithTx(tx *sql.Tx) store.MedicineStore {
	return m
}

// MockStrengthStore mocks the store.StrengthStore interface
type MockStrengthStore struct {
	mock.Mock
}

func (m *MockStrengthStore) Create(ctx context.Context, strength *domain.Strength) error {
	args := m.Called(ctx, strength)
	return args.Error(0)
}

func (m *MockStrengthStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Strength, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Strength), args.Error(1)
}

func (m *MockStrengthStore) ListByMedicine(
	ctx context.Context,
	medicineID uuid.UUID,
) ([]*domain.Strength, error) {
	args := m.Called(ctx, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Strength), args.Error(1)
}

func (m *MockStrengthStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStrengthStore) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryStore mocks the store.CategoryStore interface
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) ListAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDoseFormStore mocks the store.DoseFormStore interface
type MockDoseFormStore struct {
	mock.Mock
}

func (m *MockDoseFormStore) Create(ctx context.Context, doseForm *domain.DoseForm) error {
	args := m.Called(ctx, doseForm)
	return args.Error(0)
}

func (m *MockDoseFormStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DoseForm), args.Error(1)
}

func (m *MockDoseFormStore) List(ctx context.Context, offset, limit int) ([]*domain.DoseForm, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DoseForm), args.Error(1)
}

// MockATCCodeStore mocks the store.ATCCodeStore interface
type MockATCCodeStore struct {
	mock.Mock
}

func (m *MockATCCodeStore) Create(ctx context.Context, atcCode *domain.ATCCode) error {
	args := m.Called(ctx, atcCode)
	return args.Error(0)
}

func (m *MockATCCodeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockATCCodeStore) GetByCode(ctx context.Context, code string) (*domain.ATCCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockATCCodeStore) GetBySlug(ctx context.Context, slug string) (*domain.ATCCode, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockATCCodeStore) List(ctx context.Context, offset, limit int) ([]*domain.ATCCode, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ATCCode), args.Error(1)
}

func (m *MockATCCodeStore) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *MockATCCodeStore) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Interface conformance checks for the mocks.
var (
	_ store.MedicineStore = (*MockMedicineStore)(nil)
	_ store.StrengthStore = (*MockStrengthStore)(nil)
	_ store.CategoryStore = (*MockCategoryStore)(nil)
	_ store.DoseFormStore = (*MockDoseFormStore)(nil)
	_ store.ATCCodeStore  = (*MockATCCodeStore)(nil)
)
