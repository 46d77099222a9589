package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
)

// MockMedicineService mocks the service.MedicineService interface for
// handler tests.
type MockMedicineService struct {
	mock.Mock
}

func (m *MockMedicineService) CreateMedicine(
	ctx context.Context,
	medicine *domain.Medicine,
	categoryIDs, atcCodeIDs []uuid.UUID,
) error {
	args := m.Called(ctx, medicine, categoryIDs, atcCodeIDs)
	return args.Error(0)
}

func (m *MockMedicineService) GetMedicine(ctx context.Context, id uuid.UUID) (*domain.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineService) GetMedicineBySlug(ctx context.Context, slug string) (*domain.Medicine, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineService) ListMedicines(ctx context.Context, offset, limit int) ([]*domain.Medicine, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Medicine), args.Error(1)
}

func (m *MockMedicineService) UpdateMedicine(ctx context.Context, medicine *domain.Medicine, changes service.AssociationChanges) error {
	args := m.Called(ctx, medicine, changes)
	return args.Error(0)
}

func (m *MockMedicineService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicineService) AddStrength(ctx context.Context, strength *domain.Strength) error {
	args := m.Called(ctx, strength)
	return args.Error(0)
}

func (m *MockMedicineService) GetStrength(ctx context.Context, id uuid.UUID) (*domain.Strength, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Strength), args.Error(1)
}

func (m *MockMedicineService) ListStrengths(ctx context.Context, medicineID uuid.UUID) ([]*domain.Strength, error) {
	args := m.Called(ctx, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Strength), args.Error(1)
}

func (m *MockMedicineService) DeleteStrength(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogService mocks the service.CatalogService interface for
// handler tests.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCatalogService) CategoryTree(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateDoseForm(ctx context.Context, doseForm *domain.DoseForm) error {
	args := m.Called(ctx, doseForm)
	return args.Error(0)
}

func (m *MockCatalogService) GetDoseForm(ctx context.Context, id uuid.UUID) (*domain.DoseForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DoseForm), args.Error(1)
}

func (m *MockCatalogService) ListDoseForms(ctx context.Context, offset, limit int) ([]*domain.DoseForm, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DoseForm), args.Error(1)
}

func (m *MockCatalogService) CreateATCCode(ctx context.Context, atcCode *domain.ATCCode) error {
	args := m.Called(ctx, atcCode)
	return args.Error(0)
}

func (m *MockCatalogService) GetATCCode(ctx context.Context, id uuid.UUID) (*domain.ATCCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockCatalogService) GetATCCodeByCode(ctx context.Context, code string) (*domain.ATCCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockCatalogService) GetATCCodeBySlug(ctx context.Context, slug string) (*domain.ATCCode, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ATCCode), args.Error(1)
}

func (m *MockCatalogService) ListATCCodes(ctx context.Context, offset, limit int) ([]*domain.ATCCode, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ATCCode), args.Error(1)
}

func (m *MockCatalogService) DeleteATCCode(ctx context.Context, id uuid.UUID, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

var (
	_ service.MedicineService = (*MockMedicineService)(nil)
	_ service.CatalogService  = (*MockCatalogService)(nil)
)
