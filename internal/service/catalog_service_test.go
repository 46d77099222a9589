package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/store"
)

func newCatalogService(t *testing.T) (CatalogService, *MockCategoryStore, *MockDoseFormStore, *MockATCCodeStore) {
	t.Helper()

	categoryStore := &MockCategoryStore{}
	doseFormStore := &MockDoseFormStore{}
	atcCodeStore := &MockATCCodeStore{}

	svc, err := NewCatalogService(categoryStore, doseFormStore, atcCodeStore, nil)
	require.NoError(t, err)

	return svc, categoryStore, doseFormStore, atcCodeStore
}

func TestNewCatalogService(t *testing.T) {
	t.Run("nil category store", func(t *testing.T) {
		_, err := NewCatalogService(nil, &MockDoseFormStore{}, &MockATCCodeStore{}, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("nil dose form store", func(t *testing.T) {
		_, err := NewCatalogService(&MockCategoryStore{}, nil, &MockATCCodeStore{}, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("nil atc code store", func(t *testing.T) {
		_, err := NewCatalogService(&MockCategoryStore{}, &MockDoseFormStore{}, nil, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCreateCategory_ParentChecked(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	parent, err := domain.NewCategory("Parent", "parent", "", nil)
	require.NoError(t, err)

	child, err := domain.NewCategory("Child", "child", "", &parent.ID)
	require.NoError(t, err)

	categoryStore.On("GetByID", mock.Anything, parent.ID).Return(parent, nil)
	categoryStore.On("Create", mock.Anything, child).Return(nil)

	err = svc.CreateCategory(context.Background(), child)
	assert.NoError(t, err)
	categoryStore.AssertExpectations(t)
}

func TestCreateCategory_ParentMissing(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	parentID := uuid.New()
	child, err := domain.NewCategory("Child", "child", "", &parentID)
	require.NoError(t, err)

	categoryStore.On("GetByID", mock.Anything, parentID).
		Return(nil, store.ErrCategoryNotFound)

	err = svc.CreateCategory(context.Background(), child)
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	categoryStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryTree(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	root, err := domain.NewCategory("Root", "root", "", nil)
	require.NoError(t, err)

	childA, err := domain.NewCategory("Child A", "child-a", "", &root.ID)
	require.NoError(t, err)

	childB, err := domain.NewCategory("Child B", "child-b", "", &root.ID)
	require.NoError(t, err)

	grandchild, err := domain.NewCategory("Grandchild", "grandchild", "", &childA.ID)
	require.NoError(t, err)

	categoryStore.On("ListAll", mock.Anything).
		Return([]*domain.Category{root, childA, childB, grandchild}, nil)

	roots, err := svc.CategoryTree(context.Background())
	require.NoError(t, err)

	require.Len(t, roots, 1)
	assert.Equal(t, root.ID, roots[0].ID)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, childA.ID, roots[0].Children[0].ID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, grandchild.ID, roots[0].Children[0].Children[0].ID)
	assert.Empty(t, roots[0].Children[1].Children)
}

func TestCategoryTree_OrphanSurfacesAsRoot(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	missingParent := uuid.New()
	orphan, err := domain.NewCategory("Orphan", "orphan", "", &missingParent)
	require.NoError(t, err)

	categoryStore.On("ListAll", mock.Anything).
		Return([]*domain.Category{orphan}, nil)

	roots, err := svc.CategoryTree(context.Background())
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, orphan.ID, roots[0].ID)
}

func TestUpdateCategory_SelfParentRejected(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	category, err := domain.NewCategory("Loop", "loop", "", nil)
	require.NoError(t, err)
	category.ParentID = &category.ID

	err = svc.UpdateCategory(context.Background(), category)
	assert.ErrorIs(t, err, domain.ErrCategorySelfParent)
	categoryStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteCategory_HasChildren(t *testing.T) {
	svc, categoryStore, _, _ := newCatalogService(t)

	id := uuid.New()
	categoryStore.On("Delete", mock.Anything, id).Return(store.ErrHasChildren)

	err := svc.DeleteCategory(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrHasChildren)
}

func TestCreateDoseForm(t *testing.T) {
	svc, _, doseFormStore, _ := newCatalogService(t)

	doseForm, err := domain.NewDoseForm("tablet", "")
	require.NoError(t, err)

	doseFormStore.On("Create", mock.Anything, doseForm).Return(nil)

	err = svc.CreateDoseForm(context.Background(), doseForm)
	assert.NoError(t, err)
	doseFormStore.AssertExpectations(t)
}

func TestCreateATCCode_LevelValidation(t *testing.T) {
	svc, _, _, atcCodeStore := newCatalogService(t)

	parent, err := domain.NewATCCode("Alimentary tract", "A", 1, "alimentary-tract", nil)
	require.NoError(t, err)

	t.Run("level one below parent is accepted", func(t *testing.T) {
		child, err := domain.NewATCCode("Acid disorders", "A02", 2, "acid-disorders", &parent.ID)
		require.NoError(t, err)

		atcCodeStore.On("GetByID", mock.Anything, parent.ID).Return(parent, nil)
		atcCodeStore.On("Create", mock.Anything, child).Return(nil)

		err = svc.CreateATCCode(context.Background(), child)
		assert.NoError(t, err)
	})

	t.Run("level gap is rejected", func(t *testing.T) {
		skipped, err := domain.NewATCCode("Too deep", "A02BC", 4, "too-deep", &parent.ID)
		require.NoError(t, err)

		atcCodeStore.On("GetByID", mock.Anything, parent.ID).Return(parent, nil)

		err = svc.CreateATCCode(context.Background(), skipped)
		assert.ErrorIs(t, err, domain.ErrValidation)
		atcCodeStore.AssertNotCalled(t, "Create", mock.Anything, skipped)
	})
}

func TestCreateATCCode_ParentMissing(t *testing.T) {
	svc, _, _, atcCodeStore := newCatalogService(t)

	parentID := uuid.New()
	child, err := domain.NewATCCode("Child", "A02", 2, "child", &parentID)
	require.NoError(t, err)

	atcCodeStore.On("GetByID", mock.Anything, parentID).
		Return(nil, store.ErrATCCodeNotFound)

	err = svc.CreateATCCode(context.Background(), child)
	assert.ErrorIs(t, err, store.ErrATCCodeNotFound)
	atcCodeStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteATCCode(t *testing.T) {
	svc, _, _, atcCodeStore := newCatalogService(t)

	id := uuid.New()
	atcCodeStore.On("SoftDelete", mock.Anything, id, "operator-1").Return(nil)

	err := svc.DeleteATCCode(context.Background(), id, "operator-1")
	assert.NoError(t, err)
	atcCodeStore.AssertExpectations(t)
}
