package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imslabs/ims-api/internal/store"
)

func TestMedicineServiceError(t *testing.T) {
	wrapped := NewMedicineServiceError("create_medicine", "failed to save medicine", store.ErrSlugExists)

	assert.Contains(t, wrapped.Error(), "create_medicine")
	assert.Contains(t, wrapped.Error(), "failed to save medicine")

	// Sentinels must stay matchable through the wrapper.
	assert.ErrorIs(t, wrapped, store.ErrSlugExists)
	assert.ErrorIs(t, wrapped, store.ErrDuplicate)

	var svcErr *MedicineServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, "create_medicine", svcErr.Operation)
}

func TestMedicineServiceError_NoWrappedError(t *testing.T) {
	err := NewMedicineServiceError("get_medicine", "something odd", nil)

	assert.Contains(t, err.Error(), "something odd")
	assert.Nil(t, err.Unwrap())
}

func TestCatalogServiceError(t *testing.T) {
	wrapped := NewCatalogServiceError("category_tree", "failed to load categories", store.ErrNotFound)

	assert.Contains(t, wrapped.Error(), "category_tree")
	assert.ErrorIs(t, wrapped, store.ErrNotFound)

	var svcErr *CatalogServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, "failed to load categories", svcErr.Message)
}
