package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
	"github.com/imslabs/ims-api/internal/store"
)

// withRouteParam attaches a chi URL parameter to an existing request.
func withRouteParam(r *http.Request, param, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testMedicine(id uuid.UUID) *domain.Medicine {
	now := time.Now().UTC()
	return &domain.Medicine{
		ID:        id,
		Name:      "Paracetamol",
		Slug:      "paracetamol",
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMedicineCreate(t *testing.T) {
	categoryID := uuid.New()

	svc := new(MockMedicineService)
	svc.On("CreateMedicine", mock.Anything, mock.AnythingOfType("*domain.Medicine"),
		[]uuid.UUID{categoryID}, []uuid.UUID(nil)).Return(nil)
	svc.On("GetMedicine", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(testMedicine(uuid.New()), nil)

	handler := NewMedicineHandler(svc)

	req := postJSON(t, "/medicines", CreateMedicineRequest{
		Name:        "Paracetamol",
		Slug:        "paracetamol",
		CategoryIDs: []uuid.UUID{categoryID},
	})
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp MedicineResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Paracetamol", resp.Name)
	assert.Equal(t, "paracetamol", resp.Slug)
	assert.Equal(t, "active", resp.Status)

	svc.AssertExpectations(t)
}

func TestMedicineCreate_SlugConflict(t *testing.T) {
	svc := new(MockMedicineService)
	svc.On("CreateMedicine", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(store.ErrSlugExists)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Create(rr, postJSON(t, "/medicines", CreateMedicineRequest{
		Name: "Paracetamol",
		Slug: "paracetamol",
	}))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Slug already exists")
	svc.AssertNotCalled(t, "GetMedicine", mock.Anything, mock.Anything)
}

func TestMedicineCreate_MissingName(t *testing.T) {
	svc := new(MockMedicineService)
	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Create(rr, postJSON(t, "/medicines", CreateMedicineRequest{Slug: "paracetamol"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid Name: required field")
	svc.AssertNotCalled(t, "CreateMedicine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicineGet(t *testing.T) {
	id := uuid.New()

	svc := new(MockMedicineService)
	svc.On("GetMedicine", mock.Anything, id).Return(testMedicine(id), nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Get(rr, requestWithPathParam(t, "id", id.String()))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MedicineResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
}

func TestMedicineGet_NotFound(t *testing.T) {
	id := uuid.New()

	svc := new(MockMedicineService)
	svc.On("GetMedicine", mock.Anything, id).Return(nil, store.ErrMedicineNotFound)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Get(rr, requestWithPathParam(t, "id", id.String()))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Medicine not found")
}

func TestMedicineGet_InvalidID(t *testing.T) {
	svc := new(MockMedicineService)
	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Get(rr, requestWithPathParam(t, "id", "not-a-uuid"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "GetMedicine", mock.Anything, mock.Anything)
}

func TestMedicineGetBySlug(t *testing.T) {
	medicine := testMedicine(uuid.New())

	svc := new(MockMedicineService)
	svc.On("GetMedicineBySlug", mock.Anything, "paracetamol").Return(medicine, nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.GetBySlug(rr, requestWithPathParam(t, "slug", "paracetamol"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MedicineResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, medicine.ID, resp.ID)
}

func TestMedicineList(t *testing.T) {
	medicines := []*domain.Medicine{testMedicine(uuid.New()), testMedicine(uuid.New())}

	svc := new(MockMedicineService)
	svc.On("ListMedicines", mock.Anything, 0, 100).Return(medicines, nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/medicines", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ListResponse[MedicineResponse]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, 100, resp.Limit)
}

func TestMedicineList_Pagination(t *testing.T) {
	svc := new(MockMedicineService)
	svc.On("ListMedicines", mock.Anything, 20, 10).Return([]*domain.Medicine{}, nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.List(rr, httptest.NewRequest(http.MethodGet, "/medicines?offset=20&limit=10", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestMedicineUpdate(t *testing.T) {
	id := uuid.New()
	atcCodeID := uuid.New()
	existing := testMedicine(id)

	svc := new(MockMedicineService)
	svc.On("GetMedicine", mock.Anything, id).Return(existing, nil)
	svc.On("UpdateMedicine", mock.Anything, mock.MatchedBy(func(m *domain.Medicine) bool {
		return m.ID == id && m.Name == "Acetaminophen" && m.Status == domain.StatusInactive
	}), service.AssociationChanges{
		AddATCCodeIDs: []uuid.UUID{atcCodeID},
	}).Return(nil)

	handler := NewMedicineHandler(svc)

	name := "Acetaminophen"
	status := "inactive"
	req := withRouteParam(postJSON(t, "/medicines/"+id.String(), UpdateMedicineRequest{
		Name:          &name,
		Status:        &status,
		AddATCCodeIDs: []uuid.UUID{atcCodeID},
	}), "id", id.String())

	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestMedicineUpdate_NotFound(t *testing.T) {
	id := uuid.New()

	svc := new(MockMedicineService)
	svc.On("GetMedicine", mock.Anything, id).Return(nil, store.ErrMedicineNotFound)

	handler := NewMedicineHandler(svc)

	name := "Acetaminophen"
	req := withRouteParam(postJSON(t, "/medicines/"+id.String(), UpdateMedicineRequest{
		Name: &name,
	}), "id", id.String())

	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertNotCalled(t, "UpdateMedicine", mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicineDelete(t *testing.T) {
	id := uuid.New()

	svc := new(MockMedicineService)
	svc.On("DeleteMedicine", mock.Anything, id).Return(nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.Delete(rr, requestWithPathParam(t, "id", id.String()))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}

func TestMedicineListStrengths(t *testing.T) {
	medicineID := uuid.New()
	strengths := []*domain.Strength{
		{
			ID:                  uuid.New(),
			MedicineID:          medicineID,
			DoseFormID:          uuid.New(),
			ConcentrationAmount: 500,
			ConcentrationUnit:   "mg",
		},
	}

	svc := new(MockMedicineService)
	svc.On("ListStrengths", mock.Anything, medicineID).Return(strengths, nil)

	handler := NewMedicineHandler(svc)

	rr := httptest.NewRecorder()
	handler.ListStrengths(rr, requestWithPathParam(t, "id", medicineID.String()))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []StrengthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, medicineID, resp[0].MedicineID)
	assert.Equal(t, 500.0, resp[0].ConcentrationAmount)
}

func TestMedicineAddStrength(t *testing.T) {
	medicineID := uuid.New()
	doseFormID := uuid.New()

	svc := new(MockMedicineService)
	svc.On("AddStrength", mock.Anything, mock.MatchedBy(func(s *domain.Strength) bool {
		return s.MedicineID == medicineID && s.DoseFormID == doseFormID &&
			s.ConcentrationAmount == 500 && s.ChemicalForm == "hydrochloride"
	})).Return(nil)

	handler := NewMedicineHandler(svc)

	req := withRouteParam(postJSON(t, "/medicines/"+medicineID.String()+"/strengths", CreateStrengthRequest{
		DoseFormID:          doseFormID,
		ConcentrationAmount: 500,
		ConcentrationUnit:   "mg",
		ChemicalForm:        "hydrochloride",
	}), "id", medicineID.String())

	rr := httptest.NewRecorder()
	handler.AddStrength(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp StrengthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, medicineID, resp.MedicineID)
	assert.Equal(t, "hydrochloride", resp.ChemicalForm)

	svc.AssertExpectations(t)
}

func TestMedicineAddStrength_Validation(t *testing.T) {
	medicineID := uuid.New()

	svc := new(MockMedicineService)
	handler := NewMedicineHandler(svc)

	req := withRouteParam(postJSON(t, "/medicines/"+medicineID.String()+"/strengths", CreateStrengthRequest{
		DoseFormID:          uuid.New(),
		ConcentrationAmount: 0,
		ConcentrationUnit:   "mg",
	}), "id", medicineID.String())

	rr := httptest.NewRecorder()
	handler.AddStrength(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "AddStrength", mock.Anything, mock.Anything)
}

func TestMedicineAddStrength_Duplicate(t *testing.T) {
	medicineID := uuid.New()

	svc := new(MockMedicineService)
	svc.On("AddStrength", mock.Anything, mock.Anything).Return(store.ErrStrengthExists)

	handler := NewMedicineHandler(svc)

	req := withRouteParam(postJSON(t, "/medicines/"+medicineID.String()+"/strengths", CreateStrengthRequest{
		DoseFormID:          uuid.New(),
		ConcentrationAmount: 500,
		ConcentrationUnit:   "mg",
	}), "id", medicineID.String())

	rr := httptest.NewRecorder()
	handler.AddStrength(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "identical strength already exists")
}
