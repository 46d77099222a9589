package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
)

// MedicineHandler handles medicine API requests, including the strengths
// subresource.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler with the given dependencies.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{
		medicineService: medicineService,
	}
}

// Create handles POST /medicines.
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMedicineRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	medicine, err := domain.NewMedicine(req.Name, req.Slug, req.GenericName, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.medicineService.CreateMedicine(r.Context(), medicine, req.CategoryIDs, req.ATCCodeIDs); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	created, err := h.medicineService.GetMedicine(r.Context(), medicine.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toMedicineResponse(created))
}

// List handles GET /medicines.
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	medicines, err := h.medicineService.ListMedicines(r.Context(), offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		items = append(items, toMedicineResponse(m))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse[MedicineResponse]{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Count:  len(items),
	})
}

// Get handles GET /medicines/{id}.
func (h *MedicineHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	medicine, err := h.medicineService.GetMedicine(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toMedicineResponse(medicine))
}

// GetBySlug handles GET /medicines/slug/{slug}.
func (h *MedicineHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Slug is required")
		return
	}

	medicine, err := h.medicineService.GetMedicineBySlug(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toMedicineResponse(medicine))
}

// Update handles PUT /medicines/{id}. Scalar field changes and the
// add/remove association lists are applied together in one transaction.
func (h *MedicineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateMedicineRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	medicine, err := h.medicineService.GetMedicine(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Slug != nil {
		medicine.Slug = *req.Slug
	}
	if req.GenericName != nil {
		medicine.GenericName = *req.GenericName
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Status != nil {
		medicine.Status = domain.Status(*req.Status)
	}

	changes := service.AssociationChanges{
		AddCategoryIDs:    req.AddCategoryIDs,
		RemoveCategoryIDs: req.RemoveCategoryIDs,
		AddATCCodeIDs:     req.AddATCCodeIDs,
		RemoveATCCodeIDs:  req.RemoveATCCodeIDs,
	}

	if err := h.medicineService.UpdateMedicine(r.Context(), medicine, changes); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	updated, err := h.medicineService.GetMedicine(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toMedicineResponse(updated))
}

// Delete handles DELETE /medicines/{id}.
func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.medicineService.DeleteMedicine(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListStrengths handles GET /medicines/{id}/strengths.
func (h *MedicineHandler) ListStrengths(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	strengths, err := h.medicineService.ListStrengths(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]StrengthResponse, 0, len(strengths))
	for _, s := range strengths {
		items = append(items, toStrengthResponse(s))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// AddStrength handles POST /medicines/{id}/strengths.
func (h *MedicineHandler) AddStrength(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CreateStrengthRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	strength, err := domain.NewStrength(id, req.DoseFormID, req.ConcentrationAmount, req.ConcentrationUnit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	strength.VolumeAmount = req.VolumeAmount
	strength.VolumeUnit = req.VolumeUnit
	strength.ChemicalForm = req.ChemicalForm
	strength.Info = req.Info
	strength.Description = req.Description

	if err := h.medicineService.AddStrength(r.Context(), strength); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toStrengthResponse(strength))
}
