package api

import (
	"net/http"

	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
)

// DoseFormHandler handles dose form API requests.
type DoseFormHandler struct {
	catalogService service.CatalogService
}

// NewDoseFormHandler creates a new DoseFormHandler with the given dependencies.
func NewDoseFormHandler(catalogService service.CatalogService) *DoseFormHandler {
	return &DoseFormHandler{
		catalogService: catalogService,
	}
}

// Create handles POST /dose-forms.
func (h *DoseFormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDoseFormRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	doseForm, err := domain.NewDoseForm(req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.catalogService.CreateDoseForm(r.Context(), doseForm); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toDoseFormResponse(doseForm))
}

// List handles GET /dose-forms.
func (h *DoseFormHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	doseForms, err := h.catalogService.ListDoseForms(r.Context(), offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]DoseFormResponse, 0, len(doseForms))
	for _, d := range doseForms {
		items = append(items, toDoseFormResponse(d))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse[DoseFormResponse]{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Count:  len(items),
	})
}

// Get handles GET /dose-forms/{id}.
func (h *DoseFormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	doseForm, err := h.catalogService.GetDoseForm(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toDoseFormResponse(doseForm))
}
