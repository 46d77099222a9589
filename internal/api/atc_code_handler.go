package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/imslabs/ims-api/internal/api/middleware"
	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
)

// ATCCodeHandler handles ATC classification code API requests.
type ATCCodeHandler struct {
	catalogService service.CatalogService
}

// NewATCCodeHandler creates a new ATCCodeHandler with the given dependencies.
func NewATCCodeHandler(catalogService service.CatalogService) *ATCCodeHandler {
	return &ATCCodeHandler{
		catalogService: catalogService,
	}
}

// Create handles POST /atc-codes.
func (h *ATCCodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateATCCodeRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	atcCode, err := domain.NewATCCode(req.Name, req.Code, req.Level, req.Slug, req.ParentID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	atcCode.Description = req.Description
	if userID, ok := middleware.GetUserID(r); ok {
		atcCode.CreatedBy = userID.String()
	}

	if err := h.catalogService.CreateATCCode(r.Context(), atcCode); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toATCCodeResponse(atcCode))
}

// List handles GET /atc-codes.
func (h *ATCCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	atcCodes, err := h.catalogService.ListATCCodes(r.Context(), offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]ATCCodeResponse, 0, len(atcCodes))
	for _, a := range atcCodes {
		items = append(items, toATCCodeResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse[ATCCodeResponse]{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Count:  len(items),
	})
}

// Get handles GET /atc-codes/{id}.
func (h *ATCCodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	atcCode, err := h.catalogService.GetATCCode(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toATCCodeResponse(atcCode))
}

// GetByCode handles GET /atc-codes/code/{code}.
func (h *ATCCodeHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Code is required")
		return
	}

	atcCode, err := h.catalogService.GetATCCodeByCode(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toATCCodeResponse(atcCode))
}

// GetBySlug handles GET /atc-codes/slug/{slug}.
func (h *ATCCodeHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Slug is required")
		return
	}

	atcCode, err := h.catalogService.GetATCCodeBySlug(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toATCCodeResponse(atcCode))
}

// Delete handles DELETE /atc-codes/{id}. The code is soft-deleted with the
// requesting user recorded as the remover.
func (h *ATCCodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var deletedBy string
	if userID, ok := middleware.GetUserID(r); ok {
		deletedBy = userID.String()
	}

	if err := h.catalogService.DeleteATCCode(r.Context(), id, deletedBy); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
