package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/domain"
	"github.com/imslabs/ims-api/internal/service"
)

// CategoryHandler handles category API requests.
type CategoryHandler struct {
	catalogService service.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(catalogService service.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := domain.NewCategory(req.Name, req.Slug, req.Description, req.ParentID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.catalogService.CreateCategory(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toCategoryResponse(category))
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	categories, err := h.catalogService.ListCategories(r.Context(), offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse[CategoryResponse]{
		Items:  items,
		Offset: offset,
		Limit:  limit,
		Count:  len(items),
	})
}

// Tree handles GET /categories/tree, returning root categories with their
// descendants nested.
func (h *CategoryHandler) Tree(w http.ResponseWriter, r *http.Request) {
	roots, err := h.catalogService.CategoryTree(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := make([]CategoryResponse, 0, len(roots))
	for _, c := range roots {
		items = append(items, toCategoryResponse(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.catalogService.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// GetBySlug handles GET /categories/slug/{slug}.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Slug is required")
		return
	}

	category, err := h.catalogService.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := h.catalogService.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Status != nil {
		category.Status = domain.Status(*req.Status)
	}
	if req.ParentID != nil {
		category.ParentID = req.ParentID
	}

	if err := h.catalogService.UpdateCategory(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /categories/{id}. Categories that still have child
// categories cannot be deleted.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
