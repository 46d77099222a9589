package api

import (
	"net/http"

	"github.com/imslabs/ims-api/internal/api/shared"
	"github.com/imslabs/ims-api/internal/service"
)

// StrengthHandler handles strength API requests addressed by strength ID.
// Creation and listing live under the medicines subresource.
type StrengthHandler struct {
	medicineService service.MedicineService
}

// NewStrengthHandler creates a new StrengthHandler with the given dependencies.
func NewStrengthHandler(medicineService service.MedicineService) *StrengthHandler {
	return &StrengthHandler{
		medicineService: medicineService,
	}
}

// Get handles GET /strengths/{id}.
func (h *StrengthHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	strength, err := h.medicineService.GetStrength(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toStrengthResponse(strength))
}

// Delete handles DELETE /strengths/{id}. The strength is soft-deleted and
// purged later by the maintenance job.
func (h *StrengthHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.medicineService.DeleteStrength(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
