package handlers

import (
	"net/http"

	"github.com/drivergigspro/demandmap/internal/models"
)

const CATEGORY_QUERY_ARG = "category"

// ResourceHandler serves the static driver-resources catalog.
type ResourceHandler struct {
	catalog []models.Resource
}

func NewResourceHandler() *ResourceHandler {
	return &ResourceHandler{catalog: models.DefaultResourceCatalog()}
}

func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(CATEGORY_QUERY_ARG)
	if category == "" {
		writeJSON(w, http.StatusOK, h.catalog)
		return
	}
	filtered := models.ResourcesByCategory(h.catalog, category)
	writeJSON(w, http.StatusOK, filtered)
}
