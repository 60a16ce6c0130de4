package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campus-eats/internal/middleware"
	"campus-eats/internal/model"
	"campus-eats/internal/service"
	"campus-eats/pkg/apierror"
)

type MenuHandler struct {
	service *service.MenuService
}

func NewMenuHandler(service *service.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// Save creates or replaces the calling vendor's menu.
func (h *MenuHandler) Save(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	vendorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthenticated)
		return
	}

	var payload model.SaveMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	menu, err := h.service.Save(r.Context(), vendorID, payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuResponse{Success: true, Menu: &menu})
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthenticated)
		return
	}

	menu, err := h.service.GetForVendor(r.Context(), vendorID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuResponse{Success: true, Menu: &menu})
}

// GetByEmail is the public menu view students browse.
func (h *MenuHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuResponse{Success: true, Menu: &menu})
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthenticated)
		return
	}

	if err := h.service.Delete(r.Context(), vendorID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Menu deleted")
}

func (h *MenuHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListVendors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.VendorsResponse{Success: true, Vendors: vendors})
}
