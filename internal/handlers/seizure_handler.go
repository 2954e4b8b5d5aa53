package handlers

import (
	"encoding/json"
	"net/http"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/services"
	"ukkm-backend/pkg/utils"
)

type SeizureHandler struct {
	Service *services.SeizureService
}

func NewSeizureHandler(s *services.SeizureService) *SeizureHandler {
	return &SeizureHandler{Service: s}
}

// ListSeizures handles GET /api/seizures?q=
func (h *SeizureHandler) ListSeizures(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context(), r.URL.Query().Get("q")))
}

// NewForm handles GET /api/seizures/form
func (h *SeizureHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, services.NewSeizureForm())
}

func (h *SeizureHandler) CreateSeizure(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSeizureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	seizure, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, seizure)
}

func (h *SeizureHandler) DeleteSeizure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid seizure ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
