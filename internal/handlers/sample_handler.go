package handlers

import (
	"encoding/json"
	"net/http"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/services"
	"ukkm-backend/pkg/utils"
)

type SampleHandler struct {
	Service *services.SampleService
}

func NewSampleHandler(s *services.SampleService) *SampleHandler {
	return &SampleHandler{Service: s}
}

// ListSamples handles GET /api/samples?status=&q=
func (h *SampleHandler) ListSamples(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = query.All
	}
	filter := query.SampleFilter{Query: r.URL.Query().Get("q"), Status: status}
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context(), filter))
}

func (h *SampleHandler) CreateSample(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sample, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sample)
}
