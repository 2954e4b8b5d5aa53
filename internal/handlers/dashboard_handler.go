package handlers

import (
	"net/http"
	"time"

	"ukkm-backend/internal/services"
	"ukkm-backend/internal/timeutil"
	"ukkm-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
	Now     func() time.Time
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s, Now: timeutil.Now}
}

// GetSummary handles GET /api/dashboard
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Summary(r.Context(), h.Now()))
}
