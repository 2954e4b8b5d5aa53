package handlers

import (
	"net/http"
	"time"

	"ukkm-backend/internal/services"
	"ukkm-backend/internal/timeutil"
	"ukkm-backend/pkg/utils"
)

type ScheduleHandler struct {
	Service *services.ScheduleService
	Now     func() time.Time
}

func NewScheduleHandler(s *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: s, Now: timeutil.Now}
}

// ListMonths handles GET /api/schedule?q=
func (h *ScheduleHandler) ListMonths(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Months(r.Context(), r.URL.Query().Get("q")))
}

// CurrentWeek handles GET /api/schedule/current
func (h *ScheduleHandler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	week, err := h.Service.Current(r.Context(), h.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, week)
}
