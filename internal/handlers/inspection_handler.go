package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/services"
	"ukkm-backend/internal/timeutil"
	"ukkm-backend/pkg/utils"
)

type InspectionHandler struct {
	Service *services.InspectionService
	Reports *services.ReportService
	Now     func() time.Time
}

func NewInspectionHandler(s *services.InspectionService, reports *services.ReportService) *InspectionHandler {
	return &InspectionHandler{Service: s, Reports: reports, Now: timeutil.Now}
}

func inspectionFilter(r *http.Request) query.InspectionFilter {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = query.All
	}
	return query.InspectionFilter{Query: q.Get("q"), Category: category}
}

// ListInspections handles GET /api/inspections?q=&category=
func (h *InspectionHandler) ListInspections(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.List(r.Context(), inspectionFilter(r)))
}

// NewForm handles GET /api/inspections/form, the blank add form
func (h *InspectionHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"form":       models.DefaultInspectionForm(),
		"categories": models.InspectionCategories,
	})
}

func (h *InspectionHandler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	var form models.InspectionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.Service.Create(r.Context(), &form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, rec)
}

// EditForm handles GET /api/inspections/{id}/form
func (h *InspectionHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid inspection ID", http.StatusBadRequest)
		return
	}

	form, err := h.Service.EditForm(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, form)
}

func (h *InspectionHandler) UpdateInspection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid inspection ID", http.StatusBadRequest)
		return
	}

	var form models.InspectionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := h.Service.Update(r.Context(), id, &form)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// ToggleFosim handles PATCH /api/inspections/{id}/fosim/{slot}
func (h *InspectionHandler) ToggleFosim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		http.Error(w, "Invalid inspection ID", http.StatusBadRequest)
		return
	}
	slot, ok := pathInt(r, "slot")
	if !ok {
		http.Error(w, "Invalid visit slot", http.StatusBadRequest)
		return
	}

	rec, err := h.Service.ToggleFosim(r.Context(), id, slot)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// Calendar handles GET /api/inspections/calendar?year=&month=. Missing
// values default to the current month.
func (h *InspectionHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.Now().In(timeutil.MYT)
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "Invalid month (1-12)", http.StatusBadRequest)
			return
		}
		month = time.Month(n)
	}

	utils.JSON(w, http.StatusOK, h.Service.Calendar(r.Context(), year, month, inspectionFilter(r), now))
}

// Report handles GET /api/inspections/report?format=pdf|csv|json
func (h *InspectionHandler) Report(w http.ResponseWriter, r *http.Request) {
	report := h.Reports.BuildInspectionReport(r.Context(), inspectionFilter(r))

	switch format := r.URL.Query().Get("format"); format {
	case "", "pdf":
		body, err := h.Reports.GenerateInspectionPDF(report)
		if err != nil {
			http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
			return
		}
		utils.Attachment(w, "application/pdf", services.ReportFilename(report, "pdf"), body)
	case "csv":
		body, err := h.Reports.GenerateInspectionCSV(report)
		if err != nil {
			http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
			return
		}
		utils.Attachment(w, "text/csv", services.ReportFilename(report, "csv"), body)
	case "json":
		utils.JSON(w, http.StatusOK, report)
	default:
		http.Error(w, "format must be pdf, csv or json", http.StatusBadRequest)
	}
}

// ArchiveReport handles POST /api/inspections/report/archive
func (h *InspectionHandler) ArchiveReport(w http.ResponseWriter, r *http.Request) {
	key, err := h.Reports.ArchiveInspectionReport(r.Context(), inspectionFilter(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"key": key})
}
