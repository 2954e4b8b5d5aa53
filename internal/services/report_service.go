package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"go.uber.org/zap"

	"ukkm-backend/internal/metrics"
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/query"
	"ukkm-backend/internal/timeutil"
)

// Archiver stores a rendered report. *archive.Archive satisfies it.
type Archiver interface {
	Enabled() bool
	Key(name string) string
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type ReportService struct {
	Inspections *InspectionService
	archive     Archiver
	logger      *zap.Logger
	now         func() time.Time
}

func NewReportService(inspections *InspectionService, archive Archiver, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{Inspections: inspections, archive: archive, logger: logger, now: timeutil.Now}
}

// ReportColumns are the fixed export headings
var ReportColumns = []string{
	"Bil", "Nama Sekolah", "Kategori",
	"Lwtn 1: Tarikh", "Lwtn 1: Mrkh", "Lwtn 1: FOSIM",
	"Lwtn 2: Tarikh", "Lwtn 2: Mrkh", "Lwtn 2: FOSIM",
	"Lwtn 3: Tarikh", "Lwtn 3: Mrkh", "Lwtn 3: FOSIM",
}

// column widths in mm, matching ReportColumns
var reportWidths = []float64{10, 50, 30, 20, 12, 12, 20, 12, 12, 20, 12, 12}

// InspectionReport is the tabular export of a filtered inspection view
type InspectionReport struct {
	Title     string                 `json:"title"`
	Year      int                    `json:"year"`
	Generated string                 `json:"generated"`
	Filter    query.InspectionFilter `json:"filter"`
	Columns   []string               `json:"columns"`
	Rows      [][]string             `json:"rows"`
}

// InspectionRows turns records into export rows. Missing values print as
// "-", a set FOSIM flag as "YA".
func InspectionRows(records []models.Inspection) [][]string {
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		row := []string{strconv.Itoa(i + 1), rec.Name, string(rec.Category)}
		for _, v := range rec.Visits {
			row = append(row, orDash(v.Date), orDash(v.Score), fosimMark(v.Fosim))
		}
		rows = append(rows, row)
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fosimMark(set bool) string {
	if set {
		return "YA"
	}
	return "-"
}

// BuildInspectionReport exports exactly the records the list shows for filter
func (s *ReportService) BuildInspectionReport(ctx context.Context, filter query.InspectionFilter) *InspectionReport {
	now := s.now().In(timeutil.MYT)
	return &InspectionReport{
		Title:     fmt.Sprintf("Laporan Pemeriksaan Sekolah %d", now.Year()),
		Year:      now.Year(),
		Generated: timeutil.FormatDisplayDate(now),
		Filter:    filter,
		Columns:   ReportColumns,
		Rows:      InspectionRows(s.Inspections.Filtered(filter)),
	}
}

// GenerateInspectionPDF renders the report as a landscape A4 grid
func (s *ReportService) GenerateInspectionPDF(report *InspectionReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr(report.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr("Tarikh Laporan: "+report.Generated), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Table header, blue-600
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range report.Columns {
		pdf.CellFormat(reportWidths[i], 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Table rows
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range report.Rows {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}
		for j, cell := range row {
			align := "C"
			if j == 1 || j == 2 {
				align = "L"
				cell = truncate(cell, reportWidths[j])
			}
			pdf.CellFormat(reportWidths[j], 6, tr(cell), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	metrics.ReportsGenerated.WithLabelValues("pdf").Inc()
	return buf.Bytes(), nil
}

// truncate keeps a cell roughly within width mm at 8pt
func truncate(s string, width float64) string {
	limit := int(width / 1.7)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// GenerateInspectionCSV writes the same rows as the PDF under a single
// header line. Every record has len(ReportColumns) fields.
func (s *ReportService) GenerateInspectionCSV(report *InspectionReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(report.Columns)
	for _, row := range report.Rows {
		w.Write(row)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	metrics.ReportsGenerated.WithLabelValues("csv").Inc()
	return buf.Bytes(), nil
}

// ReportFilename is the download name of a rendered report
func ReportFilename(report *InspectionReport, ext string) string {
	return fmt.Sprintf("Laporan_Pemeriksaan_Sekolah_%d.%s", report.Year, ext)
}

// ArchiveInspectionReport renders the PDF for filter and uploads it as
// <prefix>/<yyyy-mm-dd>.pdf
func (s *ReportService) ArchiveInspectionReport(ctx context.Context, filter query.InspectionFilter) (string, error) {
	if s.archive == nil || !s.archive.Enabled() {
		return "", ErrArchiveDisabled
	}

	report := s.BuildInspectionReport(ctx, filter)
	body, err := s.GenerateInspectionPDF(report)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	key := s.archive.Key(s.now().In(timeutil.MYT).Format("2006-01-02") + ".pdf")
	key, err = s.archive.Put(ctx, key, body, "application/pdf")
	if err != nil {
		return "", err
	}
	s.logger.Info("inspection report archived", zap.String("key", key), zap.Int("rows", len(report.Rows)))
	return key, nil
}
