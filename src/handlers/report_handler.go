package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/username/barcontrol/backend/src/logger"
	"github.com/username/barcontrol/backend/src/services"
	"github.com/username/barcontrol/backend/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
	exportService *services.ExportService
}

func NewReportHandler(reportService services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// HandleGetDashboardReport serves GET /api/reports/dashboard?from=&to=&goal=.
// `from` is required; `to` defaults to `from`; `goal` > 0 overrides the
// apportioned break-even goal. Responses carry an ETag so unchanged reports
// cost the client nothing.
func (h *ReportHandler) HandleGetDashboardReport(w http.ResponseWriter, r *http.Request) {
	from := utils.ParseQueryDate(r.URL.Query().Get("from"))
	to := utils.ParseQueryDate(r.URL.Query().Get("to"))
	goal := parseGoal(r.URL.Query().Get("goal"))

	report, err := h.reportService.GetDashboardReport(from, to, goal)
	if err != nil {
		if errors.Is(err, services.ErrMissingDateRange) {
			utils.SendJSONError(w, "query parameter 'from' is required (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error computing dashboard report: %v", err), http.StatusInternalServerError)
		return
	}

	currentETag, etagErr := utils.GenerateETag(report)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for dashboard report", "error", etagErr)
	}
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	utils.SendJSON(w, report, http.StatusOK)
}

// HandleExportDashboardReport serves GET /api/reports/dashboard/export with
// the same query parameters, returning the report as an .xlsx download.
func (h *ReportHandler) HandleExportDashboardReport(w http.ResponseWriter, r *http.Request) {
	from := utils.ParseQueryDate(r.URL.Query().Get("from"))
	to := utils.ParseQueryDate(r.URL.Query().Get("to"))
	goal := parseGoal(r.URL.Query().Get("goal"))

	report, err := h.reportService.GetDashboardReport(from, to, goal)
	if err != nil {
		if errors.Is(err, services.ErrMissingDateRange) {
			utils.SendJSONError(w, "query parameter 'from' is required (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		utils.SendJSONError(w, fmt.Sprintf("Error computing dashboard report: %v", err), http.StatusInternalServerError)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(report)
	if err != nil {
		utils.SendJSONError(w, fmt.Sprintf("Error building report workbook: %v", err), http.StatusInternalServerError)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("relatorio_%s_%s.xlsx",
		report.From.Format("20060102"), uuid.NewString()[:8])
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(w); err != nil {
		logger.L.Error("Failed to stream report workbook", "error", err)
	}
}

// parseGoal reads the manual goal override; malformed or non-positive input
// means "no override".
func parseGoal(raw string) float64 {
	if raw == "" {
		return 0
	}
	goal, err := strconv.ParseFloat(raw, 64)
	if err != nil || goal < 0 {
		return 0
	}
	return goal
}
