package handlers

import (
	"EAsha/middlewares"
	"EAsha/services"
	"EAsha/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// History lists the caller's own visit records, optionally filtered by a
// free-text query on patient name or mobile.
func (h *ReportHandler) History(c *gin.Context) {
	username, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	records, err := h.reportService.History(c.Request.Context(), username, c.Query("query"))
	if err != nil {
		middlewares.HttpError(c, "Failed to load history", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": records})
}

// Dashboard reports the caller's visit count for the selected date (POST
// form field "date"), defaulting to today.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	username, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	selectedDate := ""
	if c.Request.Method == http.MethodPost {
		selectedDate = c.PostForm("date")
	}

	dashboard, err := h.reportService.DailyCount(c.Request.Context(), username, selectedDate)
	if err != nil {
		middlewares.HttpError(c, "Failed to load dashboard", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// AllView is the admin cross-worker report with conjunctive filters and
// summary counts.
func (h *ReportHandler) AllView(c *gin.Context) {
	view, err := h.reportService.CrossWorkerView(c.Request.Context(), services.AllViewFilter{
		Query:    c.Query("query"),
		Username: c.Query("user_id"),
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
	})
	if err != nil {
		middlewares.HttpError(c, "Failed to load reports", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DiseaseGraph serves the disease frequency data for the trends page.
func (h *ReportHandler) DiseaseGraph(c *gin.Context) {
	graph, err := h.reportService.DiseaseFrequencies(c.Request.Context(), c.Query("user_id"), c.Query("date"))
	if err != nil {
		middlewares.HttpError(c, "Failed to load disease graph", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}

// ExportWorkers downloads the account table as CSV, password column removed.
func (h *ReportHandler) ExportWorkers(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=asha_users.csv")
	c.Header("Content-Type", "text/csv")
	if err := h.reportService.ExportWorkers(c.Request.Context(), c.Writer); err != nil {
		middlewares.HttpError(c, "Failed to export users", http.StatusInternalServerError, err)
	}
}

// ExportReports downloads the full visit record table verbatim.
func (h *ReportHandler) ExportReports(c *gin.Context) {
	c.Header("Content-Disposition", "attachment;filename=all_patient_reports.csv")
	c.Header("Content-Type", "text/csv")
	if err := h.reportService.ExportReports(c.Request.Context(), c.Writer); err != nil {
		middlewares.HttpError(c, "Failed to export reports", http.StatusInternalServerError, err)
	}
}

// EmailReport mails one date's aggregate numbers to the given address.
func (h *ReportHandler) EmailReport(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
		Date  string `json:"date"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if data.Email == "" || data.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and date are required"})
		return
	}

	view, err := h.reportService.CrossWorkerView(c.Request.Context(), services.AllViewFilter{
		FromDate: data.Date,
		ToDate:   data.Date,
	})
	if err != nil {
		middlewares.HttpError(c, "Failed to compute report", http.StatusInternalServerError, err)
		return
	}

	if err := utils.SendDailyReportEmail(data.Email, data.Date, view.TotalReports, view.TotalASHA); err != nil {
		middlewares.HttpError(c, "Failed to send report email", http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusOK)
}
