package handlers

import (
	"errors"
	"strconv"

	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles the admin side of the abuse report workflow.
// Filing lives on the donor routes; see DonorHandler.FileReport.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListReports handles listing all donor reports (Admin only)
// @Summary List donor reports
// @Description Get all donor reports, newest first (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/reports [get]
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reportService.ListReports(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list reports")
	}

	return response.Success(c, "Reports retrieved successfully", fiber.Map{
		"reports": reports,
	})
}

// ResolveReport handles marking a report resolved (Admin only)
// @Summary Resolve donor report
// @Description Mark a donor report as resolved (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/reports/{id}/resolve [put]
func (h *ReportHandler) ResolveReport(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.ResolveReport(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return response.NotFound(c, "Report not found")
		}
		return response.InternalServerError(c, "Failed to resolve report")
	}

	return response.Success(c, "Report resolved successfully", fiber.Map{
		"report": report,
	})
}
