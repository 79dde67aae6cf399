package handlers

import (
	"errors"
	"strconv"

	"tabaro3-api/internal/core/domain"
	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler handles the public donor directory endpoints
type DonorHandler struct {
	donorService  *services.DonorService
	reportService *services.ReportService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService, reportService *services.ReportService) *DonorHandler {
	return &DonorHandler{
		donorService:  donorService,
		reportService: reportService,
	}
}

// Search handles donor search
// @Summary Search donors
// @Description Search donors by blood type, region and sub-region (exact match, all filters optional)
// @Tags Donors
// @Accept json
// @Produce json
// @Param blood_type query string false "Blood type (A+, A-, B+, B-, AB+, AB-, O+, O-)"
// @Param region query string false "Region"
// @Param sub_region query string false "Sub-region"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donors/search [get]
func (h *DonorHandler) Search(c *fiber.Ctx) error {
	input := &services.SearchInput{
		BloodType: c.Query("blood_type"),
		Region:    c.Query("region"),
		SubRegion: c.Query("sub_region"),
	}

	donors, err := h.donorService.Search(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBloodType) {
			return response.BadRequest(c, "Invalid blood type")
		}
		return response.InternalServerError(c, "Failed to search donors")
	}

	return response.Success(c, "Donors retrieved successfully", fiber.Map{
		"donors": donors,
		"count":  len(donors),
	})
}

// FileReportRequest represents report submission body
type FileReportRequest struct {
	ReportType      string `json:"report_type"`
	ReportDetails   string `json:"report_details"`
	ReporterName    string `json:"reporter_name"`
	ReporterContact string `json:"reporter_contact"`
}

// FileReport handles filing a report against a donor. Intentionally public:
// non-members must be able to flag bad actors.
// @Summary Report a donor
// @Description File an abuse/complaint report against a donor (no authentication required)
// @Tags Donors
// @Accept json
// @Produce json
// @Param id path int true "Donor ID"
// @Param body body FileReportRequest true "Report data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id}/reports [post]
func (h *DonorHandler) FileReport(c *fiber.Ctx) error {
	donorID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid donor ID")
	}

	var req FileReportRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.FileReportInput{
		ReportType:      req.ReportType,
		ReportDetails:   req.ReportDetails,
		ReporterName:    req.ReporterName,
		ReporterContact: req.ReporterContact,
	}

	report, err := h.reportService.FileReport(c.Context(), uint(donorID), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		case errors.Is(err, services.ErrMissingDetails):
			return response.BadRequest(c, "Report details are required")
		case errors.Is(err, services.ErrInvalidCategory):
			return response.BadRequest(c, "Invalid report type")
		default:
			return response.InternalServerError(c, "Failed to file report")
		}
	}

	return response.Created(c, "Report submitted successfully", fiber.Map{
		"report": report,
	})
}
