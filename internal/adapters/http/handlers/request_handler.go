package handlers

import (
	"errors"
	"strconv"

	"tabaro3-api/internal/core/domain"
	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/pagination"
	"tabaro3-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles blood request endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// requestErrorResponse maps request validation errors onto responses
func requestErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidBloodType):
		return response.BadRequest(c, "Invalid blood type")
	case errors.Is(err, services.ErrInvalidUnits):
		return response.BadRequest(c, "Units needed must be a positive number")
	case errors.Is(err, services.ErrMissingHospital):
		return response.BadRequest(c, "Hospital is required")
	case errors.Is(err, services.ErrMissingPhone):
		return response.BadRequest(c, "Contact phone is required")
	case errors.Is(err, services.ErrRequestNotFound):
		return response.NotFound(c, "Blood request not found")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// CreateRequest represents blood request creation body. Note there is no
// requester field; the requester is always the session user.
type CreateRequest struct {
	BloodType    string `json:"blood_type"`
	UnitsNeeded  int    `json:"units_needed"`
	Hospital     string `json:"hospital"`
	Region       string `json:"region"`
	ContactPhone string `json:"contact_phone"`
	Details      string `json:"details"`
	IsUrgent     bool   `json:"is_urgent"`
}

// Create handles blood request creation
// @Summary Create blood request
// @Description Post a new blood request as the authenticated user
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRequest true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateRequestInput{
		BloodType:    req.BloodType,
		UnitsNeeded:  req.UnitsNeeded,
		Hospital:     req.Hospital,
		Region:       req.Region,
		ContactPhone: req.ContactPhone,
		Details:      req.Details,
		IsUrgent:     req.IsUrgent,
	}

	result, err := h.requestService.Create(c.Context(), userID, input)
	if err != nil {
		return requestErrorResponse(c, err, "Failed to create blood request")
	}

	return response.Created(c, "Blood request created successfully", fiber.Map{
		"request": result,
	})
}

// Home handles the landing view payload
// @Summary Landing view
// @Description Urgent open requests (max 5) and recent open requests (max 10)
// @Tags Requests
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /requests/home [get]
func (h *RequestHandler) Home(c *fiber.Ctx) error {
	result, err := h.requestService.Home(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load requests")
	}

	return response.Success(c, "Requests retrieved successfully", result)
}

// ListOpen handles the full open-request listing
// @Summary List open requests
// @Description All unfulfilled blood requests, newest first
// @Tags Requests
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) ListOpen(c *fiber.Ctx) error {
	requests, err := h.requestService.ListOpen(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list requests")
	}

	return response.Success(c, "Requests retrieved successfully", fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}

// GetByID handles viewing a single request
// @Summary Get blood request
// @Description Get a blood request by ID
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	result, err := h.requestService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return response.NotFound(c, "Blood request not found")
		}
		return response.InternalServerError(c, "Failed to get blood request")
	}

	return response.Success(c, "Request retrieved successfully", fiber.Map{
		"request": result,
	})
}

// MarkFulfilled handles marking a request fulfilled (owner only)
// @Summary Mark request fulfilled
// @Description Mark own blood request as fulfilled
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/fulfill [put]
func (h *RequestHandler) MarkFulfilled(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	result, err := h.requestService.MarkFulfilled(c.Context(), uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Blood request not found")
		case errors.Is(err, services.ErrNotRequestOwner):
			return response.Forbidden(c, "Only the requester may mark this request fulfilled")
		default:
			return response.InternalServerError(c, "Failed to update blood request")
		}
	}

	return response.Success(c, "Request marked as fulfilled", fiber.Map{
		"request": result,
	})
}

// AdminList handles listing all requests including fulfilled ones (Admin only)
// @Summary List all blood requests
// @Description Get a paginated list of every blood request (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/requests [get]
func (h *RequestHandler) AdminList(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	requests, total, err := h.requestService.ListAll(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list blood requests")
	}

	return response.Success(c, "Blood requests retrieved successfully", pagination.NewResponse(requests, params, total))
}

// AdminUpdate handles replacing a request's fields (Admin only)
// @Summary Update blood request
// @Description Replace a blood request's fields, including urgency and fulfillment flags (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body services.UpdateRequestInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/requests/{id} [put]
func (h *RequestHandler) AdminUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var input services.UpdateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.requestService.UpdateByAdmin(c.Context(), uint(id), &input)
	if err != nil {
		return requestErrorResponse(c, err, "Failed to update blood request")
	}

	return response.Success(c, "Blood request updated successfully", fiber.Map{
		"request": result,
	})
}

// AdminDelete handles deleting a request (Admin only)
// @Summary Delete blood request
// @Description Delete a blood request (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/requests/{id} [delete]
func (h *RequestHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	if err := h.requestService.DeleteByAdmin(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return response.NotFound(c, "Blood request not found")
		}
		return response.InternalServerError(c, "Failed to delete blood request")
	}

	return response.Success(c, "Blood request deleted successfully", nil)
}
