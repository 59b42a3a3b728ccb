package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// DashboardHandler serves aggregate ticket views.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// AdminStats GET /dashboard/admin.
func (h *DashboardHandler) AdminStats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	payload, err := h.service.AdminStats(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboardResponse(payload)})
}

// CustomerStats GET /dashboard/customer.
func (h *DashboardHandler) CustomerStats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	payload, err := h.service.CustomerStats(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboardResponse(payload)})
}

func dashboardResponse(payload *service.DashboardPayload) dto.DashboardResponse {
	byStatus := make([]dto.StatusSliceResponse, 0, len(payload.ByStatus))
	for _, slice := range payload.ByStatus {
		byStatus = append(byStatus, dto.StatusSliceResponse{
			Status:  slice.Status,
			Count:   slice.Count,
			Percent: slice.Percent,
		})
	}
	byCompany := make([]dto.CompanySliceResponse, 0, len(payload.ByCompany))
	for _, slice := range payload.ByCompany {
		byCompany = append(byCompany, dto.CompanySliceResponse{
			Company: slice.Company,
			Count:   slice.Count,
			Percent: slice.Percent,
		})
	}
	monthly := make([]dto.MonthBucketResponse, 0, len(payload.Monthly))
	for _, bucket := range payload.Monthly {
		monthly = append(monthly, dto.MonthBucketResponse{
			Month: bucket.Month,
			Count: bucket.Count,
		})
	}
	recent := make([]dto.TicketSummary, 0, len(payload.Recent))
	for i := range payload.Recent {
		recent = append(recent, ticketSummary(&payload.Recent[i]))
	}
	return dto.DashboardResponse{
		Total:     payload.Total,
		ByStatus:  byStatus,
		ByCompany: byCompany,
		Monthly:   monthly,
		Recent:    recent,
	}
}
