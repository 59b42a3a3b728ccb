package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// BulkHandler runs batch operations over a ticket selection.
type BulkHandler struct {
	service *service.BulkService
}

// NewBulkHandler constructs handler.
func NewBulkHandler(bulkService *service.BulkService) *BulkHandler {
	return &BulkHandler{service: bulkService}
}

// Execute POST /tickets/bulk.
func (h *BulkHandler) Execute(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.BulkTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	results, err := h.service.Execute(c.Context(), principal.User, service.BulkRequest{
		Action:     service.BulkAction(req.Action),
		TicketIDs:  req.TicketIDs,
		AssigneeID: req.AssigneeID,
		Status:     domain.TicketStatus(strings.ToUpper(req.Status)),
		Priority:   domain.TicketPriority(strings.ToUpper(req.Priority)),
	})
	if err != nil {
		return err
	}
	items := make([]dto.BulkItemResponse, 0, len(results))
	for _, result := range results {
		items = append(items, dto.BulkItemResponse{
			TicketID: result.TicketID,
			OK:       result.OK,
			Error:    result.Error,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
