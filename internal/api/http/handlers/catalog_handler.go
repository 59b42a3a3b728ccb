package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// CatalogHandler serves the service catalog and its requests.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListItems GET /services/items.
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	items, err := h.service.ListItems(c.Context(), principal.User)
	if err != nil {
		return err
	}
	resp := make([]dto.CatalogItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, catalogItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// GetItem GET /services/items/:id.
func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	item, err := h.service.GetItem(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": catalogItemResponse(item)})
}

// CreateItem POST /services/items.
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.CreateItem(c.Context(), principal.User, service.CatalogItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": catalogItemResponse(item)})
}

// UpdateItem PUT /services/items/:id.
func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.UpdateItem(c.Context(), principal.User, c.Params("id"), service.CatalogItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": catalogItemResponse(item)})
}

// SubmitRequest POST /services/requests.
func (h *CatalogHandler) SubmitRequest(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ServiceRequestCreate
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ItemID == "" {
		return apperrors.NewValidationError("item_id required", nil)
	}
	request, err := h.service.SubmitRequest(c.Context(), principal.User, req.ItemID, req.Notes)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": serviceRequestResponse(request)})
}

// ListRequests GET /services/requests.
func (h *CatalogHandler) ListRequests(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	requests, err := h.service.ListRequests(c.Context(), principal.User, pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	resp := make([]dto.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, serviceRequestResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// UpdateRequestStatus PUT /services/requests/:id/status.
func (h *CatalogHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ServiceRequestStatusUpdate
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	request, err := h.service.UpdateRequestStatus(c.Context(), principal.User, c.Params("id"), req.Status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceRequestResponse(request)})
}

func catalogItemResponse(item *domain.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Active:      item.Active,
	}
}

func serviceRequestResponse(request *domain.ServiceRequest) dto.ServiceRequestResponse {
	return dto.ServiceRequestResponse{
		ID:          request.ID,
		ItemID:      request.ItemID,
		RequesterID: request.RequesterID,
		Status:      request.Status,
		Notes:       request.Notes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
