package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// LookupHandler serves classification reference data. These are plain reads
// with no business rules, so the handler talks to the repository directly.
type LookupHandler struct {
	lookups repository.LookupRepository
}

// NewLookupHandler constructs handler.
func NewLookupHandler(lookups repository.LookupRepository) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

// ListCategories GET /categories.
func (h *LookupHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.lookups.ListCategories(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListSubcategories GET /subcategories.
func (h *LookupHandler) ListSubcategories(c *fiber.Ctx) error {
	var categoryID *string
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		categoryID = &raw
	}
	subcategories, err := h.lookups.ListSubcategories(c.Context(), categoryID)
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for _, subcategory := range subcategories {
		items = append(items, dto.SubcategoryResponse{
			ID:         subcategory.ID,
			CategoryID: subcategory.CategoryID,
			Name:       subcategory.Name,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListAssignmentGroups GET /assignment-groups.
func (h *LookupHandler) ListAssignmentGroups(c *fiber.Ctx) error {
	groups, err := h.lookups.ListAssignmentGroups(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.AssignmentGroupResponse, 0, len(groups))
	for _, group := range groups {
		items = append(items, dto.AssignmentGroupResponse{
			ID:     group.ID,
			Name:   group.Name,
			Active: group.Active,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListTags GET /tags.
func (h *LookupHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.lookups.ListTags(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		items = append(items, dto.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateTag POST /tags.
func (h *LookupHandler) CreateTag(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	tag := &domain.Tag{Name: name}
	if err := h.lookups.CreateTag(c.Context(), tag); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.TagResponse{ID: tag.ID, Name: tag.Name}})
}
