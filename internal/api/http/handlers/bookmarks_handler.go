package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// BookmarksHandler serves per-user favorites and recently-viewed tickets.
type BookmarksHandler struct {
	service *service.BookmarkService
}

// NewBookmarksHandler constructs handler.
func NewBookmarksHandler(bookmarkService *service.BookmarkService) *BookmarksHandler {
	return &BookmarksHandler{service: bookmarkService}
}

// ListFavorites GET /bookmarks/favorites.
func (h *BookmarksHandler) ListFavorites(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ids, err := h.service.ListFavorites(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketIDListResponse{TicketIDs: ids}})
}

// ToggleFavorite POST /bookmarks/favorites/:ticketId/toggle.
func (h *BookmarksHandler) ToggleFavorite(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticketID := c.Params("ticketId")
	favorite, err := h.service.ToggleFavorite(c.Context(), principal.User, ticketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FavoriteToggleResponse{
		TicketID: ticketID,
		Favorite: favorite,
	}})
}

// ListRecent GET /bookmarks/recent.
func (h *BookmarksHandler) ListRecent(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ids, err := h.service.ListRecent(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketIDListResponse{TicketIDs: ids}})
}
