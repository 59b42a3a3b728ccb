package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service   *service.TicketService
	bookmarks *service.BookmarkService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, bookmarkService *service.BookmarkService) *TicketsHandler {
	return &TicketsHandler{service: ticketService, bookmarks: bookmarkService}
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	tickets, meta, err := h.service.List(c.Context(), principal.User, parseTicketQuery(c))
	if err != nil {
		return err
	}
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": dto.TicketPageResponse{
		Items:    items,
		Total:    meta.Total,
		Page:     meta.Page,
		PageSize: meta.PageSize,
	}})
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.Create(c.Context(), principal.User, service.TicketCreateInput{
		Subject:       req.Subject,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Location:      req.Location,
		ContactType:   req.ContactType,
		Impact:        req.Impact,
		Urgency:       req.Urgency,
		RequesterID:   req.RequesterID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// GetTicket GET /tickets/:id. A successful read also lands the ticket at the
// front of the caller's recently-viewed list.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.Get(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	_ = h.bookmarks.TrackView(c.Context(), principal.User, ticket.ID)
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// UpdateTicket PUT /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.Update(c.Context(), principal.User, c.Params("id"), service.TicketUpdateInput{
		Subject:           req.Subject,
		Description:       req.Description,
		Location:          req.Location,
		ContactType:       req.ContactType,
		CategoryID:        req.CategoryID,
		SubcategoryID:     req.SubcategoryID,
		AssignmentGroupID: req.AssignmentGroupID,
		AssigneeID:        req.AssigneeID,
		ClearAssignee:     req.ClearAssignee,
		Impact:            req.Impact,
		Urgency:           req.Urgency,
		Status:            req.Status,
		Resolution:        req.Resolution,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Delete(c.Context(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextNumber GET /tickets/next-number.
func (h *TicketsHandler) NextNumber(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	number, err := h.service.NextNumber(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"number": number}})
}

// ExportTickets GET /tickets/export.
func (h *TicketsHandler) ExportTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="tickets.csv"`)
	return h.service.ExportCSV(c.Context(), principal.User, parseTicketQuery(c), c.Response().BodyWriter())
}

// ResolveTicket POST /tickets/:id/resolve.
func (h *TicketsHandler) ResolveTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ResolveTicketRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	ticket, err := h.service.Resolve(c.Context(), principal.User, c.Params("id"), req.Resolution)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// CloseTicket POST /tickets/:id/close.
func (h *TicketsHandler) CloseTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.Close(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// ReopenTicket POST /tickets/:id/reopen.
func (h *TicketsHandler) ReopenTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.Reopen(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// StartProgress POST /tickets/:id/start.
func (h *TicketsHandler) StartProgress(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.StartProgress(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// ListComments GET /tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	comments, err := h.service.ListComments(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, commentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	comment, err := h.service.AddComment(c.Context(), principal.User, c.Params("id"), req.Body, req.Internal)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// UpdateComment PUT /tickets/:id/comments/:commentId.
func (h *TicketsHandler) UpdateComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	comment, err := h.service.UpdateComment(c.Context(), principal.User, c.Params("id"), c.Params("commentId"), req.Body)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": commentResponse(comment)})
}

// DeleteComment DELETE /tickets/:id/comments/:commentId.
func (h *TicketsHandler) DeleteComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteComment(c.Context(), principal.User, c.Params("id"), c.Params("commentId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListHistory GET /tickets/:id/history.
func (h *TicketsHandler) ListHistory(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 50)
	entries, err := h.service.ListHistory(c.Context(), principal.User, c.Params("id"), pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	items := make([]dto.TicketHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.TicketHistoryResponse{
			ID:          entry.ID,
			ChangeType:  entry.ChangeType,
			ChangedByID: entry.ChangedByID,
			OldValue:    entry.OldValue,
			NewValue:    entry.NewValue,
			CreatedAt:   entry.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseTicketQuery(c *fiber.Ctx) service.TicketListInput {
	return service.TicketListInput{
		Status:            c.Query("status"),
		Priority:          c.Query("priority"),
		CategoryID:        c.Query("category_id"),
		SubcategoryID:     c.Query("subcategory_id"),
		AssignmentGroupID: c.Query("assignment_group_id"),
		AssigneeID:        c.Query("assignee_id"),
		Unassigned:        c.QueryBool("unassigned"),
		RequesterID:       c.Query("requester_id"),
		Search:            c.Query("search"),
		CreatedFrom:       parseTime(c.Query("created_from")),
		CreatedTo:         parseTime(c.Query("created_to")),
		Page:              parseInt(c.Query("page"), 0),
		PageSize:          parseInt(c.Query("page_size"), 0),
	}
}

func parseTime(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil
	}
	return &t
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func ticketSummary(ticket *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:                ticket.ID,
		Number:            ticket.Number,
		RequesterID:       ticket.RequesterID,
		CategoryID:        ticket.CategoryID,
		AssignmentGroupID: ticket.AssignmentGroupID,
		AssigneeID:        ticket.AssigneeID,
		Subject:           ticket.Subject,
		Status:            ticket.Status,
		Priority:          ticket.Priority,
		CreatedAt:         ticket.CreatedAt,
		UpdatedAt:         ticket.UpdatedAt,
	}
}

func ticketDetail(ticket *domain.Ticket) dto.TicketDetailResponse {
	return dto.TicketDetailResponse{
		ID:                ticket.ID,
		Number:            ticket.Number,
		RequesterID:       ticket.RequesterID,
		CategoryID:        ticket.CategoryID,
		SubcategoryID:     ticket.SubcategoryID,
		AssignmentGroupID: ticket.AssignmentGroupID,
		AssigneeID:        ticket.AssigneeID,
		Subject:           ticket.Subject,
		Description:       ticket.Description,
		Location:          ticket.Location,
		ContactType:       ticket.ContactType,
		Status:            ticket.Status,
		Impact:            ticket.Impact,
		Urgency:           ticket.Urgency,
		Priority:          ticket.Priority,
		Resolution:        ticket.Resolution,
		CreatedAt:         ticket.CreatedAt,
		UpdatedAt:         ticket.UpdatedAt,
		ClosedAt:          ticket.ClosedAt,
	}
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		Internal:  comment.Internal,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
