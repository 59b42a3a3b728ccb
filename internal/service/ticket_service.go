package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketService coordinates the ticket workflow. Every method re-checks role
// and ownership: route-level gates are a convenience, this layer is the
// authority.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	history    repository.TicketHistoryRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	cfg        config.WorkflowConfig
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	HistoryRepo repository.TicketHistoryRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
	Workflow    config.WorkflowConfig
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	cfg := deps.Workflow
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		history:    deps.HistoryRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		cfg:        cfg,
	}
}

// TicketListInput carries raw list parameters as they arrive from the query
// string. Empty strings mean "not set".
type TicketListInput struct {
	Status            string
	Priority          string
	CategoryID        string
	SubcategoryID     string
	AssignmentGroupID string
	AssigneeID        string
	Unassigned        bool
	RequesterID       string
	TicketIDs         []string
	Search            string
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	Page              int
	PageSize          int
}

// PageMeta reports pagination alongside a ticket page.
type PageMeta struct {
	Total    int64
	Page     int
	PageSize int
}

// normalizeFilter strips empty criteria so they never reach SQL, resolves the
// unassigned/assignee precedence, and clamps pagination.
func (s *TicketService) normalizeFilter(input TicketListInput) (repository.TicketFilter, int, int) {
	filter := repository.TicketFilter{}

	for _, part := range splitList(input.Status) {
		filter.Statuses = append(filter.Statuses, domain.TicketStatus(strings.ToUpper(part)))
	}
	for _, part := range splitList(input.Priority) {
		filter.Priorities = append(filter.Priorities, domain.TicketPriority(strings.ToUpper(part)))
	}
	filter.CategoryID = optional(input.CategoryID)
	filter.SubcategoryID = optional(input.SubcategoryID)
	filter.AssignmentGroupID = optional(input.AssignmentGroupID)
	filter.RequesterID = optional(input.RequesterID)
	filter.SearchTerm = optional(input.Search)
	filter.CreatedFrom = input.CreatedFrom
	filter.CreatedTo = input.CreatedTo

	// unassigned wins over any assignee criterion; the two never co-occur.
	if input.Unassigned {
		filter.Unassigned = true
	} else {
		filter.AssigneeID = optional(input.AssigneeID)
	}

	for _, id := range input.TicketIDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			filter.TicketIDs = append(filter.TicketIDs, trimmed)
		}
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize
	return filter, page, pageSize
}

// List returns a ticket page plus pagination metadata. Customers are always
// scoped to their own tickets regardless of the requested filter.
func (s *TicketService) List(ctx context.Context, actor *domain.User, input TicketListInput) ([]domain.Ticket, PageMeta, error) {
	if actor == nil {
		return nil, PageMeta{}, apperrors.NewUnauthorized("authentication required")
	}
	if !actor.Role.IsStaff() {
		input.RequesterID = actor.ID
	}
	filter, page, pageSize := s.normalizeFilter(input)

	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, PageMeta{}, apperrors.MapError(err)
	}
	total, err := s.tickets.Count(ctx, filter)
	if err != nil {
		return nil, PageMeta{}, apperrors.MapError(err)
	}
	return tickets, PageMeta{Total: total, Page: page, PageSize: pageSize}, nil
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject       string
	Description   string
	CategoryID    *string
	SubcategoryID *string
	Location      string
	ContactType   string
	Impact        int
	Urgency       int
	RequesterID   string
}

// Create opens a new ticket. Staff may create on behalf of another requester;
// customers always create for themselves.
func (s *TicketService) Create(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject required", nil)
	}

	requesterID := actor.ID
	if actor.Role.IsStaff() && input.RequesterID != "" {
		requesterID = input.RequesterID
	}

	impact := input.Impact
	if impact == 0 {
		impact = 2
	}
	urgency := input.Urgency
	if urgency == 0 {
		urgency = 2
	}
	if !domain.ValidSeverity(impact) || !domain.ValidSeverity(urgency) {
		return nil, apperrors.NewValidationError("impact and urgency must be between 1 and 4", map[string]any{
			"impact":  input.Impact,
			"urgency": input.Urgency,
		})
	}

	ticket := &domain.Ticket{
		RequesterID:   requesterID,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Subject:       subject,
		Description:   strings.TrimSpace(input.Description),
		Location:      strings.TrimSpace(input.Location),
		ContactType:   strings.TrimSpace(input.ContactType),
		Status:        domain.TicketStatusNew,
		Impact:        impact,
		Urgency:       urgency,
		Priority:      domain.DerivePriority(impact, urgency),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			RequesterID:  ticket.RequesterID,
			TicketNumber: ticket.Number,
			Priority:     ticket.Priority,
			Subject:      ticket.Subject,
		},
	})
	return ticket, nil
}

// Get fetches a ticket, enforcing customer ownership.
func (s *TicketService) Get(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := s.canRead(actor, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// NextNumber previews the next display ticket number.
func (s *TicketService) NextNumber(ctx context.Context, actor *domain.User) (string, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return "", apperrors.NewForbidden("staff role required")
	}
	number, err := s.tickets.NextNumber(ctx)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	return number, nil
}

// TicketUpdateInput is a partial update; nil pointers leave fields untouched.
type TicketUpdateInput struct {
	Subject           *string
	Description       *string
	Location          *string
	ContactType       *string
	CategoryID        *string
	SubcategoryID     *string
	AssignmentGroupID *string
	AssigneeID        *string
	ClearAssignee     bool
	Impact            *int
	Urgency           *int
	Status            *domain.TicketStatus
	Resolution        *string
}

func (in TicketUpdateInput) touchesStaffFields() bool {
	return in.CategoryID != nil || in.SubcategoryID != nil || in.AssignmentGroupID != nil ||
		in.AssigneeID != nil || in.ClearAssignee || in.Impact != nil || in.Urgency != nil ||
		in.Status != nil || in.Resolution != nil
}

// Update applies a role-gated partial update. Customers may change subject,
// description, location and contact type on their own still-open tickets;
// staff may change everything. Priority is re-derived whenever impact or
// urgency moves.
func (s *TicketService) Update(ctx context.Context, actor *domain.User, ticketID string, input TicketUpdateInput) (*domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := s.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsStaff() {
		if ticket.RequesterID != actor.ID {
			return nil, apperrors.NewForbidden("not the ticket requester")
		}
		if !ticket.Editable() {
			return nil, apperrors.NewConflict("ticket is no longer editable", map[string]any{"status": ticket.Status})
		}
		if input.touchesStaffFields() {
			return nil, apperrors.NewForbidden("field reserved for staff")
		}
	}

	oldStatus := ticket.Status
	oldPriority := ticket.Priority
	oldAssignee := ticket.AssigneeID

	if input.Subject != nil {
		subject := strings.TrimSpace(*input.Subject)
		if subject == "" {
			return nil, apperrors.NewValidationError("subject cannot be empty", nil)
		}
		ticket.Subject = subject
	}
	if input.Description != nil {
		ticket.Description = strings.TrimSpace(*input.Description)
	}
	if input.Location != nil {
		ticket.Location = strings.TrimSpace(*input.Location)
	}
	if input.ContactType != nil {
		ticket.ContactType = strings.TrimSpace(*input.ContactType)
	}
	if input.CategoryID != nil {
		ticket.CategoryID = optional(*input.CategoryID)
	}
	if input.SubcategoryID != nil {
		ticket.SubcategoryID = optional(*input.SubcategoryID)
	}
	if input.AssignmentGroupID != nil {
		ticket.AssignmentGroupID = optional(*input.AssignmentGroupID)
	}
	if input.ClearAssignee {
		ticket.AssigneeID = nil
	} else if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, *input.AssigneeID); err != nil {
			return nil, err
		}
		ticket.AssigneeID = input.AssigneeID
	}
	if input.Impact != nil || input.Urgency != nil {
		if input.Impact != nil {
			if !domain.ValidSeverity(*input.Impact) {
				return nil, apperrors.NewValidationError("impact must be between 1 and 4", nil)
			}
			ticket.Impact = *input.Impact
		}
		if input.Urgency != nil {
			if !domain.ValidSeverity(*input.Urgency) {
				return nil, apperrors.NewValidationError("urgency must be between 1 and 4", nil)
			}
			ticket.Urgency = *input.Urgency
		}
		ticket.Priority = domain.DerivePriority(ticket.Impact, ticket.Urgency)
	}
	if input.Resolution != nil {
		ticket.Resolution = optional(*input.Resolution)
	}
	if input.Status != nil {
		if err := applyStatus(ticket, *input.Status); err != nil {
			return nil, err
		}
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.recordAndPublishChanges(ctx, actor.ID, ticket, oldStatus, oldPriority, oldAssignee)
	return ticket, nil
}

// Quick actions: canned status transitions (spec'd as single-field updates).

// Resolve marks the ticket resolved, optionally recording a resolution text.
func (s *TicketService) Resolve(ctx context.Context, actor *domain.User, ticketID, resolution string) (*domain.Ticket, error) {
	input := TicketUpdateInput{Status: statusPtr(domain.TicketStatusResolved)}
	if strings.TrimSpace(resolution) != "" {
		input.Resolution = &resolution
	}
	return s.staffTransition(ctx, actor, ticketID, input)
}

// Close closes a resolved ticket. The requester may also close their own.
func (s *TicketService) Close(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	if actor != nil && !actor.Role.IsStaff() {
		ticket, err := s.loadTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		if ticket.RequesterID != actor.ID {
			return nil, apperrors.NewForbidden("not the ticket requester")
		}
		oldStatus := ticket.Status
		if err := applyStatus(ticket, domain.TicketStatusClosed); err != nil {
			return nil, err
		}
		if err := s.tickets.Update(ctx, ticket); err != nil {
			return nil, apperrors.MapError(err)
		}
		s.recordAndPublishChanges(ctx, actor.ID, ticket, oldStatus, ticket.Priority, ticket.AssigneeID)
		return ticket, nil
	}
	return s.staffTransition(ctx, actor, ticketID, TicketUpdateInput{Status: statusPtr(domain.TicketStatusClosed)})
}

// Reopen puts a resolved or closed ticket back in progress.
func (s *TicketService) Reopen(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	return s.staffTransition(ctx, actor, ticketID, TicketUpdateInput{Status: statusPtr(domain.TicketStatusInProgress)})
}

// StartProgress moves the ticket to in-progress.
func (s *TicketService) StartProgress(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	return s.staffTransition(ctx, actor, ticketID, TicketUpdateInput{Status: statusPtr(domain.TicketStatusInProgress)})
}

func (s *TicketService) staffTransition(ctx context.Context, actor *domain.User, ticketID string, input TicketUpdateInput) (*domain.Ticket, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	return s.Update(ctx, actor, ticketID, input)
}

// Delete removes a ticket. Admin only; customers never delete (spec rule).
func (s *TicketService) Delete(ctx context.Context, actor *domain.User, ticketID string) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticketID,
		ActorID:  actor.ID,
	})
	return nil
}

// AddComment appends a thread entry. Work notes (internal) are staff only;
// customers may only comment on their own tickets.
func (s *TicketService) AddComment(ctx context.Context, actor *domain.User, ticketID, body string, internal bool) (*domain.Comment, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("body required", nil)
	}
	ticket, err := s.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsStaff() {
		if ticket.RequesterID != actor.ID {
			return nil, apperrors.NewForbidden("not the ticket requester")
		}
		if internal {
			return nil, apperrors.NewForbidden("work notes are staff only")
		}
	}

	comment := &domain.Comment{
		TicketID: ticket.ID,
		AuthorID: actor.ID,
		Body:     body,
		Internal: internal,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommented,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCommentedPayload{
			RequesterID: ticket.RequesterID,
			CommentID:   comment.ID,
			Internal:    comment.Internal,
			BodyPreview: stringPreview(comment.Body, 120),
		},
	})
	return comment, nil
}

// ListComments returns the ticket thread, filtering work notes for customers.
func (s *TicketService) ListComments(ctx context.Context, actor *domain.User, ticketID string) ([]domain.Comment, error) {
	ticket, err := s.loadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if err := s.canRead(actor, ticket); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if actor.Role.IsStaff() {
		return comments, nil
	}
	visible := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.Internal {
			continue
		}
		visible = append(visible, comment)
	}
	return visible, nil
}

// UpdateComment edits a comment's body. Author or admin only.
func (s *TicketService) UpdateComment(ctx context.Context, actor *domain.User, ticketID, commentID, body string) (*domain.Comment, error) {
	comment, err := s.loadComment(ctx, actor, ticketID, commentID)
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("body required", nil)
	}
	comment.Body = body
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Author or admin only.
func (s *TicketService) DeleteComment(ctx context.Context, actor *domain.User, ticketID, commentID string) error {
	comment, err := s.loadComment(ctx, actor, ticketID, commentID)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListHistory returns the audit trail. Staff only.
func (s *TicketService) ListHistory(ctx context.Context, actor *domain.User, ticketID string, limit, offset int) ([]domain.TicketHistory, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	if _, err := s.loadTicket(ctx, ticketID); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByTicket(ctx, ticketID, limit, offset)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

func (s *TicketService) loadTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) loadComment(ctx context.Context, actor *domain.User, ticketID, commentID string) (*domain.Comment, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
		}
		return nil, apperrors.MapError(err)
	}
	if comment.TicketID != ticketID {
		return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
	}
	if comment.AuthorID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("not the comment author")
	}
	return comment, nil
}

func (s *TicketService) canRead(actor *domain.User, ticket *domain.Ticket) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role.IsStaff() || ticket.RequesterID == actor.ID {
		return nil
	}
	return apperrors.NewForbidden("not the ticket requester")
}

func (s *TicketService) checkAssignee(ctx context.Context, assigneeID string) error {
	assignee, err := s.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("assignee", map[string]any{"user_id": assigneeID})
		}
		return apperrors.MapError(err)
	}
	if !assignee.Role.IsStaff() {
		return apperrors.NewValidationError("assignee must be staff", map[string]any{"user_id": assigneeID})
	}
	if !assignee.Active {
		return apperrors.NewConflict("assignee inactive", map[string]any{"user_id": assigneeID})
	}
	return nil
}

func applyStatus(ticket *domain.Ticket, next domain.TicketStatus) error {
	if !domain.KnownStatus(next) {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": next})
	}
	if !domain.ValidTransition(ticket.Status, next) {
		return apperrors.NewConflict("invalid status transition", map[string]any{
			"from": ticket.Status,
			"to":   next,
		})
	}
	if next == domain.TicketStatusClosed {
		now := time.Now()
		ticket.ClosedAt = &now
	} else if ticket.ClosedAt != nil {
		ticket.ClosedAt = nil
	}
	ticket.Status = next
	return nil
}

func (s *TicketService) recordAndPublishChanges(ctx context.Context, actorID string, ticket *domain.Ticket, oldStatus domain.TicketStatus, oldPriority domain.TicketPriority, oldAssignee *string) {
	if oldStatus != ticket.Status {
		s.recordHistory(ctx, actorID, ticket.ID, domain.ChangeTypeStatus,
			map[string]any{"status": oldStatus},
			map[string]any{"status": ticket.Status})
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			ActorID:  actorID,
			Payload: events.TicketStatusChangedPayload{
				RequesterID: ticket.RequesterID,
				OldStatus:   oldStatus,
				NewStatus:   ticket.Status,
			},
		})
	}
	if oldPriority != ticket.Priority {
		s.recordHistory(ctx, actorID, ticket.ID, domain.ChangeTypePriority,
			map[string]any{"priority": oldPriority},
			map[string]any{"priority": ticket.Priority})
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketPriorityChanged,
			TicketID: ticket.ID,
			ActorID:  actorID,
			Payload: events.TicketPriorityChangedPayload{
				OldPriority: oldPriority,
				NewPriority: ticket.Priority,
			},
		})
	}
	if !equalPtr(oldAssignee, ticket.AssigneeID) {
		s.recordHistory(ctx, actorID, ticket.ID, domain.ChangeTypeAssignee,
			map[string]any{"assignee_id": derefOrNil(oldAssignee)},
			map[string]any{"assignee_id": derefOrNil(ticket.AssigneeID)})
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			ActorID:  actorID,
			Payload: events.TicketAssignedPayload{
				AssigneeID:        ticket.AssigneeID,
				AssignmentGroupID: ticket.AssignmentGroupID,
			},
		})
	}
}

func (s *TicketService) recordHistory(ctx context.Context, actorID, ticketID string, changeType domain.TicketChangeType, oldValue, newValue map[string]any) {
	if s.history == nil {
		return
	}
	entry := &domain.TicketHistory{
		TicketID:    ticketID,
		ChangedByID: &actorID,
		ChangeType:  changeType,
		OldValue:    oldValue,
		NewValue:    newValue,
	}
	_ = s.history.Create(ctx, entry)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func optional(val string) *string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func statusPtr(s domain.TicketStatus) *domain.TicketStatus {
	return &s
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func derefOrNil(val *string) any {
	if val == nil {
		return nil
	}
	return *val
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
