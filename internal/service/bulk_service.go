package service

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// BulkAction enumerates batch operations over a ticket selection.
type BulkAction string

const (
	BulkActionAssign      BulkAction = "assign"
	BulkActionAssignToMe  BulkAction = "assign_to_me"
	BulkActionSetStatus   BulkAction = "set_status"
	BulkActionSetPriority BulkAction = "set_priority"
	BulkActionDelete      BulkAction = "delete"
)

// BulkRequest describes one batch operation.
type BulkRequest struct {
	Action     BulkAction
	TicketIDs  []string
	AssigneeID string
	Status     domain.TicketStatus
	Priority   domain.TicketPriority
}

// BulkItemResult is the per-ticket outcome of a batch operation.
type BulkItemResult struct {
	TicketID string
	OK       bool
	Error    string
}

// BulkService fans a batch action out over the selection with bounded
// concurrency and collects per-item results. There is no rollback: items that
// succeeded stay applied when others fail.
type BulkService struct {
	tickets        *TicketService
	maxConcurrency int
}

// NewBulkService constructs the service.
func NewBulkService(tickets *TicketService, cfg config.WorkflowConfig) *BulkService {
	max := cfg.BulkMaxConcurrency
	if max <= 0 {
		max = 8
	}
	return &BulkService{tickets: tickets, maxConcurrency: max}
}

// Execute runs the batch. Staff only; delete additionally requires admin,
// which the per-item Delete call enforces.
func (s *BulkService) Execute(ctx context.Context, actor *domain.User, req BulkRequest) ([]BulkItemResult, error) {
	if actor == nil || !actor.Role.IsStaff() {
		return nil, apperrors.NewForbidden("staff role required")
	}
	if len(req.TicketIDs) == 0 {
		return nil, apperrors.NewValidationError("ticket_ids required", nil)
	}

	apply, err := s.itemFunc(actor, req)
	if err != nil {
		return nil, err
	}

	results := make([]BulkItemResult, len(req.TicketIDs))
	sem := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	for i, ticketID := range req.TicketIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, id string) {
			defer wg.Done()
			defer func() { <-sem }()

			result := BulkItemResult{TicketID: id, OK: true}
			if err := apply(ctx, id); err != nil {
				result.OK = false
				result.Error = apperrors.ToDomainError(err).Message
			}
			results[idx] = result
		}(i, ticketID)
	}
	wg.Wait()

	return results, nil
}

func (s *BulkService) itemFunc(actor *domain.User, req BulkRequest) (func(context.Context, string) error, error) {
	switch req.Action {
	case BulkActionAssign:
		if req.AssigneeID == "" {
			return nil, apperrors.NewValidationError("assignee_id required", nil)
		}
		assigneeID := req.AssigneeID
		return func(ctx context.Context, ticketID string) error {
			_, err := s.tickets.Update(ctx, actor, ticketID, TicketUpdateInput{AssigneeID: &assigneeID})
			return err
		}, nil

	case BulkActionAssignToMe:
		// assign-to-me also moves the ticket to in-progress, except when it
		// is already there.
		return func(ctx context.Context, ticketID string) error {
			ticket, err := s.tickets.Get(ctx, actor, ticketID)
			if err != nil {
				return err
			}
			input := TicketUpdateInput{AssigneeID: &actor.ID}
			if ticket.Status != domain.TicketStatusInProgress {
				input.Status = statusPtr(domain.TicketStatusInProgress)
			}
			_, err = s.tickets.Update(ctx, actor, ticketID, input)
			return err
		}, nil

	case BulkActionSetStatus:
		if !domain.KnownStatus(req.Status) {
			return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
		}
		status := req.Status
		return func(ctx context.Context, ticketID string) error {
			_, err := s.tickets.Update(ctx, actor, ticketID, TicketUpdateInput{Status: &status})
			return err
		}, nil

	case BulkActionSetPriority:
		if !domain.KnownPriority(req.Priority) {
			return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": req.Priority})
		}
		impact, urgency := severityForPriority(req.Priority)
		return func(ctx context.Context, ticketID string) error {
			_, err := s.tickets.Update(ctx, actor, ticketID, TicketUpdateInput{Impact: &impact, Urgency: &urgency})
			return err
		}, nil

	case BulkActionDelete:
		return func(ctx context.Context, ticketID string) error {
			return s.tickets.Delete(ctx, actor, ticketID)
		}, nil

	default:
		return nil, apperrors.NewValidationError("unknown bulk action", map[string]any{"action": req.Action})
	}
}

// severityForPriority picks the impact/urgency pair whose derivation yields
// the requested priority, keeping the triad consistent after a direct set.
func severityForPriority(p domain.TicketPriority) (int, int) {
	switch p {
	case domain.TicketPriorityLow:
		return 1, 1
	case domain.TicketPriorityMedium:
		return 2, 2
	case domain.TicketPriorityHigh:
		return 3, 3
	default:
		return 4, 4
	}
}
