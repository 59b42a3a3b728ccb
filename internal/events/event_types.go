package events

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated         EventType = "ticket_created"
	EventTicketStatusChanged   EventType = "ticket_status_changed"
	EventTicketPriorityChanged EventType = "ticket_priority_changed"
	EventTicketAssigned        EventType = "ticket_assigned"
	EventTicketCommented       EventType = "ticket_commented"
	EventTicketDeleted         EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	RequesterID  string                `json:"requester_id"`
	TicketNumber string                `json:"ticket_number"`
	Priority     domain.TicketPriority `json:"priority"`
	Subject      string                `json:"subject"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	RequesterID string              `json:"requester_id"`
	OldStatus   domain.TicketStatus `json:"old_status"`
	NewStatus   domain.TicketStatus `json:"new_status"`
}

// TicketPriorityChangedPayload payload.
type TicketPriorityChangedPayload struct {
	OldPriority domain.TicketPriority `json:"old_priority"`
	NewPriority domain.TicketPriority `json:"new_priority"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID        *string `json:"assignee_id,omitempty"`
	AssignmentGroupID *string `json:"assignment_group_id,omitempty"`
}

// TicketCommentedPayload payload.
type TicketCommentedPayload struct {
	RequesterID string `json:"requester_id"`
	CommentID   string `json:"comment_id"`
	Internal    bool   `json:"internal"`
	BodyPreview string `json:"body_preview"`
}
