package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject       string  `json:"subject"`
	Description   string  `json:"description"`
	CategoryID    *string `json:"category_id"`
	SubcategoryID *string `json:"subcategory_id"`
	Location      string  `json:"location"`
	ContactType   string  `json:"contact_type"`
	Impact        int     `json:"impact"`
	Urgency       int     `json:"urgency"`
	RequesterID   string  `json:"requester_id"`
}

// UpdateTicketRequest is a partial update; absent fields stay untouched.
type UpdateTicketRequest struct {
	Subject           *string              `json:"subject"`
	Description       *string              `json:"description"`
	Location          *string              `json:"location"`
	ContactType       *string              `json:"contact_type"`
	CategoryID        *string              `json:"category_id"`
	SubcategoryID     *string              `json:"subcategory_id"`
	AssignmentGroupID *string              `json:"assignment_group_id"`
	AssigneeID        *string              `json:"assignee_id"`
	ClearAssignee     bool                 `json:"clear_assignee"`
	Impact            *int                 `json:"impact"`
	Urgency           *int                 `json:"urgency"`
	Status            *domain.TicketStatus `json:"status"`
	Resolution        *string              `json:"resolution"`
}

// TicketSummary response.
type TicketSummary struct {
	ID                string                `json:"id"`
	Number            string                `json:"number"`
	RequesterID       string                `json:"requester_id"`
	CategoryID        *string               `json:"category_id"`
	AssignmentGroupID *string               `json:"assignment_group_id"`
	AssigneeID        *string               `json:"assignee_id"`
	Subject           string                `json:"subject"`
	Status            domain.TicketStatus   `json:"status"`
	Priority          domain.TicketPriority `json:"priority"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	ID                string                `json:"id"`
	Number            string                `json:"number"`
	RequesterID       string                `json:"requester_id"`
	CategoryID        *string               `json:"category_id"`
	SubcategoryID     *string               `json:"subcategory_id"`
	AssignmentGroupID *string               `json:"assignment_group_id"`
	AssigneeID        *string               `json:"assignee_id"`
	Subject           string                `json:"subject"`
	Description       string                `json:"description"`
	Location          string                `json:"location"`
	ContactType       string                `json:"contact_type"`
	Status            domain.TicketStatus   `json:"status"`
	Impact            int                   `json:"impact"`
	Urgency           int                   `json:"urgency"`
	Priority          domain.TicketPriority `json:"priority"`
	Resolution        *string               `json:"resolution"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
	ClosedAt          *time.Time            `json:"closed_at"`
}

// TicketPageResponse pairs a ticket page with pagination metadata.
type TicketPageResponse struct {
	Items    []TicketSummary `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CommentRequest payload for creating or editing a thread entry.
type CommentRequest struct {
	Body     string `json:"body"`
	Internal bool   `json:"internal"`
}

// CommentResponse represents a thread entry.
type CommentResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	Internal  bool      `json:"internal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketHistoryResponse represents an audit trail entry.
type TicketHistoryResponse struct {
	ID          string                  `json:"id"`
	ChangeType  domain.TicketChangeType `json:"change_type"`
	ChangedByID *string                 `json:"changed_by_id"`
	OldValue    map[string]any          `json:"old_value"`
	NewValue    map[string]any          `json:"new_value"`
	CreatedAt   time.Time               `json:"created_at"`
}

// ResolveTicketRequest payload.
type ResolveTicketRequest struct {
	Resolution string `json:"resolution"`
}

// BulkTicketRequest describes a batch operation over a selection.
type BulkTicketRequest struct {
	Action     string   `json:"action"`
	TicketIDs  []string `json:"ticket_ids"`
	AssigneeID string   `json:"assignee_id"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
}

// BulkItemResponse is the per-ticket outcome of a batch operation.
type BulkItemResponse struct {
	TicketID string `json:"ticket_id"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}
