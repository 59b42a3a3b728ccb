package domain

import "time"

// NotificationType enumerates notification triggers.
type NotificationType string

const (
	NotificationTicketAssigned NotificationType = "TICKET_ASSIGNED"
	NotificationTicketStatus   NotificationType = "TICKET_STATUS"
	NotificationTicketComment  NotificationType = "TICKET_COMMENT"
)

// Notification is a per-user inbox entry.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Link      string
	Read      bool
	CreatedAt time.Time
}
