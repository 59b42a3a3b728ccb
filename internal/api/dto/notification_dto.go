package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// NotificationResponse is a single inbox entry.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Link      string                  `json:"link"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse pairs the inbox page with the unread total.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int64                  `json:"unread"`
}
