package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CatalogItemRequest is a catalog item creation payload.
type CatalogItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

// CatalogItemResponse is an orderable catalog entry.
type CatalogItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

// ServiceRequestCreate is a customer order payload.
type ServiceRequestCreate struct {
	ItemID string `json:"item_id"`
	Notes  string `json:"notes"`
}

// ServiceRequestStatusUpdate moves a request through its workflow.
type ServiceRequestStatusUpdate struct {
	Status domain.ServiceRequestStatus `json:"status"`
	Notes  *string                     `json:"notes"`
}

// ServiceRequestResponse is a filed catalog order.
type ServiceRequestResponse struct {
	ID          string                      `json:"id"`
	ItemID      string                      `json:"item_id"`
	RequesterID string                      `json:"requester_id"`
	Status      domain.ServiceRequestStatus `json:"status"`
	Notes       string                      `json:"notes"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
