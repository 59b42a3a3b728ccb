package domain

import "time"

// CatalogItem is an orderable entry in the service catalog.
type CatalogItem struct {
	ID          string
	Name        string
	Description string
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceRequestStatus enumerates catalog request states.
type ServiceRequestStatus string

const (
	ServiceRequestSubmitted ServiceRequestStatus = "SUBMITTED"
	ServiceRequestApproved  ServiceRequestStatus = "APPROVED"
	ServiceRequestRejected  ServiceRequestStatus = "REJECTED"
	ServiceRequestFulfilled ServiceRequestStatus = "FULFILLED"
)

// KnownServiceRequestStatus reports membership in the status enum.
func KnownServiceRequestStatus(s ServiceRequestStatus) bool {
	switch s {
	case ServiceRequestSubmitted, ServiceRequestApproved, ServiceRequestRejected, ServiceRequestFulfilled:
		return true
	}
	return false
}

// ServiceRequest is a customer's order against a catalog item.
type ServiceRequest struct {
	ID          string
	ItemID      string
	RequesterID string
	Status      ServiceRequestStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
