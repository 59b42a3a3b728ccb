package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// StatusSliceResponse is a by-status count with its share of the total.
type StatusSliceResponse struct {
	Status  domain.TicketStatus `json:"status"`
	Count   int64               `json:"count"`
	Percent float64             `json:"percent"`
}

// CompanySliceResponse is a by-company count with its share of the total.
type CompanySliceResponse struct {
	Company string  `json:"company"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// MonthBucketResponse is one created-per-month data point.
type MonthBucketResponse struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// DashboardResponse is the aggregate dashboard view.
type DashboardResponse struct {
	Total     int64                  `json:"total"`
	ByStatus  []StatusSliceResponse  `json:"by_status"`
	ByCompany []CompanySliceResponse `json:"by_company"`
	Monthly   []MonthBucketResponse  `json:"monthly"`
	Recent    []TicketSummary        `json:"recent"`
}
