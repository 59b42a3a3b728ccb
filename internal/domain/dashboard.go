package domain

import "time"

// StatusCount is a per-status aggregate row.
type StatusCount struct {
	Status TicketStatus
	Count  int64
}

// CompanyCount is a per-company aggregate row, grouped over requesters.
type CompanyCount struct {
	Company string
	Count   int64
}

// MonthCount is a created-tickets-per-month aggregate row.
type MonthCount struct {
	Month time.Time
	Count int64
}

// DashboardStats is the aggregate payload behind the dashboard endpoints.
type DashboardStats struct {
	Total     int64
	ByStatus  []StatusCount
	ByCompany []CompanyCount
	Monthly   []MonthCount
	Recent    []Ticket
}
