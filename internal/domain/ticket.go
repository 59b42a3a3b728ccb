package domain

import (
	"math"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "NEW"
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusPending    TicketStatus = "PENDING"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
	TicketStatusCancelled  TicketStatus = "CANCELLED"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// Impact and urgency are scored 1 (low) to 4 (critical).
const (
	SeverityScaleMin = 1
	SeverityScaleMax = 4
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID                string
	Number            string
	RequesterID       string
	CategoryID        *string
	SubcategoryID     *string
	AssignmentGroupID *string
	AssigneeID        *string
	Subject           string
	Description       string
	Location          string
	ContactType       string
	Status            TicketStatus
	Impact            int
	Urgency           int
	Priority          TicketPriority
	Resolution        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ClosedAt          *time.Time
}

// ValidSeverity reports whether an impact or urgency score is on the scale.
func ValidSeverity(score int) bool {
	return score >= SeverityScaleMin && score <= SeverityScaleMax
}

// DerivePriority maps an impact/urgency pair onto the priority enum using
// round((impact+urgency)/2). Inputs outside the scale are clamped first so a
// bad pair can never produce an unknown priority.
func DerivePriority(impact, urgency int) TicketPriority {
	impact = clampSeverity(impact)
	urgency = clampSeverity(urgency)
	score := int(math.Round(float64(impact+urgency) / 2))
	switch score {
	case 1:
		return TicketPriorityLow
	case 2:
		return TicketPriorityMedium
	case 3:
		return TicketPriorityHigh
	default:
		return TicketPriorityUrgent
	}
}

func clampSeverity(score int) int {
	if score < SeverityScaleMin {
		return SeverityScaleMin
	}
	if score > SeverityScaleMax {
		return SeverityScaleMax
	}
	return score
}

var allowedTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusNew:        {TicketStatusOpen, TicketStatusInProgress, TicketStatusCancelled},
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusPending, TicketStatusResolved, TicketStatusCancelled},
	TicketStatusInProgress: {TicketStatusPending, TicketStatusResolved, TicketStatusCancelled},
	TicketStatusPending:    {TicketStatusInProgress, TicketStatusResolved, TicketStatusCancelled},
	TicketStatusResolved:   {TicketStatusClosed, TicketStatusInProgress},
	TicketStatusClosed:     {TicketStatusInProgress},
	TicketStatusCancelled:  {},
}

// ValidTransition reports whether a status change is allowed.
func ValidTransition(current, next TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Editable reports whether the requester may still amend the ticket.
func (t *Ticket) Editable() bool {
	switch t.Status {
	case TicketStatusResolved, TicketStatusClosed, TicketStatusCancelled:
		return false
	}
	return true
}

// KnownStatus reports whether the value is a member of the status enum.
func KnownStatus(s TicketStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// KnownPriority reports whether the value is a member of the priority enum.
func KnownPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}
