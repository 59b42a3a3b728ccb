package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePriorityMatrix(t *testing.T) {
	cases := []struct {
		impact  int
		urgency int
		want    TicketPriority
	}{
		{1, 1, TicketPriorityLow},
		{1, 2, TicketPriorityMedium},
		{1, 3, TicketPriorityMedium},
		{1, 4, TicketPriorityHigh}, // 2.5 rounds up
		{2, 2, TicketPriorityMedium},
		{2, 3, TicketPriorityHigh},
		{2, 4, TicketPriorityHigh},
		{3, 3, TicketPriorityHigh},
		{3, 4, TicketPriorityUrgent},
		{4, 4, TicketPriorityUrgent},
		{4, 1, TicketPriorityHigh},
	}
	for _, tc := range cases {
		got := DerivePriority(tc.impact, tc.urgency)
		assert.Equalf(t, tc.want, got, "impact=%d urgency=%d", tc.impact, tc.urgency)
	}
}

func TestDerivePriorityClampsOutOfRange(t *testing.T) {
	assert.Equal(t, TicketPriorityLow, DerivePriority(0, -3))
	assert.Equal(t, TicketPriorityUrgent, DerivePriority(9, 9))
}

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to TicketStatus }{
		{TicketStatusNew, TicketStatusOpen},
		{TicketStatusNew, TicketStatusInProgress},
		{TicketStatusNew, TicketStatusCancelled},
		{TicketStatusOpen, TicketStatusResolved},
		{TicketStatusInProgress, TicketStatusPending},
		{TicketStatusPending, TicketStatusInProgress},
		{TicketStatusResolved, TicketStatusClosed},
		{TicketStatusResolved, TicketStatusInProgress},
		{TicketStatusClosed, TicketStatusInProgress},
	}
	for _, tc := range allowed {
		assert.Truef(t, ValidTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to TicketStatus }{
		{TicketStatusNew, TicketStatusClosed},
		{TicketStatusNew, TicketStatusResolved},
		{TicketStatusClosed, TicketStatusOpen},
		{TicketStatusCancelled, TicketStatusOpen},
		{TicketStatusCancelled, TicketStatusInProgress},
		{TicketStatusPending, TicketStatusOpen},
	}
	for _, tc := range denied {
		assert.Falsef(t, ValidTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestCancelledIsTerminal(t *testing.T) {
	for _, to := range []TicketStatus{
		TicketStatusNew, TicketStatusOpen, TicketStatusInProgress,
		TicketStatusPending, TicketStatusResolved, TicketStatusClosed,
	} {
		assert.False(t, ValidTransition(TicketStatusCancelled, to))
	}
}

func TestEditable(t *testing.T) {
	editable := []TicketStatus{TicketStatusNew, TicketStatusOpen, TicketStatusInProgress, TicketStatusPending}
	for _, status := range editable {
		ticket := Ticket{Status: status}
		assert.Truef(t, ticket.Editable(), "%s should be editable", status)
	}
	frozen := []TicketStatus{TicketStatusResolved, TicketStatusClosed, TicketStatusCancelled}
	for _, status := range frozen {
		ticket := Ticket{Status: status}
		assert.Falsef(t, ticket.Editable(), "%s should not be editable", status)
	}
}

func TestValidSeverity(t *testing.T) {
	for val := 1; val <= 4; val++ {
		assert.True(t, ValidSeverity(val))
	}
	assert.False(t, ValidSeverity(0))
	assert.False(t, ValidSeverity(5))
}

func TestKnownEnums(t *testing.T) {
	assert.True(t, KnownStatus(TicketStatusPending))
	assert.False(t, KnownStatus("ARCHIVED"))
	assert.True(t, KnownPriority(TicketPriorityHigh))
	assert.False(t, KnownPriority("EXTREME"))
	assert.True(t, KnownRole(RoleEmployee))
	assert.False(t, KnownRole("MANAGER"))
}
