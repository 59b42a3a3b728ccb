package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func newBulkFixture(t *testing.T) (*BulkService, *ticketFixture) {
	t.Helper()
	f := newTicketFixture(t)
	bulk := NewBulkService(f.service, config.WorkflowConfig{BulkMaxConcurrency: 4})
	return bulk, f
}

func TestBulkExecuteIsStaffOnly(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ticket := f.createTicket(t, customerUser, TicketCreateInput{})

	_, err := bulk.Execute(context.Background(), customerUser, BulkRequest{
		Action:    BulkActionSetStatus,
		TicketIDs: []string{ticket.ID},
		Status:    domain.TicketStatusInProgress,
	})

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestBulkExecuteRequiresSelection(t *testing.T) {
	bulk, _ := newBulkFixture(t)

	_, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{Action: BulkActionAssignToMe})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestBulkSetStatusUpdatesEveryTicket(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		ticket := f.createTicket(t, customerUser, TicketCreateInput{Subject: fmt.Sprintf("issue %d", i)})
		ids = append(ids, ticket.ID)
	}

	results, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    BulkActionSetStatus,
		TicketIDs: ids,
		Status:    domain.TicketStatusInProgress,
	})
	require.NoError(t, err)
	require.Len(t, results, len(ids))

	for i, result := range results {
		assert.Equal(t, ids[i], result.TicketID)
		assert.True(t, result.OK, result.Error)
	}
	for _, id := range ids {
		ticket, err := f.service.Get(context.Background(), employeeUser, id)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketStatusInProgress, ticket.Status)
	}
}

func TestBulkAssignToMeSetsAssigneeAndProgress(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ticket := f.createTicket(t, customerUser, TicketCreateInput{})

	results, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    BulkActionAssignToMe,
		TicketIDs: []string{ticket.ID},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].OK, results[0].Error)

	updated, err := f.service.Get(context.Background(), employeeUser, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, employeeUser.ID, *updated.AssigneeID)
	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
}

func TestBulkSetPriorityKeepsTriadConsistent(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ticket := f.createTicket(t, customerUser, TicketCreateInput{})

	results, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    BulkActionSetPriority,
		TicketIDs: []string{ticket.ID},
		Priority:  domain.TicketPriorityUrgent,
	})
	require.NoError(t, err)
	require.True(t, results[0].OK, results[0].Error)

	updated, err := f.service.Get(context.Background(), employeeUser, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityUrgent, updated.Priority)
	assert.Equal(t, updated.Priority, domain.DerivePriority(updated.Impact, updated.Urgency))
}

func TestBulkCollectsPerItemFailures(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ticket := f.createTicket(t, customerUser, TicketCreateInput{})

	results, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    BulkActionSetStatus,
		TicketIDs: []string{ticket.ID, "missing-ticket"},
		Status:    domain.TicketStatusInProgress,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.NotEmpty(t, results[1].Error)

	// the successful item stays applied
	updated, err := f.service.Get(context.Background(), employeeUser, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
}

func TestBulkDeleteEnforcesAdminPerItem(t *testing.T) {
	bulk, f := newBulkFixture(t)
	ticket := f.createTicket(t, customerUser, TicketCreateInput{})

	results, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    BulkActionDelete,
		TicketIDs: []string{ticket.ID},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK)

	results, err = bulk.Execute(context.Background(), adminUser, BulkRequest{
		Action:    BulkActionDelete,
		TicketIDs: []string{ticket.ID},
	})
	require.NoError(t, err)
	assert.True(t, results[0].OK, results[0].Error)
}

func TestBulkRejectsUnknownAction(t *testing.T) {
	bulk, _ := newBulkFixture(t)

	_, err := bulk.Execute(context.Background(), employeeUser, BulkRequest{
		Action:    "explode",
		TicketIDs: []string{"ticket-1"},
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
