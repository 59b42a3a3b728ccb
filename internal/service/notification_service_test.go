package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
)

func newNotificationFixture() (*NotificationService, *fakeNotificationRepo, events.Dispatcher) {
	repo := newFakeNotificationRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, dispatcher, zap.NewNop())
	svc.RegisterHandlers()
	return svc, repo, dispatcher
}

func TestAssignmentEventCreatesNotification(t *testing.T) {
	svc, _, dispatcher := newNotificationFixture()
	ctx := context.Background()
	assignee := "emp-2"

	err := dispatcher.Publish(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: "ticket-1",
		ActorID:  "emp-1",
		Payload:  events.TicketAssignedPayload{AssigneeID: &assignee},
	})
	require.NoError(t, err)

	items, unread, err := svc.List(ctx, &domain.User{ID: assignee, Role: domain.RoleEmployee}, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), unread)
	assert.Equal(t, domain.NotificationTicketAssigned, items[0].Type)
	assert.Equal(t, "/tickets/ticket-1", items[0].Link)
}

func TestSelfAssignmentDoesNotNotify(t *testing.T) {
	svc, _, dispatcher := newNotificationFixture()
	ctx := context.Background()
	assignee := "emp-1"

	err := dispatcher.Publish(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: "ticket-1",
		ActorID:  "emp-1",
		Payload:  events.TicketAssignedPayload{AssigneeID: &assignee},
	})
	require.NoError(t, err)

	items, _, err := svc.List(ctx, &domain.User{ID: assignee, Role: domain.RoleEmployee}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStatusChangeNotifiesRequesterOnly(t *testing.T) {
	svc, _, dispatcher := newNotificationFixture()
	ctx := context.Background()

	err := dispatcher.Publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: "ticket-1",
		ActorID:  "emp-1",
		Payload: events.TicketStatusChangedPayload{
			RequesterID: "cust-1",
			OldStatus:   domain.TicketStatusNew,
			NewStatus:   domain.TicketStatusInProgress,
		},
	})
	require.NoError(t, err)

	items, _, err := svc.List(ctx, &domain.User{ID: "cust-1", Role: domain.RoleCustomer}, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.NotificationTicketStatus, items[0].Type)
}

func TestInternalCommentsNeverNotifyRequester(t *testing.T) {
	svc, _, dispatcher := newNotificationFixture()
	ctx := context.Background()

	err := dispatcher.Publish(ctx, events.Event{
		Type:     events.EventTicketCommented,
		TicketID: "ticket-1",
		ActorID:  "emp-1",
		Payload: events.TicketCommentedPayload{
			RequesterID: "cust-1",
			CommentID:   "comment-1",
			Internal:    true,
			BodyPreview: "work note",
		},
	})
	require.NoError(t, err)

	items, _, err := svc.List(ctx, &domain.User{ID: "cust-1", Role: domain.RoleCustomer}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMarkReadIsScopedToOwner(t *testing.T) {
	svc, repo, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{
		UserID: "cust-1",
		Type:   domain.NotificationTicketStatus,
		Title:  "Ticket status updated",
	}))

	err := svc.MarkRead(ctx, &domain.User{ID: "cust-2", Role: domain.RoleCustomer}, "notification-1")
	require.Error(t, err)

	require.NoError(t, svc.MarkRead(ctx, &domain.User{ID: "cust-1", Role: domain.RoleCustomer}, "notification-1"))
	_, unread, err := svc.List(ctx, &domain.User{ID: "cust-1", Role: domain.RoleCustomer}, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkAllRead(t *testing.T) {
	svc, repo, _ := newNotificationFixture()
	ctx := context.Background()
	owner := &domain.User{ID: "cust-1", Role: domain.RoleCustomer}

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Notification{
			UserID: owner.ID,
			Type:   domain.NotificationTicketComment,
			Title:  "New comment on your ticket",
		}))
	}

	require.NoError(t, svc.MarkAllRead(ctx, owner))
	_, unread, err := svc.List(ctx, owner, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
