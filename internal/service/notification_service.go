package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// NotificationService persists inbox entries from domain events and serves
// the notification endpoints.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleTicketAssigned)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketCommented, n.handleTicketCommented)
}

// List returns the caller's notifications.
func (n *NotificationService) List(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Notification, int64, error) {
	if actor == nil {
		return nil, 0, apperrors.NewUnauthorized("authentication required")
	}
	items, err := n.notifications.ListByUser(ctx, actor.ID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	unread, err := n.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, unread, nil
}

// MarkRead flags one of the caller's notifications as read.
func (n *NotificationService) MarkRead(ctx context.Context, actor *domain.User, id string) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := n.notifications.MarkRead(ctx, actor.ID, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// MarkAllRead flags all of the caller's notifications as read.
func (n *NotificationService) MarkAllRead(ctx context.Context, actor *domain.User) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := n.notifications.MarkAllRead(ctx, actor.ID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (n *NotificationService) handleTicketAssigned(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignedPayload)
	if !ok || payload.AssigneeID == nil {
		return nil
	}
	// no note when staff assign tickets to themselves
	if *payload.AssigneeID == event.ActorID {
		return nil
	}
	return n.store(ctx, &domain.Notification{
		UserID:  *payload.AssigneeID,
		Type:    domain.NotificationTicketAssigned,
		Title:   "Ticket assigned to you",
		Message: fmt.Sprintf("Ticket %s has been assigned to you", event.TicketID),
		Link:    ticketLink(event.TicketID),
	})
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok || payload.RequesterID == event.ActorID {
		return nil
	}
	return n.store(ctx, &domain.Notification{
		UserID:  payload.RequesterID,
		Type:    domain.NotificationTicketStatus,
		Title:   "Ticket status updated",
		Message: fmt.Sprintf("Your ticket moved from %s to %s", payload.OldStatus, payload.NewStatus),
		Link:    ticketLink(event.TicketID),
	})
}

func (n *NotificationService) handleTicketCommented(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCommentedPayload)
	if !ok {
		return nil
	}
	// work notes never notify the requester, nor do their own comments
	if payload.Internal || payload.RequesterID == event.ActorID {
		return nil
	}
	return n.store(ctx, &domain.Notification{
		UserID:  payload.RequesterID,
		Type:    domain.NotificationTicketComment,
		Title:   "New comment on your ticket",
		Message: payload.BodyPreview,
		Link:    ticketLink(event.TicketID),
	})
}

func (n *NotificationService) store(ctx context.Context, notification *domain.Notification) error {
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Warn("failed to store notification",
			zap.String("user_id", notification.UserID),
			zap.Error(err))
		return err
	}
	return nil
}

func ticketLink(ticketID string) string {
	return "/tickets/" + ticketID
}
