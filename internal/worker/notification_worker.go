package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to ticket
// events. Handlers run inline with the publishing request; this hook
// exists so delivery can move to a background queue without touching
// the services.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification handlers registered")
}
