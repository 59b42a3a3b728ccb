package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	historyRepo := repository.NewTicketHistoryRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	lookupRepo := repository.NewLookupRepository(pool)
	knowledgeRepo := repository.NewKnowledgeRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	bookmarkRepo := repository.NewBookmarkRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  ticketRepo,
		CommentRepo: commentRepo,
		HistoryRepo: historyRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
		Workflow:    cfg.Workflow,
	})
	bulkService := service.NewBulkService(ticketService, cfg.Workflow)
	dashboardService := service.NewDashboardService(dashboardRepo, service.NewRedisCache(redis.Client), cfg.Dashboard, logger)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, cfg.Workflow)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	catalogService := service.NewCatalogService(catalogRepo)

	worker.StartNotificationWorker(notificationService, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService, bookmarkService),
		Bulk:           handlers.NewBulkHandler(bulkService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Knowledge:      handlers.NewKnowledgeHandler(knowledgeService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Lookups:        handlers.NewLookupHandler(lookupRepo),
		Bookmarks:      handlers.NewBookmarksHandler(bookmarkService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
