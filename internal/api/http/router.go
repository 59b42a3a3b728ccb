package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	Bulk           *handlers.BulkHandler
	Dashboard      *handlers.DashboardHandler
	Notifications  *handlers.NotificationsHandler
	Knowledge      *handlers.KnowledgeHandler
	Catalog        *handlers.CatalogHandler
	Lookups        *handlers.LookupHandler
	Bookmarks      *handlers.BookmarksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users")
	users.Get("/me", cfg.Users.Me)
	users.Put("/me", cfg.Users.UpdateMe)
	users.Get("", auth.RequireAdmin(), cfg.Users.ListUsers)
	users.Post("", auth.RequireAdmin(), cfg.Users.CreateUser)
	users.Put("/:id", auth.RequireAdmin(), cfg.Users.UpdateUser)

	tickets := protected.Group("/tickets")
	tickets.Get("", cfg.Tickets.ListTickets)
	tickets.Post("", cfg.Tickets.CreateTicket)
	tickets.Get("/next-number", auth.RequireStaff(), cfg.Tickets.NextNumber)
	tickets.Get("/export", auth.RequireStaff(), cfg.Tickets.ExportTickets)
	tickets.Post("/bulk", auth.RequireStaff(), cfg.Bulk.Execute)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Put("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", auth.RequireAdmin(), cfg.Tickets.DeleteTicket)
	tickets.Post("/:id/resolve", auth.RequireStaff(), cfg.Tickets.ResolveTicket)
	tickets.Post("/:id/close", cfg.Tickets.CloseTicket)
	tickets.Post("/:id/reopen", auth.RequireStaff(), cfg.Tickets.ReopenTicket)
	tickets.Post("/:id/start", auth.RequireStaff(), cfg.Tickets.StartProgress)
	tickets.Get("/:id/comments", cfg.Tickets.ListComments)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)
	tickets.Put("/:id/comments/:commentId", cfg.Tickets.UpdateComment)
	tickets.Delete("/:id/comments/:commentId", cfg.Tickets.DeleteComment)
	tickets.Get("/:id/history", auth.RequireStaff(), cfg.Tickets.ListHistory)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/admin", auth.RequireStaff(), cfg.Dashboard.AdminStats)
	dashboard.Get("/customer", cfg.Dashboard.CustomerStats)

	notifications := protected.Group("/notifications")
	notifications.Get("", cfg.Notifications.List)
	notifications.Post("/read-all", cfg.Notifications.MarkAllRead)
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)

	knowledge := protected.Group("/knowledge")
	knowledge.Get("/articles", cfg.Knowledge.ListArticles)
	knowledge.Post("/articles", auth.RequireStaff(), cfg.Knowledge.CreateArticle)
	knowledge.Get("/articles/:id", cfg.Knowledge.GetArticle)
	knowledge.Put("/articles/:id", auth.RequireStaff(), cfg.Knowledge.UpdateArticle)
	knowledge.Get("/categories", cfg.Knowledge.ListCategories)

	services := protected.Group("/services")
	services.Get("/items", cfg.Catalog.ListItems)
	services.Post("/items", auth.RequireStaff(), cfg.Catalog.CreateItem)
	services.Get("/items/:id", cfg.Catalog.GetItem)
	services.Put("/items/:id", auth.RequireStaff(), cfg.Catalog.UpdateItem)
	services.Get("/requests", cfg.Catalog.ListRequests)
	services.Post("/requests", cfg.Catalog.SubmitRequest)
	services.Put("/requests/:id/status", auth.RequireStaff(), cfg.Catalog.UpdateRequestStatus)

	protected.Get("/categories", cfg.Lookups.ListCategories)
	protected.Get("/subcategories", cfg.Lookups.ListSubcategories)
	protected.Get("/assignment-groups", cfg.Lookups.ListAssignmentGroups)
	protected.Get("/tags", cfg.Lookups.ListTags)
	protected.Post("/tags", auth.RequireStaff(), cfg.Lookups.CreateTag)

	bookmarks := protected.Group("/bookmarks")
	bookmarks.Get("/favorites", cfg.Bookmarks.ListFavorites)
	bookmarks.Post("/favorites/:ticketId/toggle", cfg.Bookmarks.ToggleFavorite)
	bookmarks.Get("/recent", cfg.Bookmarks.ListRecent)
}
