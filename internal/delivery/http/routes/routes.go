package routes

import (
	"cv-smart-hire/internal/delivery/http/handler"
	"cv-smart-hire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every HTTP handler and wires the /api surface.
type Registry struct {
	Health        *handler.HealthHandler
	Candidates    *handler.CandidateHandler
	Positions     *handler.PositionHandler
	Notifications *handler.NotificationHandler
	Uploads       *handler.UploadHandler
	Exports       *handler.ExportHandler
	Stats         *handler.StatsHandler
	WS            *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")

	r.Candidates.RegisterRoutes(api.Group("/candidates"))
	r.Positions.RegisterRoutes(api.Group("/positions"))
	r.Notifications.RegisterRoutes(api.Group("/notifications"))

	api.Get("/active-positions", r.Positions.HandleListActive)

	api.Post("/upload", r.Uploads.HandleUpload)
	api.Get("/uploads", r.Uploads.HandleListUploads)

	api.Get("/exports", r.Exports.HandleExport)
	api.Get("/stats", r.Stats.HandleOverview)

	if r.WS != nil {
		api.Get("/ws", r.WS.HandleNotificationsWS)
	}
}
