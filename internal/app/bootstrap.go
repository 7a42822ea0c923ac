package app

import (
	"fmt"
	"log"
	"strings"

	"cv-smart-hire/internal/config"
	"cv-smart-hire/internal/delivery/http/handler"
	"cv-smart-hire/internal/delivery/http/middleware"
	"cv-smart-hire/internal/delivery/http/routes"
	"cv-smart-hire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)

	registry := &routes.Registry{
		Health:        handler.NewHealthHandler(c.DB),
		Candidates:    handler.NewCandidateHandler(c.CandidateUC),
		Positions:     handler.NewPositionHandler(c.PositionUC, c.CandidateUC),
		Notifications: handler.NewNotificationHandler(c.NotificationUC),
		Uploads:       handler.NewUploadHandler(c.IngestionUC, c.UploadUC),
		Exports:       handler.NewExportHandler(c.ExportUC),
		Stats:         handler.NewStatsHandler(c.StatsUC),
		WS:            ws.NewHandler(c.Hub, logger),
	}
	registry.Register(f)

	cleanup := func() error {
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
