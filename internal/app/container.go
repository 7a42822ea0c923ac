package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"cv-smart-hire/internal/config"
	"cv-smart-hire/internal/database"
	"cv-smart-hire/internal/database/migration"
	dbpostgres "cv-smart-hire/internal/database/postgres"
	"cv-smart-hire/internal/database/seeder"
	"cv-smart-hire/internal/infrastructure/cache"
	"cv-smart-hire/internal/repository"
	"cv-smart-hire/internal/repository/memory"
	"cv-smart-hire/internal/usecase"
	"cv-smart-hire/internal/ws"
)

// Container wires repositories, usecases and infrastructure for the chosen
// storage driver. DB stays nil when the memory store is selected.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Candidates    repository.CandidateRepository
	Positions     repository.PositionRepository
	Uploads       repository.UploadRepository
	Notifications repository.NotificationRepository

	IngestionUC    usecase.IngestionUsecase
	CandidateUC    usecase.CandidateUsecase
	PositionUC     usecase.PositionUsecase
	NotificationUC usecase.NotificationUsecase
	UploadUC       usecase.UploadUsecase
	ExportUC       usecase.ExportUsecase
	StatsUC        usecase.StatsUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db

		runner := migration.Runner{Dir: cfg.Storage.MigrationsDir}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		c.Candidates = repository.NewPostgresCandidateRepository(db)
		c.Positions = repository.NewPostgresPositionRepository(db)
		c.Uploads = repository.NewPostgresUploadRepository(db)
		c.Notifications = repository.NewPostgresNotificationRepository(db)

	default:
		store := memory.NewStore()
		c.Candidates = store.Candidates()
		c.Positions = store.Positions()
		c.Uploads = store.Uploads()
		c.Notifications = store.Notifications()
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seedRunner.Run(seedCtx, c.Positions); err != nil {
		c.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	c.Cache = cache.NewRedis(logger)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	c.IngestionUC = usecase.NewIngestionUsecase(c.Candidates, c.Positions, c.Uploads, c.Notifications, nil, c.Cache, logger)
	c.CandidateUC = usecase.NewCandidateUsecase(c.Candidates, c.Positions, c.Notifications, logger)
	c.PositionUC = usecase.NewPositionUsecase(c.Positions)
	c.NotificationUC = usecase.NewNotificationUsecase(c.Notifications)
	c.UploadUC = usecase.NewUploadUsecase(c.Uploads)
	c.ExportUC = usecase.NewExportUsecase(c.Candidates)
	c.StatsUC = usecase.NewStatsUsecase(c.Candidates, c.Uploads, c.Positions, c.Cache)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
