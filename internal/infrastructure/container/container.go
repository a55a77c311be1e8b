// Package container wires the application together using Uber FX
package container

import (
	"context"
	"fmt"

	categoryApp "github.com/homecook/cookbook/internal/application/category"
	recipeApp "github.com/homecook/cookbook/internal/application/recipe"
	transferApp "github.com/homecook/cookbook/internal/application/transfer"
	"github.com/homecook/cookbook/internal/infrastructure/config"
	"github.com/homecook/cookbook/internal/infrastructure/http/server"
	gormRepo "github.com/homecook/cookbook/internal/infrastructure/persistence/gorm"
	"github.com/homecook/cookbook/internal/infrastructure/persistence/memory"
	"github.com/homecook/cookbook/internal/infrastructure/persistence/postgres"
	"github.com/homecook/cookbook/internal/infrastructure/persistence/sqlite"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule opens the database selected by config and runs migrations
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		var (
			db  *gorm.DB
			err error
		)

		switch cfg.Database.Driver {
		case "postgres":
			db, err = postgres.Connect(postgres.Config{
				Host:            cfg.Database.Host,
				Port:            cfg.Database.Port,
				User:            cfg.Database.Username,
				Password:        cfg.Database.Password,
				Database:        cfg.Database.Database,
				SSLMode:         cfg.Database.SSLMode,
				MaxOpenConns:    cfg.Database.MaxOpenConns,
				MaxIdleConns:    cfg.Database.MaxIdleConns,
				ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			}, log)
		default:
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			db, err = sqlite.SetupDatabase(cfg.Database.Path, logLevel)
			if err == nil {
				log.Info("Connected to SQLite database",
					zap.String("path", cfg.Database.Path))
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		if cfg.Database.SeedDefaults {
			if err := gormRepo.SeedDefaultCategories(db); err != nil {
				log.Warn("Failed to seed default categories", zap.Error(err))
			}
		}

		return db, nil
	},
)

// CacheModule provides the in-memory cache
var CacheModule = fx.Provide(
	memory.NewCacheRepository,
)

// RepositoryModule provides persistence adapters
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewCategoryRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	fx.Annotate(
		recipeApp.NewService,
		fx.As(new(inbound.RecipeService)),
	),
	fx.Annotate(
		categoryApp.NewService,
		fx.As(new(inbound.CategoryService)),
	),
	fx.Annotate(
		transferApp.NewService,
		fx.As(new(inbound.TransferService)),
	),
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server on application start and
// shuts everything down cleanly on stop.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting cookbook application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down cookbook application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
