package setup

import (
	"context"
	"log"

	"github.com/designerscolony/colony/internal/database"
	"github.com/designerscolony/colony/internal/kv"
	"github.com/designerscolony/colony/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies needed by the application.
// Each field represents a subsystem that needs initialization and cleanup.
type App struct {
	Config *config.Config  // Application configuration
	Logger *zap.Logger     // Main application logger
	DB     database.Client // Database connection pool
	KV     *kv.Manager     // Redis connection manager
}

// InitializeApp bootstraps all application dependencies in the correct
// order, ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context) (*App, error) {
	// Load app configuration
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, err := NewLogger(&cfg.Debug)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", zap.String("dir", configDir))

	// Redis manager provides connection pools for the key-value subsystems
	kvManager := kv.NewManager(&cfg.Redis, logger)

	// Initialize database with automatic migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, logger, cfg.Debug.QueryLogging, true)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		KV:     kvManager,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse
// initialization order. Logs but does not fail on cleanup errors.
func (a *App) Cleanup() {
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	a.KV.Close()

	// Sync buffered logs before shutdown
	if err := a.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}
}
