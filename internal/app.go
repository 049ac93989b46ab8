// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "spendtrack/internal/api"
	"spendtrack/internal/api/handler"
	"spendtrack/internal/blobstore"
	"spendtrack/internal/config"
	"spendtrack/internal/migrations"
	"spendtrack/internal/repository"
	"spendtrack/internal/repository/postgres"
	"spendtrack/internal/service"
	"spendtrack/internal/util"
	"spendtrack/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Blobs  blobstore.Store

	// Repositories
	UserRepository    repository.UserRepository
	TokenRepository   repository.TokenRepository
	ProfileRepository repository.ProfileRepository
	ExpenseRepository repository.ExpenseRepository

	// Services
	AuthService    service.AuthService
	ExpenseService service.ExpenseService
	ProfileService service.ProfileService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(ctx, app.DB, migrations.Migrations); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	// 4. Initialize Blob Store
	switch app.Config.BlobStore {
	case config.BlobStoreS3:
		store, err := blobstore.NewS3Store(ctx, app.Config.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 blob store: %w", err)
		}
		app.Blobs = store
	default:
		store, err := blobstore.NewLocalStore(app.Config.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize local blob store: %w", err)
		}
		app.Blobs = store
	}
	app.Logger.Info("Blob store initialized.", "backend", app.Config.BlobStore)

	// 5. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.TokenRepository = postgres.NewTokenRepository(app.DB)
	app.ProfileRepository = postgres.NewProfileRepository(app.DB)
	app.ExpenseRepository = postgres.NewExpenseRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.ProfileRepository,
		app.TokenRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.ExpenseService = service.NewExpenseService(app.DB, app.ExpenseRepository)
	app.ProfileService = service.NewProfileService(app.DB, app.ProfileRepository, app.Blobs, app.Logger)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	expenseHandler := handler.NewExpenseHandler(app.ExpenseService, app.Logger)
	profileHandler := handler.NewProfileHandler(app.ProfileService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, expenseHandler, profileHandler, app.AuthService, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
