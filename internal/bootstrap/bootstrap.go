// Package bootstrap wires configuration, database, services and routes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/karthikv/parentportal/docs" // generated swagger docs
	appControllers "github.com/karthikv/parentportal/internal/app/controllers"
	appMigrations "github.com/karthikv/parentportal/internal/app/migrations"
	appRepos "github.com/karthikv/parentportal/internal/app/repositories"
	appRoutes "github.com/karthikv/parentportal/internal/app/routes"
	appServices "github.com/karthikv/parentportal/internal/app/services"
	"github.com/karthikv/parentportal/internal/config"
	"github.com/karthikv/parentportal/internal/db"
	appMiddleware "github.com/karthikv/parentportal/internal/middleware"
	pkgAuth "github.com/karthikv/parentportal/internal/pkg/auth"
	"github.com/karthikv/parentportal/internal/pkg/helpers"
	"github.com/karthikv/parentportal/internal/pkg/logger"
	"github.com/karthikv/parentportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	AcademicService     *appServices.AcademicService
	RecordsService      *appServices.RecordsService
	ParentService       *appServices.ParentService
	DashboardService    *appServices.DashboardService
	AuthController      *appControllers.AuthController
	AcademicController  *appControllers.AcademicController
	RecordsController   *appControllers.RecordsController
	ParentController    *appControllers.ParentController
	DashboardController *appControllers.DashboardController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally loads the demo dataset.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Partial seed data is not fatal; the portal still serves requests.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	accountStore := appServices.NewAccountStore(dbPool, deps.Repos.UserRepository, deps.Repos.StudentRepository)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ParentRepository,
		accountStore,
		deps.Repos.ParentNotificationRepository,
		deps.JWTService,
		lgr,
	)
	deps.AcademicService = appServices.NewAcademicService(
		deps.Repos.NotificationRepository,
		deps.Repos.TimetableRepository,
	)
	deps.RecordsService = appServices.NewRecordsService(
		deps.Repos.AttendanceRepository,
		deps.Repos.MarkRepository,
		deps.Repos.FeeRepository,
	)
	deps.ParentService = appServices.NewParentService(
		deps.Repos.ParentNotificationRepository,
		deps.Repos.ParentMessageRepository,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.MarkRepository,
		deps.Repos.FeeRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService, lgr)
	deps.RecordsController = appControllers.NewRecordsController(deps.RecordsService, lgr)
	deps.ParentController = appControllers.NewParentController(deps.ParentService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AcademicController,
		deps.RecordsController,
		deps.ParentController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
