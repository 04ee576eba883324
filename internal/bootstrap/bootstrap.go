package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rashed/campschool/internal/app/controllers"
	appMigrations "github.com/rashed/campschool/internal/app/migrations"
	appRepos "github.com/rashed/campschool/internal/app/repositories"
	appRoutes "github.com/rashed/campschool/internal/app/routes"
	appServices "github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/config"
	"github.com/rashed/campschool/internal/db"
	appMiddleware "github.com/rashed/campschool/internal/middleware"
	pkgAuth "github.com/rashed/campschool/internal/pkg/auth"
	"github.com/rashed/campschool/internal/pkg/helpers"
	"github.com/rashed/campschool/internal/pkg/logger"
	"github.com/rashed/campschool/internal/pkg/payment"
	"github.com/rashed/campschool/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       appServices.UserService
	ClassService      appServices.ClassService
	CartService       appServices.CartService
	PaymentService    appServices.PaymentService
	ReportService     appServices.ReportService
	TokenController   *appControllers.TokenController
	UserController    *appControllers.UserController
	ClassController   *appControllers.ClassController
	CartController    *appControllers.CartController
	PaymentController *appControllers.PaymentController
	ReportController  *appControllers.ReportController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	PaymentGateway    payment.Gateway
	Logger            zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.PaymentGateway = payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.CartService = appServices.NewCartService(deps.Repos.SelectedClassRepository)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.PaymentRepository, deps.PaymentGateway)
	deps.ReportService = appServices.NewReportService(deps.Repos.UserRepository, deps.Repos.ClassRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.TokenController = appControllers.NewTokenController(deps.JWTService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.CartController = appControllers.NewCartController(deps.CartService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

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

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.TokenController,
		deps.UserController,
		deps.ClassController,
		deps.CartController,
		deps.PaymentController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}
