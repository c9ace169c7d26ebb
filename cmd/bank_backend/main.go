package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/demobank/bank_ledger_app/internal/adapters/database/pgsql"
	"github.com/demobank/bank_ledger_app/internal/adapters/frankfurter"
	"github.com/demobank/bank_ledger_app/internal/cli"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/demobank/bank_ledger_app/internal/core/services"
	"github.com/demobank/bank_ledger_app/internal/dto"
	"github.com/demobank/bank_ledger_app/internal/handlers"
	"github.com/demobank/bank_ledger_app/internal/middleware"
	"github.com/demobank/bank_ledger_app/pkg/config"
	"github.com/demobank/bank_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Bank Ledger API
// @version 1.0
// @description Minimal ledger with currency conversion backed by the Frankfurter rate API.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		os.Exit(1)
	}

	accountService, conversionService := buildServices(cfg, dbPool)

	if cfg.RunMode == config.RunModeCLI {
		repl := cli.New(accountService, conversionService, os.Stdin, os.Stdout)
		if err := repl.Run(middleware.ContextWithLogger(context.Background(), logger)); err != nil {
			logger.Error("CLI terminated with error", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rateLimiter := limiter.New(limitermemory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	})
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, accountService, conversionService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the service layer with explicit constructor-based
// composition: the account service takes the store and the conversion
// service; the conversion service takes the rate resolver over the fetcher.
func buildServices(cfg *config.Config, dbPool *pgxpool.Pool) (portssvc.AccountSvcFacade, portssvc.ConversionSvc) {
	accountRepo := pgsql.NewAccountRepository(dbPool)
	rateFetcher := frankfurter.NewClient(cfg.RateAPIBaseURL, cfg.RateFetchTimeout)
	rateResolver := services.NewRateResolver(rateFetcher)
	conversionService := services.NewConversionService(rateResolver)
	accountService := services.NewAccountService(accountRepo, conversionService)
	return accountService, conversionService
}

// runMigrations applies all pending "up" migrations using a temporary
// standard sql.DB connection compatible with the main pool.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
