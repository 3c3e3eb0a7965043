package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/handlers"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/notify"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/platform/config"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/repositories/database/pgsql"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/repositories/memory"
	"github.com/Oligens/scarwrite.haiti-sub000/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Scarwrite Backend API
// @version 1.0
// @description Double-entry bookkeeping backend for a retail and payment-services business.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL == "" {
		logger.Info("No database URL configured, using in-memory store")
		repos = memory.NewRepositoryProvider(memory.NewStore())
	} else {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	if err := seedDefaults(ctx, cfg, repos); err != nil {
		logger.Error("Failed to seed defaults", slog.String("error", err.Error()))
		os.Exit(1)
	}

	broadcaster := notify.New()
	svcs := services.NewServiceContainer(cfg, repos, broadcaster)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidations()

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.Metrics(),
	)

	rate := limiter.Rate{Period: time.Minute, Limit: 300}
	limiterInstance := limiter.New(limitermemory.NewStore(), rate)
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs, broadcaster)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// seedDefaults inserts the default chart of accounts and the settings record
// on first boot. Existing rows are left untouched.
func seedDefaults(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) error {
	now := time.Now().UTC()

	for _, account := range domain.DefaultChart() {
		_, err := repos.AccountRepo.FindAccountByCode(ctx, account.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		account.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
		if err := repos.AccountRepo.SaveAccount(ctx, account); err != nil {
			return err
		}
	}

	_, err := repos.SettingsRepo.GetSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return repos.SettingsRepo.SaveSettings(ctx, domain.Settings{
		CurrencySymbol:       cfg.CurrencySymbol,
		DefaultExchangeRate:  cfg.DefaultExchangeRate,
		DefaultTransferFee:   cfg.DefaultTransferFee,
		SalesTaxRate:         cfg.SalesTaxRate,
		IncomeTaxRate:        cfg.IncomeTaxRate,
		FiscalYearStartMonth: cfg.FiscalYearStartMonth,
		AuditFields:          domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
}
