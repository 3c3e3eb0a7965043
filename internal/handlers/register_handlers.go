package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/cmd/docs"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/notify"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	svcs *portssvc.ServiceContainer,
	broadcaster *notify.Broadcaster,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	registerHomeRoutes(r, broadcaster)

	setupAPIV1Routes(r, svcs)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, svcs *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerJournalRoutes(v1, svcs.Journal, svcs.Ledger)
	registerAccountRoutes(v1, svcs.Account)
	registerOperationRoutes(v1, svcs.ServiceBalance)
	registerReportingRoutes(v1, svcs.Reporting)
	registerSalesRoutes(v1, svcs.Sales)
	registerSettingsRoutes(v1, svcs.Settings, svcs.Assets)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// timeRange reads optional from/to query params, accepting RFC3339 or plain
// dates. Missing bounds default to the whole journal history up to now.
func timeRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := timeParam(c, "from", time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := timeParam(c, "to", time.Now().UTC())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func timeParam(c *gin.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New(name + " must be RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}

// respondServiceError maps service errors onto HTTP statuses. Validation-type
// sentinels become 400s so clients can tell bad input from store failures.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, services.ErrUnbalancedTransaction),
		errors.Is(err, services.ErrEmptyTransaction),
		errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrUnknownOperationKind),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrPartyRoleMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInsufficientBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
