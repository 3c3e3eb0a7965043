package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles payment-service operations, money transfers and
// service policy records.
type operationHandler struct {
	balanceSvc portssvc.ServiceBalanceSvc
}

func newOperationHandler(balanceSvc portssvc.ServiceBalanceSvc) *operationHandler {
	return &operationHandler{balanceSvc: balanceSvc}
}

// recordOperation godoc
// @Summary Record a service operation
// @Description Records a deposit, withdrawal or transfer against a payment service and journals the pool movements
// @Tags operations
// @Accept json
// @Produce json
// @Param operation body dto.RecordOperationRequest true "Operation"
// @Success 201 {object} domain.Operation
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 422 {object} map[string]string "Insufficient pool balance"
// @Router /operations [post]
func (h *operationHandler) recordOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind operation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	op, err := h.balanceSvc.RecordOperation(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record operation", slog.String("error", err.Error()), slog.String("service_id", req.ServiceID))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// listOperations godoc
// @Summary List service operations
// @Tags operations
// @Produce json
// @Param serviceID query string false "Filter by payment service"
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Operation
// @Router /operations [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ops, err := h.balanceSvc.ListOperations(c.Request.Context(), c.Query("serviceID"), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ops)
}

// recordTransfer godoc
// @Summary Record a money transfer
// @Description Runs a client money-transfer job through the transfer transition
// @Tags operations
// @Accept json
// @Produce json
// @Param transfer body dto.RecordTransferRequest true "Transfer"
// @Success 201 {object} domain.Transfer
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 422 {object} map[string]string "Insufficient pool balance"
// @Router /transfers [post]
func (h *operationHandler) recordTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transfer request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	transfer, err := h.balanceSvc.RecordTransfer(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record transfer", slog.String("error", err.Error()), slog.String("service_id", req.ServiceID))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

// listTransfers godoc
// @Summary List money transfers
// @Tags operations
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Transfer
// @Router /transfers [get]
func (h *operationHandler) listTransfers(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transfers, err := h.balanceSvc.ListTransfers(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

// checkReconciliation godoc
// @Summary Reconcile a service
// @Description Compares the latest operation snapshot with the journal-derived position
// @Tags operations
// @Produce json
// @Param serviceID path string true "Payment service ID"
// @Success 200 {object} domain.ReconciliationReport
// @Router /services/{serviceID}/reconciliation [get]
func (h *operationHandler) checkReconciliation(c *gin.Context) {
	report, err := h.balanceSvc.CheckReconciliation(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// configureService godoc
// @Summary Configure a payment service
// @Description Creates or updates the per-service policy record
// @Tags operations
// @Accept json
// @Produce json
// @Param config body dto.ConfigureServiceRequest true "Service config"
// @Success 200 {object} domain.ServiceConfig
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /service-configs [put]
func (h *operationHandler) configureService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfigureServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind service config", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cfg, err := h.balanceSvc.ConfigureService(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// getServiceConfig godoc
// @Summary Get a service config
// @Description Returns the stored policy record, or the brokered default for unconfigured services
// @Tags operations
// @Produce json
// @Param serviceID path string true "Payment service ID"
// @Success 200 {object} domain.ServiceConfig
// @Router /service-configs/{serviceID} [get]
func (h *operationHandler) getServiceConfig(c *gin.Context) {
	cfg, err := h.balanceSvc.GetServiceConfig(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// listServiceConfigs godoc
// @Summary List service configs
// @Tags operations
// @Produce json
// @Success 200 {array} domain.ServiceConfig
// @Router /service-configs [get]
func (h *operationHandler) listServiceConfigs(c *gin.Context) {
	configs, err := h.balanceSvc.ListServiceConfigs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// registerOperationRoutes registers operation, transfer and service-config
// routes.
func registerOperationRoutes(group *gin.RouterGroup, balanceSvc portssvc.ServiceBalanceSvc) {
	h := newOperationHandler(balanceSvc)

	operations := group.Group("/operations")
	{
		operations.POST("", h.recordOperation)
		operations.GET("", h.listOperations)
	}

	transfers := group.Group("/transfers")
	{
		transfers.POST("", h.recordTransfer)
		transfers.GET("", h.listTransfers)
	}

	group.GET("/services/:serviceID/reconciliation", h.checkReconciliation)

	configs := group.Group("/service-configs")
	{
		configs.PUT("", h.configureService)
		configs.GET("", h.listServiceConfigs)
		configs.GET("/:serviceID", h.getServiceConfig)
	}
}
