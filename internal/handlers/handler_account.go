package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountSvc portssvc.AccountSvc
}

func newAccountHandler(accountSvc portssvc.AccountSvc) *accountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an account to the chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account"
// @Success 201 {object} domain.Account
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Code already exists"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} domain.Account
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{code} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountSvc.GetAccountByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} domain.Account
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountSvc.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates name/description; code and nature are immutable
// @Tags accounts
// @Accept json
// @Produce json
// @Param code path string true "Account code"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} domain.Account
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{code} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accountSvc.UpdateAccount(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive; existing journal lines keep resolving
// @Tags accounts
// @Produce json
// @Param code path string true "Account code"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{code} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	if err := h.accountSvc.DeactivateAccount(c.Request.Context(), c.Param("code")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerAccountRoutes registers chart-of-accounts routes.
func registerAccountRoutes(group *gin.RouterGroup, accountSvc portssvc.AccountSvc) {
	h := newAccountHandler(accountSvc)

	accounts := group.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code", h.getAccount)
		accounts.PUT("/:code", h.updateAccount)
		accounts.DELETE("/:code", h.deactivateAccount)
	}
}
