package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for recording and reading journal
// transactions.
type journalHandler struct {
	journalSvc portssvc.JournalSvc
	ledgerSvc  portssvc.LedgerSvc
}

func newJournalHandler(journalSvc portssvc.JournalSvc, ledgerSvc portssvc.LedgerSvc) *journalHandler {
	return &journalHandler{journalSvc: journalSvc, ledgerSvc: ledgerSvc}
}

// recordTransaction godoc
// @Summary Record a balanced transaction
// @Description Appends a balanced batch of journal lines as one atomic transaction
// @Tags journal
// @Accept json
// @Produce json
// @Param transaction body dto.RecordTransactionRequest true "Transaction lines"
// @Success 201 {object} map[string]string "Returns the new transaction ID"
// @Failure 400 {object} map[string]string "Invalid or unbalanced transaction"
// @Router /transactions [post]
func (h *journalHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	txnID, err := h.journalSvc.Record(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record transaction", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactionID": txnID})
}

// getTransaction godoc
// @Summary Get one transaction
// @Description Returns all lines of a recorded transaction
// @Tags journal
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {array} dto.JournalLineResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [get]
func (h *journalHandler) getTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	lines, err := h.journalSvc.Transaction(c.Request.Context(), transactionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalLineResponses(lines))
}

// reverseTransaction godoc
// @Summary Reverse a transaction
// @Description Writes a mirror transaction cancelling the original; nothing is deleted
// @Tags journal
// @Produce json
// @Param transactionID path string true "Transaction ID to reverse"
// @Success 201 {object} map[string]string "Returns the reversal transaction ID"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID}/reverse [post]
func (h *journalHandler) reverseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	reversalID, err := h.journalSvc.Reverse(c.Request.Context(), transactionID)
	if err != nil {
		logger.Warn("Failed to reverse transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", transactionID))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reversalTransactionID": reversalID})
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns the filtered journal projection for a date range
// @Tags journal
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Param accountCode query string false "Filter by account code"
// @Param kind query string false "Filter by transaction kind"
// @Param serviceID query string false "Filter by payment service"
// @Success 200 {array} dto.JournalLineResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := domain.LineFilter{
		AccountCode: c.Query("accountCode"),
		Kind:        domain.TransactionKind(c.Query("kind")),
		ServiceID:   c.Query("serviceID"),
	}
	lines, err := h.ledgerSvc.Entries(c.Request.Context(), from, to, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalLineResponses(lines))
}

// getAccountBalance godoc
// @Summary Account balance
// @Description Natural-sign balance of one account as of a date
// @Tags journal
// @Produce json
// @Param code path string true "Account code"
// @Param to query string false "As-of date (RFC3339 or YYYY-MM-DD), defaults to now"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{code}/balance [get]
func (h *journalHandler) getAccountBalance(c *gin.Context) {
	code := c.Param("code")
	asOf, err := timeParam(c, "to", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.ledgerSvc.AccountBalance(c.Request.Context(), code, asOf)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountCode": code, "balance": balance})
}

// getServicePools godoc
// @Summary Service pool position
// @Description Journal-derived cash/digital position of one payment service
// @Tags journal
// @Produce json
// @Param serviceID path string true "Payment service ID"
// @Success 200 {object} domain.PoolBalances
// @Router /services/{serviceID}/pools [get]
func (h *journalHandler) getServicePools(c *gin.Context) {
	pools, err := h.ledgerSvc.ServicePools(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pools)
}

// registerJournalRoutes registers transaction and ledger-projection routes.
func registerJournalRoutes(group *gin.RouterGroup, journalSvc portssvc.JournalSvc, ledgerSvc portssvc.LedgerSvc) {
	h := newJournalHandler(journalSvc, ledgerSvc)

	transactions := group.Group("/transactions")
	{
		transactions.POST("", h.recordTransaction)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.POST("/:transactionID/reverse", h.reverseTransaction)
	}

	group.GET("/entries", h.listEntries)
	group.GET("/accounts/:code/balance", h.getAccountBalance)
	group.GET("/services/:serviceID/pools", h.getServicePools)
}
