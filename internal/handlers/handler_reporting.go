package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the financial statements.
type reportingHandler struct {
	reportingSvc portssvc.ReportingSvc
}

func newReportingHandler(reportingSvc portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingSvc: reportingSvc}
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Per-account debit/credit totals for a period
// @Tags reports
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.TrialBalanceRow
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingSvc.TrialBalance(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getProfitAndLoss godoc
// @Summary Profit and loss statement
// @Description Revenue vs expenses for a period, with COGS breakout, amortization adjustment and income tax estimate
// @Tags reports
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} domain.PAndLReport
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingSvc.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getRetainedEarnings godoc
// @Summary Retained earnings roll-forward
// @Tags reports
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} domain.RetainedEarningsReport
// @Router /reports/retained-earnings [get]
func (h *reportingHandler) getRetainedEarnings(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingSvc.RetainedEarnings(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity as of a date, with the accounting-identity self-test
// @Tags reports
// @Produce json
// @Param asOf query string false "As-of date (RFC3339 or YYYY-MM-DD), defaults to now"
// @Success 200 {object} domain.BalanceSheetReport
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	asOf, err := timeParam(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingSvc.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getTaxSummary godoc
// @Summary Tax summary
// @Description Taxable revenue per account with the active rate applied
// @Tags reports
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} domain.TaxSummaryReport
// @Router /reports/tax-summary [get]
func (h *reportingHandler) getTaxSummary(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingSvc.TaxSummary(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingSvc portssvc.ReportingSvc) {
	h := newReportingHandler(reportingSvc)

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/retained-earnings", h.getRetainedEarnings)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/tax-summary", h.getTaxSummary)
	}
}
