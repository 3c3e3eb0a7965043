package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesHandler handles sales, inventory and third-party settlement requests.
type salesHandler struct {
	salesSvc portssvc.SalesSvc
}

func newSalesHandler(salesSvc portssvc.SalesSvc) *salesHandler {
	return &salesHandler{salesSvc: salesSvc}
}

// recordSale godoc
// @Summary Record a sale
// @Description Books a product sale with revenue, tax and COGS lines; credit sales debit the client's receivable
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid request or insufficient stock"
// @Router /sales [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sale, err := h.salesSvc.RecordSale(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record sale", slog.String("error", err.Error()), slog.String("product_id", req.ProductID))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce json
// @Param from query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.Sale
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	from, to, err := timeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sales, err := h.salesSvc.ListSales(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// recordRestock godoc
// @Summary Restock a product
// @Description Books a stock purchase against cash or supplier credit
// @Tags sales
// @Accept json
// @Produce json
// @Param restock body dto.RestockRequest true "Restock"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /restocks [post]
func (h *salesHandler) recordRestock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind restock request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.salesSvc.RecordRestock(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record restock", slog.String("error", err.Error()), slog.String("product_id", req.ProductID))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// recordSettlement godoc
// @Summary Settle a third-party balance
// @Description Client collection or supplier payment depending on the party's role
// @Tags sales
// @Accept json
// @Produce json
// @Param settlement body dto.SettlementRequest true "Settlement"
// @Success 200 {object} domain.ThirdParty
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /settlements [post]
func (h *salesHandler) recordSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind settlement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	party, err := h.salesSvc.RecordSettlement(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record settlement", slog.String("error", err.Error()), slog.String("party_id", req.PartyID))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, party)
}

// createProduct godoc
// @Summary Create a product
// @Tags sales
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /products [post]
func (h *salesHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.salesSvc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// listProducts godoc
// @Summary List products
// @Tags sales
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *salesHandler) listProducts(c *gin.Context) {
	products, err := h.salesSvc.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// createParty godoc
// @Summary Create a client or supplier
// @Tags sales
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party"
// @Success 201 {object} domain.ThirdParty
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /parties [post]
func (h *salesHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind party request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	party, err := h.salesSvc.CreateParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, party)
}

// listParties godoc
// @Summary List clients and suppliers
// @Tags sales
// @Produce json
// @Param role query string false "Filter by role (CLIENT or SUPPLIER)"
// @Success 200 {array} domain.ThirdParty
// @Router /parties [get]
func (h *salesHandler) listParties(c *gin.Context) {
	parties, err := h.salesSvc.ListParties(c.Request.Context(), domain.PartyRole(c.Query("role")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

// registerSalesRoutes registers sale, inventory and party routes.
func registerSalesRoutes(group *gin.RouterGroup, salesSvc portssvc.SalesSvc) {
	h := newSalesHandler(salesSvc)

	group.POST("/sales", h.recordSale)
	group.GET("/sales", h.listSales)
	group.POST("/restocks", h.recordRestock)
	group.POST("/settlements", h.recordSettlement)

	products := group.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
	}

	parties := group.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
	}
}
