package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler serves the settings record and the fixed-asset register.
type settingsHandler struct {
	settingsSvc portssvc.SettingsSvc
	assetSvc    portssvc.AssetSvc
}

func newSettingsHandler(settingsSvc portssvc.SettingsSvc, assetSvc portssvc.AssetSvc) *settingsHandler {
	return &settingsHandler{settingsSvc: settingsSvc, assetSvc: assetSvc}
}

// getSettings godoc
// @Summary Get business settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	settings, err := h.settingsSvc.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSettings godoc
// @Summary Update business settings
// @Description Replaces the settings record; only future recordings and reports are affected
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind settings request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	settings, err := h.settingsSvc.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// registerFixedAsset godoc
// @Summary Register a fixed asset
// @Description Books the purchase and adds the asset to the amortization register
// @Tags settings
// @Accept json
// @Produce json
// @Param asset body dto.CreateFixedAssetRequest true "Fixed asset"
// @Success 201 {object} domain.FixedAsset
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /fixed-assets [post]
func (h *settingsHandler) registerFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind fixed asset request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	asset, err := h.assetSvc.RegisterFixedAsset(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// listFixedAssets godoc
// @Summary List fixed assets
// @Tags settings
// @Produce json
// @Success 200 {array} domain.FixedAsset
// @Router /fixed-assets [get]
func (h *settingsHandler) listFixedAssets(c *gin.Context) {
	assets, err := h.assetSvc.ListFixedAssets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// registerSettingsRoutes registers settings and fixed-asset routes.
func registerSettingsRoutes(group *gin.RouterGroup, settingsSvc portssvc.SettingsSvc, assetSvc portssvc.AssetSvc) {
	h := newSettingsHandler(settingsSvc, assetSvc)

	group.GET("/settings", h.getSettings)
	group.PUT("/settings", h.updateSettings)

	assets := group.Group("/fixed-assets")
	{
		assets.POST("", h.registerFixedAsset)
		assets.GET("", h.listFixedAssets)
	}
}
