package handlers

import (
	"net/http"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/notify"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe target
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "scarwrite backend"})
}

// waitForChange long-polls the ledger change broadcaster so dashboards can
// refresh without hammering the report endpoints. Responds "changed" as soon
// as a journal write lands, or "timeout" after 30s.
func waitForChange(broadcaster *notify.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, cancel := broadcaster.Subscribe()
		defer cancel()

		select {
		case <-ch:
			c.JSON(http.StatusOK, gin.H{"event": "changed"})
		case <-time.After(30 * time.Second):
			c.JSON(http.StatusOK, gin.H{"event": "timeout"})
		case <-c.Request.Context().Done():
			c.Status(http.StatusNoContent)
		}
	}
}

// registerHomeRoutes registers the root and change-notification routes.
func registerHomeRoutes(r *gin.Engine, broadcaster *notify.Broadcaster) {
	r.GET("/", getHome)
	r.GET("/events", waitForChange(broadcaster))
}
