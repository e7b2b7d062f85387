package handlers

import (
	"net/http"

	"github.com/chimera-audio/trinity-api/internal/catalogue"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and catalogue status
type HealthHandler struct {
	store   *catalogue.Store
	version string
}

func NewHealthHandler(store *catalogue.Store, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	catalogueStatus := "loaded"
	if h.store.Size() == 0 {
		catalogueStatus = "empty"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
		"catalogue": gin.H{
			"status":  catalogueStatus,
			"presets": h.store.Size(),
		},
	})
}
