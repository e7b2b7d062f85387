package handlers

import (
	"net/http"
	"strconv"

	"github.com/chimera-audio/trinity-api/internal/engines"
	"github.com/gin-gonic/gin"
)

// EnginesHandler serves the static engine registry
type EnginesHandler struct {
	registry *engines.Registry
}

func NewEnginesHandler(registry *engines.Registry) *EnginesHandler {
	return &EnginesHandler{registry: registry}
}

// List returns every registered engine descriptor
func (h *EnginesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":   h.registry.Count(),
		"engines": h.registry.All(),
	})
}

// Get returns a single engine descriptor by id
func (h *EnginesHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "engine id must be an integer"})
		return
	}

	d, ok := h.registry.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown engine id"})
		return
	}

	c.JSON(http.StatusOK, d)
}
