package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/tmplhub/internal/service"
)

type HealthHandler struct {
	templates *service.TemplateService
}

func NewHealthHandler(templates *service.TemplateService) *HealthHandler {
	return &HealthHandler{templates: templates}
}

// Check probes store connectivity with a cheap count.
func (h *HealthHandler) Check(c *gin.Context) {
	total, err := h.templates.Count(c.Request.Context())
	if err != nil {
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "database unreachable",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Database connected!",
		"templates_count": total,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
