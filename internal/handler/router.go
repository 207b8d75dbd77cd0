package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/tmplhub/internal/middleware"
)

type RouterDeps struct {
	Templates *TemplateHandler
	Health    *HealthHandler

	// CreateRateLimit throttles the write path per client; zero disables it.
	CreateRateLimit time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/templates", deps.Templates.List)
	api.GET("/templates/:id", deps.Templates.Get)
	api.POST("/templates", middleware.RateLimit(deps.CreateRateLimit), deps.Templates.Create)
	api.GET("/health", deps.Health.Check)
}
