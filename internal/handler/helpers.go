package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/tmplhub/tmplhub/internal/pkg/errors"
)

// intQuery parses an integer query parameter. Missing or malformed values
// yield 0, which the service layer resolves to the documented default.
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func logError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}

func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case appErr.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
	case appErr.IsInvalid(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	default:
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func handleCreateError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case appErr.IsInvalid(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
	default:
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create template",
			"details": err.Error(),
		})
	}
}
