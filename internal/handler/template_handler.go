package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tmplhub/tmplhub/internal/service"
)

type TemplateHandler struct {
	templates *service.TemplateService
}

func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

type createTemplateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
	HTMLContent string `json:"html_content"`
	Author      string `json:"author"`
}

func (h *TemplateHandler) List(c *gin.Context) {
	q := service.ListQuery{
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	result, err := h.templates.List(c.Request.Context(), q)
	if err != nil {
		logError(c, err)
		empty := service.EmptyListResult()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to load templates",
			"data":       empty.Data,
			"pagination": empty.Pagination,
			"categories": empty.Categories,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	tpl, err := h.templates.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id, err := h.templates.Create(c.Request.Context(), service.CreateTemplateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Link:        req.Link,
		HTMLContent: req.HTMLContent,
		Author:      req.Author,
	})
	if err != nil {
		handleCreateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"message": "Template created successfully",
	})
}
