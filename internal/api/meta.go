package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodieapp/backend/internal/model"
)

// MetaHandler serves the fixed reference tables the client builds its
// pickers from.
type MetaHandler struct{}

// NewMetaHandler creates the handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RegisterRoutes mounts the reference data routes on router.
func (h *MetaHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.ListCategories)
	router.GET("/dietary-preferences", h.ListDietaryPreferences)
	router.GET("/sort-options", h.ListSortOptions)
}

func (h *MetaHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.Categories})
}

func (h *MetaHandler) ListDietaryPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dietary_preferences": model.DietaryPreferences})
}

func (h *MetaHandler) ListSortOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sort_options": model.SortOptions})
}
