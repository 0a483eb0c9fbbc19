package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/service"
)

// SettingsHandler exposes the settings singleton.
type SettingsHandler struct {
	recipes *service.RecipeService
}

// NewSettingsHandler creates the handler.
func NewSettingsHandler(recipes *service.RecipeService) *SettingsHandler {
	return &SettingsHandler{recipes: recipes}
}

// RegisterRoutes mounts the settings routes on router.
func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.GetSettings)
	router.PUT("/settings", h.SaveSettings)
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.recipes.Settings(c.Request.Context()))
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if settings.Dietary == nil {
		settings.Dietary = []string{}
	}

	if err := h.recipes.SaveSettings(c.Request.Context(), settings); err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
