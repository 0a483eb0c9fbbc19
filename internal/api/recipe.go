package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodieapp/backend/internal/middleware"
	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/service"
)

// RecipeHandler exposes the recipe catalog.
type RecipeHandler struct {
	recipes *service.RecipeService
	auth    *service.AuthService
}

// NewRecipeHandler creates the handler.
func NewRecipeHandler(recipes *service.RecipeService, auth *service.AuthService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, auth: auth}
}

// RegisterRoutes mounts the recipe routes on router.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuth(h.auth), h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/ingredients", h.ScaledIngredients)
		recipes.POST("", middleware.RequireAuth(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.RequireAuth(h.auth), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.RequireAuth(h.auth), h.DeleteRecipe)
		recipes.POST("/:id/favorite", middleware.RequireAuth(h.auth), h.ToggleFavorite)
		recipes.POST("/:id/like", h.LikeRecipe)
	}
	router.GET("/favorites", middleware.RequireAuth(h.auth), h.ListFavorites)
}

// ListRecipes answers a filtered, sorted view of the catalog.
// Supported query parameters: q, category, dietary (comma-separated),
// difficulty, max_prep_time, sort (default prepTime).
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	criteria := model.FilterCriteria{}

	if prefs := c.Query("dietary"); prefs != "" {
		for _, p := range strings.Split(prefs, ",") {
			if tag := strings.TrimSpace(p); tag != "" {
				criteria.Dietary = append(criteria.Dietary, tag)
			}
		}
	}

	if d := c.Query("difficulty"); d != "" {
		difficulty := model.Difficulty(strings.ToUpper(d))
		if !difficulty.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty"})
			return
		}
		criteria.Difficulty = difficulty
	}

	if v := c.Query("max_prep_time"); v != "" {
		maxPrep, err := strconv.Atoi(v)
		if err != nil || maxPrep < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_prep_time"})
			return
		}
		criteria.MaxPrepTime = maxPrep
	}

	sortKey := model.SortByPrepTime
	if v := c.Query("sort"); v != "" {
		sortKey = model.SortKey(v)
		if !sortKey.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort key"})
			return
		}
	}

	view := h.recipes.FilteredView(
		c.Query("q"),
		c.Query("category"),
		middleware.UserID(c),
		criteria,
		sortKey,
	)

	c.JSON(http.StatusOK, gin.H{"recipes": view})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ScaledIngredients returns the ingredient list scaled to the servings
// query parameter.
func (h *RecipeHandler) ScaledIngredients(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	servings := recipe.Servings
	if v := c.Query("servings"); v != "" {
		servings, err = strconv.Atoi(v)
		if err != nil || servings < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid servings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"servings":    servings,
		"ingredients": service.ScaledIngredients(recipe, servings),
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.AddRecipe(c.Request.Context(), draft.Recipe(middleware.UserID(c)))
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var draft RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Full replace by id; likes and creation time survive the update.
	existing, err := h.recipes.GetRecipe(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	updated := draft.Recipe(existing.OwnerID)
	updated.ID = existing.ID
	updated.Likes = existing.Likes
	updated.Comments = existing.Comments
	updated.CreatedAt = existing.CreatedAt

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), updated)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.recipes.RemoveRecipe(c.Request.Context(), id); err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted", "id": id})
}

// ToggleFavorite flips the favorite state of a recipe and returns the
// new state.
func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	favorite, err := h.recipes.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "favorite": favorite})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	recipe, err := h.recipes.LikeRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	favorites := h.recipes.FavoriteRecipes()
	if favorites == nil {
		favorites = []model.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": favorites})
}
