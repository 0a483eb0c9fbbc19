package api

import (
	"errors"
	"net/http"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/service"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the user it names.
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RecipeDraft is the body of POST /recipes and PUT /recipes/:id. The
// server assigns id, owner, creation time and like count.
type RecipeDraft struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Image        model.ImageRef      `json:"image"`
	Video        string              `json:"video"`
	CategoryID   string              `json:"category_id"`
	PrepTime     int                 `json:"prep_time"`
	CookTime     int                 `json:"cook_time"`
	Servings     int                 `json:"servings"`
	Difficulty   model.Difficulty    `json:"difficulty"`
	Ingredients  []model.Ingredient  `json:"ingredients"`
	Instructions []model.Instruction `json:"instructions"`
	Nutrition    model.Nutrition     `json:"nutrition"`
	Dietary      []string            `json:"dietary"`
}

// Recipe converts the draft into a model draft owned by ownerID.
func (d RecipeDraft) Recipe(ownerID string) model.Recipe {
	return model.Recipe{
		Name:         d.Name,
		Description:  d.Description,
		Image:        d.Image,
		Video:        d.Video,
		CategoryID:   d.CategoryID,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Difficulty:   d.Difficulty,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		Nutrition:    d.Nutrition,
		Dietary:      d.Dietary,
		OwnerID:      ownerID,
	}
}

// statusFromErr maps the service error taxonomy to HTTP status codes.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
