package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/model"
)

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []model.Category `json:"categories"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, model.Categories, resp.Categories)
}

func TestListDietaryPreferences(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/dietary-preferences", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DietaryPreferences []model.DietaryPreference `json:"dietary_preferences"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, model.DietaryPreferences, resp.DietaryPreferences)
}

func TestListSortOptions(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/sort-options", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SortOptions []model.SortOption `json:"sort_options"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, model.SortOptions, resp.SortOptions)
}
