package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/model"
)

type recipesResponse struct {
	Recipes []model.Recipe `json:"recipes"`
}

func testDraftBody() RecipeDraft {
	return RecipeDraft{
		Name:        "API Test Stew",
		Description: "A stew created through the API.",
		Image:       model.RemoteImage("https://example.com/stew.jpg"),
		CategoryID:  "3",
		PrepTime:    25,
		CookTime:    40,
		Servings:    4,
		Difficulty:  model.DifficultyMedium,
		Ingredients: []model.Ingredient{
			{Name: "Potatoes", Quantity: 3, Unit: "large"},
		},
		Instructions: []model.Instruction{
			{Text: "Simmer everything until tender."},
		},
		Nutrition: model.Nutrition{Calories: 250},
		Dietary:   []string{"Vegan"},
	}
}

func TestListRecipes(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp recipesResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Recipes, 15)
}

func TestListRecipesFiltered(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/recipes?dietary=Vegan&max_prep_time=20&sort=prepTime", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp recipesResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Recipes, 5)
	assert.Equal(t, "Green Smoothie", resp.Recipes[0].Name)
	assert.Equal(t, "Vegetable Curry", resp.Recipes[4].Name)
	for _, r := range resp.Recipes {
		assert.LessOrEqual(t, r.PrepTime, 20)
	}
}

func TestListRecipesRejectsBadParams(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/recipes?difficulty=IMPOSSIBLE", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/recipes?max_prep_time=soon", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/recipes?sort=alphabetical", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipe(t *testing.T) {
	env := newTestEnv(t)
	id := env.recipes.Recipes()[0].ID

	w := env.request(t, http.MethodGet, "/api/v1/recipes/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe model.Recipe
	decodeBody(t, w, &recipe)
	assert.Equal(t, id, recipe.ID)

	w = env.request(t, http.MethodGet, "/api/v1/recipes/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/recipes", "", testDraftBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/recipes", "not-a-token", testDraftBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipe(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.request(t, http.MethodPost, "/api/v1/recipes", token, testDraftBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Recipe
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.SampleUserID, created.OwnerID)
	assert.Zero(t, created.Likes)

	list := env.recipes.Recipes()
	assert.Len(t, list, 16)
}

func TestCreateRecipeValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	draft := testDraftBody()
	draft.Ingredients = nil
	w := env.request(t, http.MethodPost, "/api/v1/recipes", token, draft)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipePreservesIdentity(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	existing := env.recipes.Recipes()[0]
	draft := testDraftBody()
	draft.Name = "Renamed via API"

	w := env.request(t, http.MethodPut, "/api/v1/recipes/"+existing.ID, token, draft)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Recipe
	decodeBody(t, w, &updated)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "Renamed via API", updated.Name)
	assert.Equal(t, existing.Likes, updated.Likes)
	assert.Equal(t, existing.OwnerID, updated.OwnerID)

	w = env.request(t, http.MethodPut, "/api/v1/recipes/no-such-id", token, draft)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)
	id := env.recipes.Recipes()[0].ID

	w := env.request(t, http.MethodDelete, "/api/v1/recipes/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.recipes.Recipes(), 14)

	w = env.request(t, http.MethodDelete, "/api/v1/recipes/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)
	id := env.recipes.Recipes()[0].ID

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/favorite", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var toggle struct {
		ID       string `json:"id"`
		Favorite bool   `json:"favorite"`
	}
	decodeBody(t, w, &toggle)
	assert.True(t, toggle.Favorite)

	w = env.request(t, http.MethodGet, "/api/v1/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var favs recipesResponse
	decodeBody(t, w, &favs)
	require.Len(t, favs.Recipes, 1)
	assert.Equal(t, id, favs.Recipes[0].ID)

	// Second toggle removes.
	w = env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/favorite", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &toggle)
	assert.False(t, toggle.Favorite)

	w = env.request(t, http.MethodGet, "/api/v1/favorites", token, nil)
	decodeBody(t, w, &favs)
	assert.Empty(t, favs.Recipes)
}

func TestLikeRecipe(t *testing.T) {
	env := newTestEnv(t)
	target := env.recipes.Recipes()[0]

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/recipes/%s/like", target.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var liked model.Recipe
	decodeBody(t, w, &liked)
	assert.Equal(t, target.Likes+1, liked.Likes)
}

func TestScaledIngredientsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var pancakes model.Recipe
	for _, r := range env.recipes.Recipes() {
		if r.Name == "Pancakes" {
			pancakes = r
		}
	}
	require.NotEmpty(t, pancakes.ID)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/ingredients?servings=%d", pancakes.ID, pancakes.Servings*2), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Servings    int                `json:"servings"`
		Ingredients []model.Ingredient `json:"ingredients"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, pancakes.Servings*2, resp.Servings)
	require.Len(t, resp.Ingredients, len(pancakes.Ingredients))
	for i, ing := range resp.Ingredients {
		assert.InDelta(t, pancakes.Ingredients[i].Quantity*2, ing.Quantity, 1e-9)
	}

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/ingredients?servings=0", pancakes.ID), "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email:    env.auth.User().Email,
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email:    "stranger@example.com",
		Password: testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
