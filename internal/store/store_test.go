package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/model"
)

func newTestStore(t *testing.T) (*Store, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return New(kv, zerolog.Nop()), kv
}

func recipeFixture(id, name string) model.Recipe {
	return model.Recipe{
		ID:          id,
		Name:        name,
		Image:       model.AssetImage("fixture.jpg"),
		CategoryID:  "1",
		Servings:    2,
		Difficulty:  model.DifficultyEasy,
		Ingredients: []model.Ingredient{{Name: "Flour", Quantity: 1, Unit: "cup"}},
		Dietary:     []string{},
		Comments:    []model.Comment{},
	}
}

func TestGetRecipesEmptyStore(t *testing.T) {
	st, _ := newTestStore(t)
	recipes := st.GetRecipes(context.Background())
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestSaveRecipeUpsert(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r1", "First")))
	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r2", "Second")))
	assert.Len(t, st.GetRecipes(ctx), 2)

	// Same id replaces in place, no duplicate.
	renamed := recipeFixture("r1", "First, renamed")
	require.NoError(t, st.SaveRecipe(ctx, renamed))

	recipes := st.GetRecipes(ctx)
	require.Len(t, recipes, 2)
	assert.Equal(t, "First, renamed", recipes[0].Name)
	assert.Equal(t, "Second", recipes[1].Name)
}

func TestSaveRecipesReplacesCollection(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r1", "First")))
	require.NoError(t, st.SaveRecipes(ctx, []model.Recipe{recipeFixture("r2", "Second")}))

	recipes := st.GetRecipes(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, "r2", recipes[0].ID)
}

func TestDeleteRecipe(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r1", "First")))
	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r2", "Second")))

	require.NoError(t, st.DeleteRecipe(ctx, "r1"))
	recipes := st.GetRecipes(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, "r2", recipes[0].ID)

	// Deleting an unknown id is a no-op.
	require.NoError(t, st.DeleteRecipe(ctx, "nope"))
	assert.Len(t, st.GetRecipes(ctx), 1)
}

func TestCorruptRecipesYieldEmpty(t *testing.T) {
	st, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, recipesKey, []byte("{not json")))
	assert.Empty(t, st.GetRecipes(ctx))

	// A write after corruption starts from the empty collection.
	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r1", "Fresh start")))
	assert.Len(t, st.GetRecipes(ctx), 1)
}

func TestFavoriteIDsRoundTrip(t *testing.T) {
	st, kv := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, st.GetFavoriteIDs(ctx))

	require.NoError(t, st.SetFavoriteIDs(ctx, []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, st.GetFavoriteIDs(ctx))

	require.NoError(t, kv.Set(ctx, favoritesKey, []byte("null")))
	assert.Empty(t, st.GetFavoriteIDs(ctx))
}

func TestSettingsDefaults(t *testing.T) {
	st, kv := newTestStore(t)
	ctx := context.Background()

	settings := st.GetSettings(ctx)
	assert.Equal(t, model.DefaultSettings(), settings)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)

	settings.DarkMode = true
	settings.Dietary = []string{"Vegan"}
	require.NoError(t, st.SaveSettings(ctx, settings))
	assert.Equal(t, settings, st.GetSettings(ctx))

	// Corrupt settings fall back to the defaults.
	require.NoError(t, kv.Set(ctx, settingsKey, []byte("???")))
	assert.Equal(t, model.DefaultSettings(), st.GetSettings(ctx))
}

func TestMemoryKVGetAbsent(t *testing.T) {
	kv := NewMemoryKV()
	data, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'X'

	stored, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), stored)

	stored[0] = 'Y'
	again, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
