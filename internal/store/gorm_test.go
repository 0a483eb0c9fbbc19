package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormKVSQLiteRoundTrip(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "kv_test.db"))
	require.NoError(t, err)
	ctx := context.Background()

	data, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	data, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	// Second write to the same key overwrites.
	require.NoError(t, kv.Set(ctx, "k", []byte("v2")))
	data, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestGormKVSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv_test.db")
	ctx := context.Background()

	kv, err := OpenSQLite(path)
	require.NoError(t, err)

	st := New(kv, zerolog.Nop())
	require.NoError(t, st.SaveRecipe(ctx, recipeFixture("r1", "Persisted")))
	require.NoError(t, st.SetFavoriteIDs(ctx, []string{"r1"}))

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)

	st2 := New(reopened, zerolog.Nop())
	recipes := st2.GetRecipes(ctx)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Persisted", recipes[0].Name)
	assert.Equal(t, []string{"r1"}, st2.GetFavoriteIDs(ctx))
}
