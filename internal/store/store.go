// Package store persists the recipe catalog's three collections
// (recipes, favorite ids, settings) as JSON values under stable keys
// of a pluggable key-value substrate. Writes are whole-collection
// read-modify-write; reads that fail or fail to parse are substituted
// with empty/default values and never surface to callers.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/foodieapp/backend/internal/model"
)

// Collection keys. One key per collection; the substrate is assumed to
// write each key atomically.
const (
	recipesKey   = "foodie:recipes"
	favoritesKey = "foodie:favorites"
	settingsKey  = "foodie:settings"
)

// Store reads and writes the persisted collections.
type Store struct {
	kv  KV
	log zerolog.Logger
}

// New creates a Store over the given substrate.
func New(kv KV, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log.With().Str("component", "store").Logger()}
}

// GetRecipes returns the full recipe collection. Absent, unreadable or
// corrupted values all yield an empty slice; callers cannot distinguish
// the cases.
func (s *Store) GetRecipes(ctx context.Context) []model.Recipe {
	var recipes []model.Recipe
	s.read(ctx, recipesKey, &recipes)
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes
}

// SaveRecipe upserts one recipe by id: replace if found, append
// otherwise, then write back the full collection.
func (s *Store) SaveRecipe(ctx context.Context, recipe model.Recipe) error {
	recipes := s.GetRecipes(ctx)

	replaced := false
	for i := range recipes {
		if recipes[i].ID == recipe.ID {
			recipes[i] = recipe
			replaced = true
			break
		}
	}
	if !replaced {
		recipes = append(recipes, recipe)
	}

	return s.write(ctx, recipesKey, recipes)
}

// SaveRecipes replaces the whole recipe collection.
func (s *Store) SaveRecipes(ctx context.Context, recipes []model.Recipe) error {
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return s.write(ctx, recipesKey, recipes)
}

// DeleteRecipe removes the recipe with the given id, if present. The
// favorite set is not touched; cascading is the caller's job.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	recipes := s.GetRecipes(ctx)

	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	return s.write(ctx, recipesKey, kept)
}

// GetFavoriteIDs returns the persisted favorite id set, in insertion
// order.
func (s *Store) GetFavoriteIDs(ctx context.Context) []string {
	var ids []string
	s.read(ctx, favoritesKey, &ids)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// SetFavoriteIDs replaces the favorite id set.
func (s *Store) SetFavoriteIDs(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.write(ctx, favoritesKey, ids)
}

// GetSettings returns the saved settings, or the defaults when nothing
// usable was saved.
func (s *Store) GetSettings(ctx context.Context) model.Settings {
	settings := model.DefaultSettings()
	var saved *model.Settings
	if s.read(ctx, settingsKey, &saved) && saved != nil {
		settings = *saved
		if settings.Dietary == nil {
			settings.Dietary = []string{}
		}
	}
	return settings
}

// SaveSettings replaces the settings singleton.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	return s.write(ctx, settingsKey, settings)
}

// read loads and decodes one key into out, reporting success. Failures
// are logged and swallowed.
func (s *Store) read(ctx context.Context, key string, out interface{}) bool {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("read failed, substituting empty value")
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt value, substituting empty value")
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
