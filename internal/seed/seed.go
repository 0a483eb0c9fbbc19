// Package seed populates an empty store with the canonical sample
// dataset.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/store"
)

// Refresh replaces the stored recipe collection with the sample
// dataset, assigning each recipe a fresh id and creation timestamp at
// write time. It returns the recipes as written.
func Refresh(ctx context.Context, s *store.Store) ([]model.Recipe, error) {
	recipes := SampleRecipes()
	now := time.Now().UTC()
	for i := range recipes {
		recipes[i].ID = uuid.NewString()
		recipes[i].CreatedAt = now
		recipes[i].Comments = []model.Comment{}
	}

	if err := s.SaveRecipes(ctx, recipes); err != nil {
		return nil, fmt.Errorf("failed to write sample recipes: %w", err)
	}
	return recipes, nil
}

// EnsurePopulated seeds the store only when the recipe collection is
// empty, and reports whether seeding happened.
func EnsurePopulated(ctx context.Context, s *store.Store) (bool, error) {
	if len(s.GetRecipes(ctx)) > 0 {
		return false, nil
	}
	if _, err := Refresh(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}
