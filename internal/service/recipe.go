package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/seed"
	"github.com/foodieapp/backend/internal/store"
)

// State is the engine's session lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
)

// Notifier receives fire-and-forget notices after mutations. It is not
// a correctness dependency; a nil Notifier disables notices.
type Notifier interface {
	Notify(title, message string, typ model.NotificationType, recipeID string)
}

// RecipeService is the query engine: it owns the authoritative
// in-memory copy of the recipe collection and favorite set for the
// session, answers filtered views and performs mutations, keeping the
// store in sync. The mirror is updated only after a successful
// persist, so a failed write never corrupts it.
//
// All methods are safe for concurrent use; a single mutex serializes
// access to the mirror and the store.
type RecipeService struct {
	mu       sync.Mutex
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	state     State
	recipes   []model.Recipe
	favorites []string
}

// NewRecipeService creates the engine over the given store. notifier
// may be nil.
func NewRecipeService(st *store.Store, notifier Notifier, log zerolog.Logger) *RecipeService {
	return &RecipeService{
		store:    st,
		notifier: notifier,
		log:      log.With().Str("component", "recipes").Logger(),
		state:    StateUninitialized,
	}
}

// State returns the engine's lifecycle state.
func (s *RecipeService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load populates the mirror from the store. An empty (or unreadable,
// which the store reports as empty) collection is seeded with the
// sample dataset first. Load leaves the engine Ready on success; on a
// seeding write failure it stays in Loading and may be retried.
func (s *RecipeService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading

	recipes := s.store.GetRecipes(ctx)
	if len(recipes) == 0 {
		s.log.Info().Msg("no recipes in store, seeding sample data")
		seeded, err := seed.Refresh(ctx, s.store)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		recipes = seeded
	}

	s.recipes = recipes
	s.favorites = s.store.GetFavoriteIDs(ctx)
	s.state = StateReady
	s.log.Info().Int("recipes", len(s.recipes)).Int("favorites", len(s.favorites)).Msg("catalog loaded")
	return nil
}

// Recipes returns a copy of the full mirror in insertion order.
func (s *RecipeService) Recipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Recipe(nil), s.recipes...)
}

// GetRecipe returns the recipe with the given id.
func (s *RecipeService) GetRecipe(id string) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Recipe{}, ErrNotFound
}

// FavoriteIDs returns a copy of the favorite id set in insertion
// order.
func (s *RecipeService) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...)
}

// IsFavorite reports whether id is in the favorite set.
func (s *RecipeService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsID(s.favorites, id)
}

// FavoriteRecipes returns the favorited recipes, in mirror order.
func (s *RecipeService) FavoriteRecipes() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Recipe
	for _, r := range s.recipes {
		if containsID(s.favorites, r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// FilteredView answers a filtered, sorted view of the mirror. It is a
// pure function of the mirror and its arguments:
//
//  1. free-text query matches name, description or any ingredient name
//     (case-insensitive substring, OR across the three),
//  2. categoryID narrows by stored category, or is one of the
//     pseudo-categories (tap-all, my-food, my-favorites),
//  3. criteria narrows by dietary tags (AND), difficulty and maximum
//     prep time,
//  4. the result is stably sorted by sortKey.
//
// userID is the session user consulted by the my-food pseudo-category.
func (s *RecipeService) FilteredView(query, categoryID, userID string, criteria model.FilterCriteria, sortKey model.SortKey) []model.Recipe {
	s.mu.Lock()
	recipes := append([]model.Recipe(nil), s.recipes...)
	favorites := append([]string(nil), s.favorites...)
	s.mu.Unlock()

	filtered := recipes[:0]
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range recipes {
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		if !matchesCategory(r, categoryID, userID, favorites) {
			continue
		}
		if len(criteria.Dietary) > 0 && !r.HasDietary(criteria.Dietary) {
			continue
		}
		if criteria.Difficulty != "" && r.Difficulty != criteria.Difficulty {
			continue
		}
		if criteria.MaxPrepTime > 0 && r.PrepTime > criteria.MaxPrepTime {
			continue
		}
		filtered = append(filtered, r)
	}

	sortRecipes(filtered, sortKey)
	return filtered
}

func matchesQuery(r model.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

func matchesCategory(r model.Recipe, categoryID, userID string, favorites []string) bool {
	switch categoryID {
	case "", model.CategoryAll:
		return true
	case model.CategoryFavorites:
		return containsID(favorites, r.ID)
	case model.CategoryMyFood:
		return r.OwnerID == userID
	default:
		return r.CategoryID == categoryID
	}
}

// sortRecipes sorts in place, stably so that ties keep their prior
// relative order.
func sortRecipes(recipes []model.Recipe, key model.SortKey) {
	switch key {
	case model.SortByPrepTime:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].PrepTime < recipes[j].PrepTime
		})
	case model.SortByPopularity:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Likes > recipes[j].Likes
		})
	case model.SortByDifficulty:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Difficulty.Rank() < recipes[j].Difficulty.Rank()
		})
	case model.SortByCalories:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Nutrition.Calories < recipes[j].Nutrition.Calories
		})
	}
}

// AddRecipe validates a draft, assigns identity and creation metadata,
// persists it and appends it to the mirror.
func (s *RecipeService) AddRecipe(ctx context.Context, draft model.Recipe) (model.Recipe, error) {
	if err := validateDraft(draft); err != nil {
		return model.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe := draft
	recipe.ID = uuid.NewString()
	recipe.CreatedAt = time.Now().UTC()
	recipe.Likes = 0
	recipe.Comments = []model.Comment{}
	if recipe.Dietary == nil {
		recipe.Dietary = []string{}
	}

	if err := s.store.SaveRecipe(ctx, recipe); err != nil {
		return model.Recipe{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.recipes = append(s.recipes, recipe)
	s.notify("Recipe Saved", fmt.Sprintf("Your recipe %q has been saved successfully", recipe.Name), model.NotificationSuccess, recipe.ID)
	return recipe, nil
}

func validateDraft(draft model.Recipe) error {
	switch {
	case strings.TrimSpace(draft.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case draft.Image.IsZero():
		return fmt.Errorf("%w: image is required", ErrValidation)
	case draft.CategoryID == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if !hasCompleteIngredient(draft.Ingredients) {
		return fmt.Errorf("%w: at least one complete ingredient is required", ErrValidation)
	}
	if !hasCompleteInstruction(draft.Instructions) {
		return fmt.Errorf("%w: at least one instruction is required", ErrValidation)
	}
	return nil
}

func hasCompleteIngredient(ingredients []model.Ingredient) bool {
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) != "" && ing.Quantity >= 0 {
			return true
		}
	}
	return false
}

func hasCompleteInstruction(instructions []model.Instruction) bool {
	for _, ins := range instructions {
		if strings.TrimSpace(ins.Text) != "" {
			return true
		}
	}
	return false
}

// UpdateRecipe replaces the stored recipe with the same id. Unlike the
// store's bare upsert it reports ErrNotFound for unknown ids instead
// of silently appending.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.recipes {
		if s.recipes[i].ID == recipe.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Recipe{}, ErrNotFound
	}

	if err := s.store.SaveRecipe(ctx, recipe); err != nil {
		return model.Recipe{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.recipes[idx] = recipe
	return recipe, nil
}

// RemoveRecipe deletes a recipe and cascades the deletion into the
// favorite set.
func (s *RecipeService) RemoveRecipe(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	name := s.recipes[idx].Name

	if err := s.store.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.recipes = append(s.recipes[:idx], s.recipes[idx+1:]...)

	if containsID(s.favorites, id) {
		kept := removeID(s.favorites, id)
		if err := s.store.SetFavoriteIDs(ctx, kept); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		s.favorites = kept
	}

	s.notify("Recipe Deleted", fmt.Sprintf("Recipe %q has been deleted", name), model.NotificationInfo, id)
	return nil
}

// ToggleFavorite flips membership of id in the favorite set and
// returns the new state (true = now favorited). Membership is checked
// before insert, so the set never holds duplicates.
func (s *RecipeService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []string
	favorited := !containsID(s.favorites, id)
	if favorited {
		updated = append(append([]string(nil), s.favorites...), id)
	} else {
		updated = removeID(s.favorites, id)
	}

	if err := s.store.SetFavoriteIDs(ctx, updated); err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.favorites = updated
	return favorited, nil
}

// LikeRecipe increments a recipe's like counter.
func (s *RecipeService) LikeRecipe(ctx context.Context, id string) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Recipe{}, ErrNotFound
	}

	liked := s.recipes[idx]
	liked.Likes++
	if err := s.store.SaveRecipe(ctx, liked); err != nil {
		return model.Recipe{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.recipes[idx] = liked
	return liked, nil
}

// Settings returns the persisted settings (defaults when absent).
func (s *RecipeService) Settings(ctx context.Context) model.Settings {
	return s.store.GetSettings(ctx)
}

// SaveSettings replaces the settings singleton.
func (s *RecipeService) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ScaledIngredients returns the recipe's ingredient list with
// quantities scaled from its base servings to servings. A zero or
// negative base leaves quantities unscaled rather than propagating a
// division by zero.
func ScaledIngredients(recipe model.Recipe, servings int) []model.Ingredient {
	out := append([]model.Ingredient(nil), recipe.Ingredients...)
	if recipe.Servings <= 0 || servings <= 0 || servings == recipe.Servings {
		return out
	}
	factor := float64(servings) / float64(recipe.Servings)
	for i := range out {
		out[i].Quantity *= factor
	}
	return out
}

func (s *RecipeService) notify(title, message string, typ model.NotificationType, recipeID string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(title, message, typ, recipeID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
