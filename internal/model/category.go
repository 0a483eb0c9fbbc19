package model

// Category is static reference data: it has no lifecycle and is loaded
// from the fixed table below, never persisted.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Pseudo-category ids. These are filter shortcuts at the query layer,
// not stored recipe attributes.
const (
	CategoryAll       = "tap-all"
	CategoryMyFood    = "my-food"
	CategoryFavorites = "my-favorites"
)

// IsPseudoCategory reports whether id names a filter shortcut rather
// than a real category.
func IsPseudoCategory(id string) bool {
	return id == CategoryAll || id == CategoryMyFood || id == CategoryFavorites
}

// Categories is the fixed category table.
var Categories = []Category{
	{ID: "1", Name: "Appetizers", Icon: "restaurant-outline"},
	{ID: "2", Name: "Salads", Icon: "leaf-outline"},
	{ID: "3", Name: "Main Dishes", Icon: "fast-food-outline"},
	{ID: "4", Name: "Desserts", Icon: "ice-cream-outline"},
	{ID: "5", Name: "Drinks", Icon: "cafe-outline"},
	{ID: "6", Name: "Vegan", Icon: "leaf-outline"},
	{ID: "7", Name: "Low-Carb", Icon: "fitness-outline"},
	{ID: "8", Name: "High-Protein", Icon: "barbell-outline"},
	{ID: "9", Name: "Quick Meals", Icon: "timer-outline"},
	{ID: "10", Name: "International Cuisine", Icon: "globe-outline"},
}

// DietaryPreference is a selectable dietary tag.
type DietaryPreference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DietaryPreferences is the fixed dietary tag table.
var DietaryPreferences = []DietaryPreference{
	{ID: "1", Name: "Vegan", Icon: "leaf-outline"},
	{ID: "2", Name: "Vegetarian", Icon: "leaf-outline"},
	{ID: "3", Name: "Gluten-Free", Icon: "nutrition-outline"},
	{ID: "4", Name: "Dairy-Free", Icon: "nutrition-outline"},
	{ID: "5", Name: "Keto", Icon: "fitness-outline"},
	{ID: "6", Name: "Paleo", Icon: "fish-outline"},
}
