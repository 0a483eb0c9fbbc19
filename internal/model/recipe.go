package model

import "time"

// Difficulty is the preparation difficulty of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Rank returns the sort rank of a difficulty (EASY < MEDIUM < HARD).
// Unknown values rank last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 4
	}
}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// ImageRefKind discriminates the image reference union.
type ImageRefKind string

const (
	ImageNone   ImageRefKind = ""
	ImageAsset  ImageRefKind = "asset"
	ImageRemote ImageRefKind = "uri"
)

// ImageRef is an opaque image reference: either absent, a bundled asset
// id, or a remote URI. The core never resolves it; the presentation
// layer does.
type ImageRef struct {
	Kind ImageRefKind `json:"kind"`
	Ref  string       `json:"ref"`
}

// AssetImage returns a reference to a bundled asset.
func AssetImage(id string) ImageRef {
	return ImageRef{Kind: ImageAsset, Ref: id}
}

// RemoteImage returns a reference to a remote URI.
func RemoteImage(uri string) ImageRef {
	return ImageRef{Kind: ImageRemote, Ref: uri}
}

// IsZero reports whether the reference is absent.
func (r ImageRef) IsZero() bool {
	return r.Kind == ImageNone && r.Ref == ""
}

// Ingredient is one entry of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Instruction is one step of a recipe. Image and Video are optional
// URIs and usually empty.
type Instruction struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
	Video string `json:"video,omitempty"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Comment is reserved for a future commenting feature; persisted
// recipes always carry an empty list.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Recipe is the catalog's central record. IDs are opaque strings,
// unique within the collection.
type Recipe struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Image        ImageRef      `json:"image"`
	Video        string        `json:"video,omitempty"`
	CategoryID   string        `json:"category_id"`
	PrepTime     int           `json:"prep_time"`
	CookTime     int           `json:"cook_time"`
	Servings     int           `json:"servings"`
	Difficulty   Difficulty    `json:"difficulty"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []Instruction `json:"instructions"`
	Nutrition    Nutrition     `json:"nutrition"`
	OwnerID      string        `json:"owner_id"`
	Dietary      []string      `json:"dietary"`
	Likes        int           `json:"likes"`
	Comments     []Comment     `json:"comments"`
	CreatedAt    time.Time     `json:"created_at"`
}

// HasDietary reports whether the recipe carries every tag in tags.
func (r Recipe) HasDietary(tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range r.Dietary {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
