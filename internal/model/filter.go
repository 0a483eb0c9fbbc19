package model

// SortKey selects the comparator of a filtered view.
type SortKey string

const (
	SortByPrepTime   SortKey = "prepTime"
	SortByPopularity SortKey = "popularity"
	SortByDifficulty SortKey = "difficulty"
	SortByCalories   SortKey = "calories"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByPrepTime, SortByPopularity, SortByDifficulty, SortByCalories:
		return true
	default:
		return false
	}
}

// SortOption is static reference data describing a selectable sort.
type SortOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value SortKey `json:"value"`
}

// SortOptions is the fixed sort option table.
var SortOptions = []SortOption{
	{ID: "1", Name: "Preparation Time", Value: SortByPrepTime},
	{ID: "2", Name: "Popularity", Value: SortByPopularity},
	{ID: "3", Name: "Difficulty", Value: SortByDifficulty},
	{ID: "4", Name: "Calories", Value: SortByCalories},
}

// FilterCriteria narrows a view of the recipe collection. Zero values
// mean "no constraint": an empty Dietary list, an empty Difficulty and
// a MaxPrepTime of 0 each disable their predicate.
type FilterCriteria struct {
	// Dietary tags combine with AND semantics: a recipe must carry
	// every selected tag.
	Dietary []string `json:"dietary"`
	// Difficulty is an exact match when set.
	Difficulty Difficulty `json:"difficulty,omitempty"`
	// MaxPrepTime is an inclusive upper bound in minutes when > 0.
	MaxPrepTime int `json:"max_prep_time,omitempty"`
}
