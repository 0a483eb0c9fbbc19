package model

// SampleUserID is the owner id of the built-in user. Seeded recipes
// belong to it, and unauthenticated sessions browse as it.
const SampleUserID = "sample-user"

// User identifies a session owner. Authentication is a stub: the only
// user is the built-in sample user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SampleUser returns the built-in user.
func SampleUser() User {
	return User{
		ID:    SampleUserID,
		Name:  "Sample User",
		Email: "sample@foodieapp.dev",
	}
}
