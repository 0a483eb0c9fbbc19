package model

// Settings is the per-installation singleton: upsert-only, never
// deleted.
type Settings struct {
	Dietary       []string `json:"dietary"`
	Notifications bool     `json:"notifications"`
	DarkMode      bool     `json:"dark_mode"`
}

// DefaultSettings returns the settings used when none were saved yet.
func DefaultSettings() Settings {
	return Settings{
		Dietary:       []string{},
		Notifications: true,
		DarkMode:      false,
	}
}
