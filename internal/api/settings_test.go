package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/model"
)

func TestGetSettingsDefaults(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings model.Settings
	decodeBody(t, w, &settings)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	want := model.Settings{
		Dietary:       []string{"Vegan", "Gluten-Free"},
		Notifications: false,
		DarkMode:      true,
	}
	w := env.request(t, http.MethodPut, "/api/v1/settings", "", want)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Settings
	decodeBody(t, w, &got)
	assert.Equal(t, want, got)
}

func TestSaveSettingsNormalizesNilDietary(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/v1/settings", "", map[string]interface{}{
		"dark_mode": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Settings
	decodeBody(t, w, &got)
	assert.NotNil(t, got.Dietary)
	assert.Empty(t, got.Dietary)
	assert.True(t, got.DarkMode)
}
