package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/foodieapp/backend/internal/service"
	"github.com/foodieapp/backend/internal/store"
)

// testEnv bundles a fully wired router with the services behind it.
type testEnv struct {
	router        *gin.Engine
	recipes       *service.RecipeService
	notifications *service.NotificationService
	auth          *service.AuthService
	store         *store.Store
}

const testPassword = "test-password"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewMemoryKV(), zerolog.Nop())
	notifications := service.NewNotificationService(zerolog.Nop())
	auth, err := service.NewAuthService("test-secret", testPassword)
	require.NoError(t, err)

	recipes := service.NewRecipeService(st, notifications, zerolog.Nop())
	require.NoError(t, recipes.Load(context.Background()))

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(auth).RegisterRoutes(v1)
	NewRecipeHandler(recipes, auth).RegisterRoutes(v1)
	NewMetaHandler().RegisterRoutes(v1)
	NewSettingsHandler(recipes).RegisterRoutes(v1)
	NewNotificationHandler(notifications).RegisterRoutes(v1)

	return &testEnv{
		router:        router,
		recipes:       recipes,
		notifications: notifications,
		auth:          auth,
		store:         st,
	}
}

// request performs one in-process request and returns the recorder.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login fetches a session token for the sample user.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email:    e.auth.User().Email,
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
