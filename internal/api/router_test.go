package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Debug:   true,
			Version: "1.0.0",
			Env:     "test",
		},
		Server: config.ServerConfig{Port: 8080},
		OpenAI: config.OpenAIConfig{
			APIKey:  "sk-test",
			BaseURL: "http://localhost",
			Model:   "gpt-4",
			Timeout: time.Second,
		},
		Spoonacular: config.SpoonacularConfig{
			APIKey:     "spoon-test",
			BaseURL:    "http://localhost",
			MaxResults: 5,
			Timeout:    time.Second,
		},
	}
}

func serve(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := SetupRouter(testRouterConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealthEndpoints(t *testing.T) {
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(t, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, "path: %s", path)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	w := serve(t, http.MethodGet, "/no/such/route")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrNotFound.Code, resp["code"])
}

func TestRouterMethodNotAllowed(t *testing.T) {
	w := serve(t, http.MethodGet, "/api/v1/vibe/generate")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, common.ErrMethodNotAllowed.Code, resp["code"])
}
