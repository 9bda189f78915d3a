package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibe-recipe-app/internal/infrastructure/config"
	"vibe-recipe-app/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			APIKey:    "sk-test",
			BaseURL:   baseURL,
			Model:     "gpt-4",
			MaxTokens: 1000,
			Timeout:   5 * time.Second,
		},
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, common.ParseJSONBytes(readAll(t, r), &gotBody))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"rustic hearty medieval stew"}},{"message":{"content":"ignored"}}]}`)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	content, err := client.Complete(context.Background(), "describe the vibe")
	require.NoError(t, err)

	assert.Equal(t, "rustic hearty medieval stew", content)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "describe the vibe", gotBody.Messages[0].Content)
}

// choices 為空屬於正常回應，回傳空字串讓呼叫端套用預設關鍵字
func TestCompleteEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	content, err := client.Complete(context.Background(), "describe the vibe")
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestCompleteUpstreamErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model overloaded"}}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	_, err := client.Complete(context.Background(), "describe the vibe")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAIServiceError)
}

func TestCompleteMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL))
	_, err := client.Complete(context.Background(), "describe the vibe")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrAIServiceError)
}

func readAll(t *testing.T, r *http.Request) []byte {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	return body
}
