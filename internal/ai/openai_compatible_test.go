package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *OpenAICompatibleClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewOpenAICompatibleClient(ChatConfig{BaseURL: srv.URL + "/", APIKey: "sk-test", Model: "gemini-2.0-flash"})
	require.NoError(t, err)
	return c
}

func TestNewOpenAICompatibleClient_Validates(t *testing.T) {
	_, err := NewOpenAICompatibleClient(ChatConfig{Model: "m"})
	require.Error(t, err)
	_, err = NewOpenAICompatibleClient(ChatConfig{BaseURL: "http://x"})
	require.Error(t, err)

	c, err := NewOpenAICompatibleClient(ChatConfig{BaseURL: "http://x", Model: " m "})
	require.NoError(t, err)
	require.Equal(t, "m", c.Model())
	require.Equal(t, defaultTimeout, c.httpClient.Timeout)
}

func TestComplete_SendsMessagesAndReturnsContent(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		got     struct {
			Model    string        `json:"model"`
			Messages []ChatMessage `json:"messages"`
			Stream   bool          `json:"stream"`
		}
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  **hi** there \n"}}]}`))
	})

	msgs := []ChatMessage{{Role: RoleUser, Content: "persona"}, {Role: RoleAssistant, Content: "ok"}, {Role: RoleUser, Content: "hello"}}
	out, err := c.Complete(context.Background(), msgs)
	require.NoError(t, err)
	require.Equal(t, "  **hi** there \n", out, "content must come back untouched")
	require.Equal(t, "/chat/completions", gotPath)
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gemini-2.0-flash", got.Model)
	require.False(t, got.Stream)
	require.Equal(t, msgs, got.Messages)
}

func TestComplete_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	})

	_, err := c.Complete(context.Background(), nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestComplete_MalformedAndEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	_, err := c.Complete(context.Background(), nil)
	require.ErrorContains(t, err, "parse llm json failed")

	c = newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err = c.Complete(context.Background(), nil)
	require.ErrorContains(t, err, "empty llm choices")
}

func TestComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewOpenAICompatibleClient(ChatConfig{BaseURL: srv.URL, Model: "m", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), nil)
	require.ErrorContains(t, err, "llm request failed")
}
