package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pfe_service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, handler http.HandlerFunc) (*AIService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewAIService(config.AIConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
	return svc, srv
}

func TestChatSendsCompletionRequest(t *testing.T) {
	var got ChatCompletionRequest
	var auth string

	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{{Message: AIChatMessage{Role: "assistant", Content: "hello"}}},
		})
	})

	content, err := svc.Chat(context.Background(), "system says", "user asks", 0.7, 4000)
	require.NoError(t, err)

	assert.Equal(t, "hello", content)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 4000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestChatOmitsEmptySystemPrompt(t *testing.T) {
	var got ChatCompletionRequest
	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{{Message: AIChatMessage{Content: "ok"}}},
		})
	})

	_, err := svc.Chat(context.Background(), "", "just the user", 0, 10)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestChatRejectsNonOKStatus(t *testing.T) {
	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := svc.Chat(context.Background(), "", "prompt", 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestChatSurfacesAPIError(t *testing.T) {
	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"invalid model"}}`))
	})

	_, err := svc.Chat(context.Background(), "", "prompt", 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model")
}

func TestChatRejectsEmptyChoices(t *testing.T) {
	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.Chat(context.Background(), "", "prompt", 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestChatReportsTruncatedBody(t *testing.T) {
	svc, _ := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Content-Length超过实际写入量，客户端读body时得到EOF
		w.Header().Set("Content-Length", "500")
		w.Write([]byte(`{"choices":`))
	})

	_, err := svc.Chat(context.Background(), "", "prompt", 0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read AI response body")
}

func TestChatUsesUpdatedConfig(t *testing.T) {
	svc, srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		var got ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{{Message: AIChatMessage{Content: got.Model}}},
		})
	})

	svc.UpdateConfig(config.AIConfig{BaseURL: srv.URL, APIKey: "k2", Model: "newer-model"})

	content, err := svc.Chat(context.Background(), "", "prompt", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "newer-model", content)
}
