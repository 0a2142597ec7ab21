package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teilomillet/flightinfo/config"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	cfg := config.DefaultConfig().Agent

	_, err := NewClient(cfg)
	assert.Error(t, err)

	cfg.Key = "key"
	_, err = NewClient(cfg)
	assert.Error(t, err, "base URL is still missing")
}

// TestClientRoundTrip points a real client at a fake agent and checks the
// path, auth header and request parameters it sends.
func TestClientRoundTrip(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer agent-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID: "chatcmpl-123",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "BA 178"}},
			},
		})
	}))
	defer srv.Close()

	cfg := config.DefaultConfig().Agent
	cfg.Key = "agent-key"
	cfg.BaseURL = srv.URL + "/"
	cfg.Timeout = 5 * time.Second

	client, err := NewClient(cfg)
	require.NoError(t, err)

	req := Request(cfg, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "persona"},
		{Role: openai.ChatMessageRoleUser, Content: "prompt"},
	})
	resp, err := client.CreateChatCompletion(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-123", resp.ID)
	assert.Equal(t, "BA 178", FirstContent(resp, "none"))
	assert.Equal(t, "llama3-8b-instruct", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	assert.Equal(t, 2000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[1].Role)
}

func TestClientServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid agent key","type":"auth_error"}}`))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig().Agent
	cfg.Key = "bad"
	cfg.BaseURL = srv.URL

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), Request(cfg, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid agent key")
}

func TestFirstContent(t *testing.T) {
	assert.Equal(t, "fallback", FirstContent(openai.ChatCompletionResponse{}, "fallback"))
}
