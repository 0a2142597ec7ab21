// Package agent connects to the hosted completion agent. The agent speaks the
// OpenAI chat completions protocol, so the client is a thin go-openai client
// pointed at the agent endpoint.
package agent

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"github.com/teilomillet/flightinfo/config"
)

// Client is the subset of openai.Client used by the flight handler.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Factory builds a Client for one invocation.
type Factory func(cfg config.AgentConfig) (Client, error)

// NewClient creates a go-openai client authenticated with the agent access
// key and rooted at the agent endpoint.
func NewClient(cfg config.AgentConfig) (Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("agent key and base URL are required")
	}

	oc := openai.DefaultConfig(cfg.Key)
	oc.BaseURL = cfg.Endpoint()
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return openai.NewClientWithConfig(oc), nil
}

// Request builds the chat completion request for the given messages using the
// configured model, temperature and token ceiling.
func Request(cfg config.AgentConfig, messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
}

// FirstContent returns the content of the first choice, or fallback when the
// response has no choices.
func FirstContent(resp openai.ChatCompletionResponse, fallback string) string {
	if len(resp.Choices) == 0 {
		return fallback
	}
	return resp.Choices[0].Message.Content
}
