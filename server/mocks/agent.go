package mocks

import (
	"context"
	"sync"

	"github.com/sashabaranov/go-openai"
	"github.com/teilomillet/flightinfo/agent"
	"github.com/teilomillet/flightinfo/config"
)

// MockAgent implements agent.Client for tests without making network calls.
//
// Example usage:
//
//	mock := NewMockAgent(func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
//	    return Completion("chatcmpl-1", "BA 178"), nil
//	})
type MockAgent struct {
	CompleteFunc func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)

	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
}

// NewMockAgent creates a MockAgent. A nil completeFunc returns an empty
// response with no error.
func NewMockAgent(completeFunc func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)) *MockAgent {
	return &MockAgent{CompleteFunc: completeFunc}
}

// CreateChatCompletion records req and delegates to CompleteFunc.
func (m *MockAgent) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return openai.ChatCompletionResponse{}, nil
}

// Requests returns every request received so far.
func (m *MockAgent) Requests() []openai.ChatCompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]openai.ChatCompletionRequest(nil), m.requests...)
}

// Factory returns an agent.Factory that always hands out m.
func (m *MockAgent) Factory() agent.Factory {
	return func(config.AgentConfig) (agent.Client, error) {
		return m, nil
	}
}

// Completion builds a response with a single assistant choice.
func Completion(id, content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID: id,
		Choices: []openai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			},
		},
	}
}
