package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teilomillet/flightinfo/config"
	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/flight"
	"github.com/teilomillet/flightinfo/server/mocks"
	"go.uber.org/zap/zaptest"
)

func TestLambdaHandler(t *testing.T) {
	mock := mocks.NewMockAgent(func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		assert.Equal(t, "aws-req-1", errors.RequestIDFrom(ctx))
		return mocks.Completion("chatcmpl-lambda", "UA 9"), nil
	})

	cfg := config.DefaultConfig().Agent
	cfg.Key = "key"
	cfg.BaseURL = "https://agent.example.com"
	logger := zaptest.NewLogger(t)
	fn := newHandler(flight.NewHandler(cfg, flight.WithClientFactory(mock.Factory()), flight.WithLogger(logger)), logger)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-req-1"})
	env, err := fn(ctx, map[string]interface{}{
		"fromCity":      "Chicago",
		"toCity":        "Denver",
		"departureDate": "2024-07-04",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, env.StatusCode)

	info, ok := env.Body.(*flight.Info)
	require.True(t, ok)
	assert.Equal(t, "UA 9", info.FlightInfo)
	assert.Equal(t, "chatcmpl-lambda", info.CompletionID)
}

func TestLambdaHandlerNilEvent(t *testing.T) {
	logger := zaptest.NewLogger(t)
	fn := newHandler(flight.NewHandler(config.DefaultConfig().Agent, flight.WithLogger(logger)), logger)

	env, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, errors.Body{Error: flight.RequiredMessage, Type: errors.ValidationError}, env.Body)
}
