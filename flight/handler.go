package flight

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/teilomillet/flightinfo/agent"
	"github.com/teilomillet/flightinfo/config"
	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/metrics"
	"go.uber.org/zap"
)

// NoResponse is the flight info returned when the agent sends no choices.
const NoResponse = "No response from AI"

// MissingCredentialsMessage is the config error raised without agent credentials.
const MissingCredentialsMessage = "FLIGHT_AGENT_KEY and FLIGHT_AGENT_BASE_URL environment variables are required"

const defaultTimeout = 60 * time.Second

// Handler runs flight invocations. It holds configuration only; every
// invocation builds and discards its own agent client.
type Handler struct {
	cfg       config.AgentConfig
	newClient agent.Factory
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// Option configures a Handler.
type Option func(*Handler)

// WithClientFactory replaces the agent client constructor.
func WithClientFactory(f agent.Factory) Option {
	return func(h *Handler) { h.newClient = f }
}

// WithLogger sets the logger used for failed invocations. A nil logger is
// ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMetrics records invocation outcomes and agent latency on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a Handler for the given agent configuration.
func NewHandler(cfg config.AgentConfig, opts ...Option) *Handler {
	h := &Handler{
		cfg:       cfg,
		newClient: agent.NewClient,
		logger:    errors.DefaultLogger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Invoke runs one invocation. It returns either the success body or a
// *errors.FunctionError whose Kind is ValidationError or ServerError.
func (h *Handler) Invoke(ctx context.Context, args map[string]interface{}) (*Info, error) {
	requestID := errors.RequestIDFrom(ctx)

	q, err := ParseQuery(requestID, args)
	if err != nil {
		return nil, err
	}

	if !h.cfg.HasCredentials() {
		return nil, errors.NewConfigError(requestID, MissingCredentialsMessage)
	}

	messages, err := Messages(q)
	if err != nil {
		return nil, errors.NewServerError(requestID, err)
	}

	client, err := h.newClient(h.cfg)
	if err != nil {
		return nil, errors.NewServerError(requestID, fmt.Errorf("create agent client: %w", err))
	}

	timeout := h.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, agent.Request(h.cfg, toChatMessages(messages)))
	h.metrics.ObserveAgent(time.Since(start).Seconds())
	if err != nil {
		return nil, errors.NewAgentError(requestID, err)
	}

	info := &Info{
		FlightInfo:    agent.FirstContent(resp, NoResponse),
		CompletionID:  resp.ID,
		FromCity:      q.FromCity,
		ToCity:        q.ToCity,
		DepartureDate: q.DepartureDate,
		TripType:      q.TripType,
	}
	if q.ReturnDate != "" {
		rd := q.ReturnDate
		info.ReturnDate = &rd
	}
	return info, nil
}

// Main runs one invocation and shapes the result into an Envelope. Server
// errors are logged before the envelope is returned.
func (h *Handler) Main(ctx context.Context, args map[string]interface{}) Envelope {
	info, err := h.Invoke(ctx, args)
	if err == nil {
		h.metrics.ObserveInvocation("success")
		return Envelope{StatusCode: http.StatusOK, Body: info}
	}

	requestID := errors.RequestIDFrom(ctx)
	fe := errors.From(requestID, err)
	kind := fe.Kind()
	h.metrics.ObserveInvocation(string(kind))

	if kind == errors.ServerError {
		errors.LogError(h.logger, fe, requestID)
	} else {
		h.logger.Debug("Rejected flight query",
			zap.String("request_id", requestID),
			zap.String("message", fe.Message),
		)
	}

	return Envelope{StatusCode: errors.StatusFor(fe), Body: errors.BodyFor(fe)}
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		result[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return result
}
