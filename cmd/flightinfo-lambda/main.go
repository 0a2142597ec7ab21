// Command flightinfo-lambda runs the flight function as an AWS Lambda
// handler. The event is the invocation argument map and the response is the
// {statusCode, body} envelope.
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/teilomillet/flightinfo/config"
	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/flight"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Resolve(os.Getenv("FLIGHTINFO_CONFIG"), config.DefaultEnvFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := cfg.Logging.Build()
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()
	errors.SetLogger(logger)

	if !cfg.Agent.HasCredentials() {
		logger.Warn("Agent credentials missing; invocations will return server errors")
	}

	lambda.Start(newHandler(flight.NewHandler(cfg.Agent, flight.WithLogger(logger)), logger))
}

// newHandler adapts h to the Lambda calling convention. Failures are carried
// in the envelope, so the returned error is always nil.
func newHandler(h *flight.Handler, logger *zap.Logger) func(context.Context, map[string]interface{}) (flight.Envelope, error) {
	return func(ctx context.Context, event map[string]interface{}) (flight.Envelope, error) {
		requestID := uuid.New().String()
		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			requestID = lc.AwsRequestID
		}
		if event == nil {
			event = map[string]interface{}{}
		}
		env := h.Main(errors.WithRequestID(ctx, requestID), event)
		logger.Debug("Invocation finished",
			zap.String("request_id", requestID),
			zap.Int("status_code", env.StatusCode),
		)
		return env, nil
	}
}
