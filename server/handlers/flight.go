// Package handlers exposes the flight function over HTTP.
//
// The web action accepts the invocation arguments either as a JSON object in
// a POST body or as query parameters, runs one invocation and writes the
// envelope: the envelope status code becomes the HTTP status and the envelope
// body becomes the JSON response body.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/flight"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the request body; a flight query is a handful of strings.
const maxBodyBytes = 64 << 10

// Invoker runs one flight invocation.
type Invoker interface {
	Main(ctx context.Context, args map[string]interface{}) flight.Envelope
}

// FlightHandler serves the flight web action.
type FlightHandler struct {
	invoker Invoker
	logger  *zap.Logger
}

// NewFlightHandler creates a FlightHandler.
func NewFlightHandler(invoker Invoker, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{invoker: invoker, logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *FlightHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := errors.RequestIDFrom(r.Context())

	args, fe := readArgs(r)
	if fe != nil {
		fe.RequestID = requestID
		h.logger.Debug("Invalid request",
			zap.String("request_id", requestID),
			zap.String("message", fe.Message),
		)
		errors.WriteJSON(w, errors.StatusFor(fe), errors.BodyFor(fe))
		return
	}

	env := h.invoker.Main(r.Context(), args)
	errors.WriteJSON(w, env.StatusCode, env.Body)
}

// readArgs merges query parameters with a JSON body. Body values win.
func readArgs(r *http.Request) (map[string]interface{}, *errors.FunctionError) {
	args := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			args[key] = values[0]
		}
	}

	if r.Method != http.MethodPost {
		return args, nil
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return nil, errors.NewValidationError("", "Content-Type must be application/json", map[string]interface{}{
				"content_type": ct,
			})
		}
	}

	var body map[string]interface{}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil && err != io.EOF {
		return nil, errors.NewValidationError("", "Invalid request body: "+err.Error(), nil)
	}
	for key, value := range body {
		args[key] = value
	}
	return args, nil
}
