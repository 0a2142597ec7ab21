package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teilomillet/flightinfo/flight"
	"github.com/teilomillet/flightinfo/metrics"
	"github.com/teilomillet/flightinfo/server"
	"go.uber.org/zap"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the function as an HTTP web action",
		Long: `Start an HTTP server exposing the function at POST /v1/flights (JSON body)
and GET /v1/flights (query parameters), plus /health and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(flags)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if !cfg.Agent.HasCredentials() {
				logger.Warn("Agent credentials missing; invocations will return server errors",
					zap.String("key_env", "FLIGHT_AGENT_KEY"),
					zap.String("base_url_env", "FLIGHT_AGENT_BASE_URL"),
				)
			}

			m := metrics.NewMetrics()
			handler := flight.NewHandler(cfg.Agent,
				flight.WithLogger(logger),
				flight.WithMetrics(m),
			)
			srv := server.NewServer(cfg.Server, server.NewRouter(handler, m, logger), logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting flightinfo",
				zap.String("version", Version),
				zap.String("address", srv.Addr()),
				zap.String("model", cfg.Agent.Model),
			)
			if err := srv.Start(ctx); err != nil {
				logger.Error("Server startup or runtime error", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides config)")
	return cmd
}
