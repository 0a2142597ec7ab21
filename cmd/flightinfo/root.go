package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teilomillet/flightinfo/config"
	"github.com/teilomillet/flightinfo/errors"
	"go.uber.org/zap"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	envFiles   []string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "flightinfo",
		Short: "Flight information function backed by a hosted completion agent",
		Long: `flightinfo turns a flight query (origin, destination, dates, trip type) into a
travel-agent prompt, asks the configured completion agent for flight listings,
and returns a {statusCode, body} envelope.

Agent credentials come from FLIGHT_AGENT_KEY and FLIGHT_AGENT_BASE_URL, which
may be placed in a .env file.`,
		Version:      Version,
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("flightinfo {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "",
		"Path to a YAML configuration file (optional)")
	rootCmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{config.DefaultEnvFile},
		"Environment files to load before reading the environment")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newInvokeCmd(flags))
	rootCmd.AddCommand(newValidateCmd(flags))

	return rootCmd
}

// setup resolves configuration and builds the logger for a command.
func setup(flags *globalFlags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Resolve(flags.configFile, flags.envFiles...)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := cfg.Logging.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	errors.SetLogger(logger)

	return cfg, logger, nil
}

func newValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			if !cfg.Agent.HasCredentials() {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s or %s is not set; invocations will fail\n",
					config.EnvAgentKey, config.EnvAgentBaseURL)
			}
			return nil
		},
	}
}
