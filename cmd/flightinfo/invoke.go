package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/flight"
)

type invokeFlags struct {
	from      string
	to        string
	departure string
	returning string
	tripType  string
	argsFile  string
}

func newInvokeCmd(flags *globalFlags) *cobra.Command {
	opts := &invokeFlags{}

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run a single invocation and print the envelope",
		Long: `Run the function once and print the {statusCode, body} envelope as JSON.

Arguments come from --args-file (a JSON object, "-" for stdin) and are
overridden by any of the individual flags that are set.`,
		Example: `  flightinfo invoke --from "New York" --to London --departure 2024-03-15
  flightinfo invoke --from Paris --to Rome --departure 2024-05-01 --return 2024-05-08 --trip-type round-trip
  echo '{"fromCity":"Oslo","toCity":"Bergen","departureDate":"2024-06-01"}' | flightinfo invoke --args-file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(flags)
			if err != nil {
				return err
			}
			defer logger.Sync()

			fnArgs, err := opts.arguments(cmd)
			if err != nil {
				return err
			}

			h := flight.NewHandler(cfg.Agent, flight.WithLogger(logger))
			ctx := errors.WithRequestID(cmd.Context(), uuid.New().String())
			env := h.Main(ctx, fnArgs)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(env); err != nil {
				return fmt.Errorf("encode envelope: %w", err)
			}
			if env.StatusCode != http.StatusOK {
				return fmt.Errorf("invocation failed with status %d", env.StatusCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Departure city (fromCity)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Destination city (toCity)")
	cmd.Flags().StringVar(&opts.departure, "departure", "", "Departure date (departureDate)")
	cmd.Flags().StringVar(&opts.returning, "return", "", "Return date (returnDate)")
	cmd.Flags().StringVar(&opts.tripType, "trip-type", "", "Trip type: one-way or round-trip")
	cmd.Flags().StringVar(&opts.argsFile, "args-file", "", `JSON file with invocation arguments ("-" for stdin)`)
	return cmd
}

// arguments merges the args file with the flags that were explicitly set.
func (o *invokeFlags) arguments(cmd *cobra.Command) (map[string]interface{}, error) {
	args := map[string]interface{}{}

	if o.argsFile != "" {
		var r io.Reader
		if o.argsFile == "-" {
			r = cmd.InOrStdin()
		} else {
			f, err := os.Open(o.argsFile)
			if err != nil {
				return nil, fmt.Errorf("open args file: %w", err)
			}
			defer f.Close()
			r = f
		}
		if err := json.NewDecoder(r).Decode(&args); err != nil {
			return nil, fmt.Errorf("decode args file: %w", err)
		}
	}

	for flag, key := range map[string]string{
		"from":      "fromCity",
		"to":        "toCity",
		"departure": "departureDate",
		"return":    "returnDate",
		"trip-type": "tripType",
	} {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			args[key] = v
		}
	}
	return args, nil
}
