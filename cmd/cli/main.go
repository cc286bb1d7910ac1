package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pilotsmatch/escort-engine/pkg/services/config"
	"github.com/pilotsmatch/escort-engine/pkg/services/distance"
	quotesvc "github.com/pilotsmatch/escort-engine/pkg/services/quote"
	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
	"github.com/pilotsmatch/escort-engine/pkg/store/rates"
	"github.com/pilotsmatch/escort-engine/pkg/terminal/commands"
)

// newRootCmd builds the CLI. Service wiring runs in PersistentPreRunE so it
// sees the parsed --config flag value.
func newRootCmd(out io.Writer) *cobra.Command {
	deps := &commands.Deps{}
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:          "escort-engine",
		Short:        "Pilot car quote and escort requirement calculations",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			var provider distance.Provider
			if cfg.Routing.BaseURL != "" && cfg.Routing.APIKey != "" {
				p, err := distance.NewMatrixProvider(distance.MatrixOptions{
					BaseURL: cfg.Routing.BaseURL,
					APIKey:  cfg.Routing.APIKey,
					Timeout: cfg.Routing.Timeout,
				})
				if err != nil {
					return fmt.Errorf("failed to build routing provider: %w", err)
				}
				provider = p
			} else {
				logger.Warn().Msg("no routing provider configured, distances use the deterministic fallback")
			}

			rateStore := rates.NewStore()
			estimator := distance.NewEstimator(provider, nil)
			deps.Calculator = quotesvc.NewCalculator(estimator, rateStore, nil)
			deps.Resolver = regulation.NewResolver(regulation.NewStore(cfg.Regulations.Path), nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (optional)")

	rootCmd.AddCommand(commands.NewQuoteCmd(deps, out))
	rootCmd.AddCommand(commands.NewEscortsCmd(deps, out))

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
