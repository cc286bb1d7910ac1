package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pilotsmatch/escort-engine/pkg/metrics"
	"github.com/pilotsmatch/escort-engine/pkg/server"
	"github.com/pilotsmatch/escort-engine/pkg/services/config"
	"github.com/pilotsmatch/escort-engine/pkg/services/distance"
	quotesvc "github.com/pilotsmatch/escort-engine/pkg/services/quote"
	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
	"github.com/pilotsmatch/escort-engine/pkg/store/rates"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the quote and escort calculation API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (optional, env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	sink, err := metrics.NewSink(nil)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
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
		logger.Info().Str("base_url", cfg.Routing.BaseURL).Msg("routing provider configured")
	} else {
		logger.Warn().Msg("no routing provider configured, distances use the deterministic fallback")
	}

	regulationStore := regulation.NewStore(cfg.Regulations.Path)
	if _, err := regulationStore.Regulations(); err != nil {
		return fmt.Errorf("failed to load state regulations: %w", err)
	}

	rateStore := rates.NewStore()
	estimator := distance.NewEstimator(provider, sink)
	calculator := quotesvc.NewCalculator(estimator, rateStore, sink)
	resolver := regulation.NewResolver(regulationStore, sink)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: calculator,
			Resolver:   resolver,
			Rates:      rateStore,
			Logger:     logger,
		},
	})

	return api.Start()
}
