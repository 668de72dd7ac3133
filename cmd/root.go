package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocoder/internal/cache"
	"github.com/sells-group/census-geocoder/internal/config"
	"github.com/sells-group/census-geocoder/internal/resilience"
	"github.com/sells-group/census-geocoder/pkg/census"
)

var cfg *config.Config

var (
	flagBenchmark string
	flagVintage   string
	flagLayers    string
	flagLocations bool
)

var rootCmd = &cobra.Command{
	Use:   "census-geocoder",
	Short: "Client for the US Census Bureau Geocoding Services API",
	Long:  "Geocodes addresses and coordinates against the Census Geocoder, resolving friendly benchmark, vintage, and layer names and returning matched addresses with their geographic areas.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBenchmark, "benchmark", "", "benchmark name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagVintage, "vintage", "", "vintage name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLayers, "layers", "", "comma-delimited layer names (default from config)")
}

// requestOptions merges persistent flags over config defaults.
func requestOptions() census.RequestOptions {
	opts := census.RequestOptions{
		Benchmark:  cfg.Geocoder.Benchmark,
		Vintage:    cfg.Geocoder.Vintage,
		Layers:     cfg.Geocoder.Layers,
		ReturnType: census.ReturnType(cfg.Geocoder.ReturnType),
	}
	if flagBenchmark != "" {
		opts.Benchmark = flagBenchmark
	}
	if flagVintage != "" {
		opts.Vintage = flagVintage
	}
	if flagLayers != "" {
		opts.Layers = flagLayers
	}
	if flagLocations {
		opts.ReturnType = census.ReturnLocations
	}
	return opts
}

// newClient builds a census client from configuration. The returned cleanup
// closes the cache store when one is attached.
func newClient(ctx context.Context) (census.Client, func(), error) {
	if err := cfg.Validate("client"); err != nil {
		return nil, nil, err
	}

	opts := []census.Option{
		census.WithBaseURL(cfg.Geocoder.BaseURL),
		census.WithRateLimit(cfg.Geocoder.RateLimit),
		census.WithRetry(resilience.FromRetryConfig(cfg.Retry.MaxAttempts, cfg.Retry.InitialMillis, cfg.Retry.MaxBackoffSecs)),
		census.WithCircuitBreaker(resilience.FromCircuitConfig(cfg.Retry.BreakerThreshold, cfg.Retry.BreakerResetSecs)),
	}

	cleanup := func() {}
	switch cfg.Cache.Driver {
	case "sqlite":
		store, err := cache.NewSQLite(cfg.Cache.DSN, cfg.Cache.TTL())
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, census.WithCache(store))
		cleanup = func() { store.Close() } //nolint:errcheck
	case "postgres":
		store, err := cache.NewPostgres(ctx, cfg.Cache.DSN, cfg.Cache.TTL())
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, census.WithCache(store))
		cleanup = func() { store.Close() } //nolint:errcheck
	}

	return census.NewClient(opts...), cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
