package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/config"
	"github.com/s0up4200/tmdbkit/endpoints"
	"github.com/s0up4200/tmdbkit/facade"
	"github.com/s0up4200/tmdbkit/filter"
	"github.com/s0up4200/tmdbkit/metrics"
	"github.com/s0up4200/tmdbkit/tmdb"
	"github.com/s0up4200/tmdbkit/transport"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	endpoint  endpoints.Config
	apiClient *tmdb.Client
	client    *facade.Client
	registry  *prometheus.Registry
	compiler  = filter.NewCompiler()

	// Command flags
	filterExpr string
	preset     string
	language   string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbkit",
	Short: "Query The Movie Database from the command line",
	Long: `tmdbkit is a CLI for The Movie Database (TMDb) v3 API. It looks up movies
and people, searches and discovers titles, and manages the endpoint
configuration used to talk to the API.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: reportMetrics,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "response language (overrides tmdb.language)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of a summary")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if !cmd.Flags().Changed("language") {
		language = cfg.TMDb.Language
	}

	endpoint, err = cfg.Endpoints()
	if err != nil {
		return fmt.Errorf("failed to load endpoints: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		collector = metrics.NewCollector(registry)
	}

	httpTransport := transport.NewHTTPTransport(logger,
		transport.WithUserAgent(cfg.Transport.UserAgent),
		transport.WithDefaultTimeout(cfg.Transport.Timeout),
		transport.WithRateLimit(cfg.Transport.RateLimit, cfg.Transport.Burst),
		transport.WithCircuitBreaker(cfg.Transport.BreakerFailures, cfg.Transport.BreakerCooldown),
		transport.WithMetrics(collector),
	)

	apiClient, err = tmdb.NewClient(&endpoint, httpTransport, logger,
		tmdb.WithTimeout(cfg.Transport.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDb client: %w", err)
	}

	client, err = facade.New(apiClient,
		facade.WithMaxConcurrent(cfg.Client.MaxConcurrent),
		facade.WithThrowOnError(cfg.Client.ThrowOnError),
		facade.WithLogger(logger),
		facade.WithMetrics(collector),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if cfg.TMDb.SessionID != "" {
		client.SetSessionID(cfg.TMDb.SessionID)
	}

	logger.Debug().
		Str("base_url", endpoint.BaseURL).
		Int("max_concurrent", client.MaxConcurrent()).
		Bool("throw_on_error", client.ThrowOnError()).
		Msg("Client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// reportMetrics logs the collected series when metrics are enabled
func reportMetrics(cmd *cobra.Command, args []string) error {
	if registry == nil {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			event := logger.Info().Str("metric", mf.GetName())
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				event = event.Float64("value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				event = event.Float64("value", m.GetGauge().GetValue())
			case m.GetHistogram() != nil:
				event = event.
					Uint64("count", m.GetHistogram().GetSampleCount()).
					Float64("sum", m.GetHistogram().GetSampleSum())
			}
			event.Msg("Metric")
		}
	}
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter.Expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

// applyFilter narrows results with the selected filter, if any
func applyFilter(results []tmdb.MovieResult) ([]tmdb.MovieResult, error) {
	expr, err := getFilterExpression()
	if err != nil || expr == "" {
		return results, err
	}

	f, err := compiler.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	matches, err := f.Apply(results)
	if err != nil {
		logger.Warn().Err(err).Str("filter", expr).Msg("Some movies could not be evaluated")
	}
	logger.Debug().Str("filter", expr).Int("matched", len(matches)).Int("total", len(results)).Msg("Applied filter")
	return matches, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}
