// Command prunerctl operates a pruner through its persistence and
// metrics adapters: create a fresh snapshot, feed it a fixture batch,
// inspect its state, or serve its metrics for local inspection.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/cutpruner/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "prunerctl",
	Short: "Operate a cut pruner's persistence, feed, and metrics adapters",
	Long: `prunerctl drives a pruner through its optional adapters without
linking any of them into the core: snapshots are SQLite rows
(internal/persistence), batches come from JSON fixtures (internal/cutio),
and activity is exported as Prometheus collectors (internal/metrics).

Configuration:
  1. --config flag (explicit path)
  2. ./config.yaml (current directory)
  3. $HOME/.config/cutpruner/config.yaml

Environment variables:
  CUTPRUNER_DIM, CUTPRUNER_SENSE, CUTPRUNER_MAX_CUTS, CUTPRUNER_VARIANT
  CUTPRUNER_DB_PATH, CUTPRUNER_SOLVER_MODE`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cutpruner/config.yaml)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(metricsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ============== Metrics Command ==============

var metricsAddr string

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Serve /metrics for local inspection",
	Long:  `Serves the process's Prometheus collectors over HTTP until interrupted.`,
	RunE:  runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&metricsAddr, "addr", envOr("PRUNERCTL_METRICS_ADDR", ":9090"), "address to serve /metrics on")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	http.Handle("/metrics", promhttp.Handler())
	fmt.Printf("serving /metrics on %s\n", metricsAddr)
	return http.ListenAndServe(metricsAddr, nil)
}
