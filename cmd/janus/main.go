package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/VJota108/janus/pkg/config"
	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/plan"
	"github.com/VJota108/janus/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "janus",
	Short: "Janus - staged maintenance planner for Clos datacenter fabrics",
	Long: `Janus plans staged maintenance over Jupiter-style fabrics of core and
per-pod aggregation switches.

It enumerates the batch plans that respect per-group drain limits, ranks
them by progress, turns a chosen plan into a concrete set of switches to
drain, and infers how far a rollout has already gone from the switches that
are currently down.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Janus version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringP("file", "f", "fabric.yaml", "Fabric configuration file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve /metrics and /health on this address")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(mopCmd)
	rootCmd.AddCommand(drainCmd)
	rootCmd.AddCommand(undrainCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sweepCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	jsonOutput, _ := cmd.Flags().GetBool("log-json")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	log.Init(log.Config{
		Level:      log.Level(level),
		JSONOutput: jsonOutput,
		Output:     os.Stderr,
	})

	metrics.SetVersion(Version)
	if metricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(metricsAddr, metrics.NewServeMux()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Metrics server failed", err)
			}
		}()
		log.Logger.Info().Str("addr", metricsAddr).Msg("Serving metrics")
	}
	return nil
}

// loadPlanner reads the configuration and builds a fabric and its planner.
// The fabric persists its drain state when store is not nil.
func loadPlanner(cmd *cobra.Command, store fabric.StateStore) (*config.Config, *fabric.Jupiter, *plan.JupiterPlanner, error) {
	path, _ := cmd.Flags().GetString("file")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	net, err := fabric.NewJupiter(cfg.Fabric, store)
	if err != nil {
		return nil, nil, nil, err
	}

	planner, err := cfg.NewPlanner(net)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create planner: %w", err)
	}
	return cfg, net, planner, nil
}

// openStore opens the journal in the --data-dir directory
func openStore(cmd *cobra.Command) (*storage.BoltStore, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewBoltStore(dataDir)
	if err != nil {
		metrics.UpdateComponent("storage", false, err.Error())
		return nil, err
	}
	metrics.UpdateComponent("storage", true, "")
	return store, nil
}
