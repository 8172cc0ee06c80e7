package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"

	"github.com/VJota108/janus/pkg/campaign"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Apply every subplan to simulated fabrics",
	Long: `Apply every subplan to a pool of simulated fabrics and report the worst
block degradation each one causes.

Examples:
  # Four workers sharing two fabrics, show subplans keeping every block above 50%
  janus sweep -f fabric.yaml --workers 4 --fabrics 2 --max-down 0.5`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().Int("workers", 4, "Number of worker goroutines")
	sweepCmd.Flags().Int("fabrics", 2, "Number of simulated fabrics in the pool")
	sweepCmd.Flags().Float64("max-down", 1.0, "Only show subplans whose worst block down fraction is at most this")
}

func runSweep(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	nfabrics, _ := cmd.Flags().GetInt("fabrics")
	maxDown, _ := cmd.Flags().GetFloat64("max-down")

	cfg, _, planner, err := loadPlanner(cmd, nil)
	if err != nil {
		return err
	}

	fabrics, err := campaign.NewFabricPool(cfg.Fabric, nfabrics)
	if err != nil {
		return err
	}
	metrics.UpdateComponent("pool", true, "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := campaign.Sweep(ctx, planner, fabrics, workers)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "SCORE", "PLAN", "SWITCHES", "WORST BLOCK", "BLOCKS"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	shown := 0
	for _, r := range results {
		if r.WorstBlock > maxDown {
			continue
		}
		table.Append([]string{
			strconv.Itoa(r.SubplanID),
			fmt.Sprintf("%.3f", r.Score),
			r.Plan,
			strconv.Itoa(r.Switches),
			fmt.Sprintf("%.0f%%", r.WorstBlock*100),
			r.Blocks,
		})
		shown++
	}
	table.Render()
	fmt.Printf("%d of %d subplans within %.0f%% block degradation\n", shown, len(results), maxDown*100)
	return nil
}
