package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/VJota108/janus/pkg/campaign"
	"github.com/VJota108/janus/pkg/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var drainCmd = &cobra.Command{
	Use:   "drain",
	Short: "Drain the switches of a subplan",
	Long: `Drain the switches of a subplan on the persisted simulated fabric and
journal the operation.

Examples:
  janus drain -f fabric.yaml --id 4 --data-dir ./janus-data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, types.OperationActionDrain)
	},
}

var undrainCmd = &cobra.Command{
	Use:   "undrain",
	Short: "Undrain the switches of a subplan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd, types.OperationActionUndrain)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show drained switches and the least dominative subplan",
	Long: `Observe the persisted fabric and infer the most conservative subplan
that the currently drained switches already imply.`,
	RunE: runStatus,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled operations",
	RunE:  runHistory,
}

func init() {
	for _, c := range []*cobra.Command{drainCmd, undrainCmd, statusCmd, historyCmd} {
		c.Flags().String("data-dir", "./janus-data", "Directory holding the fabric state and journal")
	}
	for _, c := range []*cobra.Command{drainCmd, undrainCmd} {
		c.Flags().Int("id", 0, "Subplan id")
		_ = c.MarkFlagRequired("id")
	}
}

func runApply(cmd *cobra.Command, action types.OperationAction) error {
	id, _ := cmd.Flags().GetInt("id")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	_, net, planner, err := loadPlanner(cmd, store)
	if err != nil {
		return err
	}

	runner := campaign.NewRunner(planner, net, store)
	apply := runner.Drain
	if action == types.OperationActionUndrain {
		apply = runner.Undrain
	}

	record, err := apply(id)
	if err != nil {
		if record != nil {
			fmt.Printf("✗ %s subplan %d failed after %d switches (operation %s)\n", action, id, len(record.Switches), record.ID)
		}
		return err
	}

	fmt.Printf("✓ %s subplan %d %s\n", action, id, record.Subplan)
	fmt.Printf("  Operation: %s\n", record.ID)
	fmt.Printf("  Switches:  %v\n", record.Switches)
	fmt.Printf("  Blocks:    %s\n", record.Blocks)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	_, net, planner, err := loadPlanner(cmd, store)
	if err != nil {
		return err
	}

	status := campaign.NewRunner(planner, net, store).Status()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"BLOCK", "DOWN", "TOTAL"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, b := range status.Blocks {
		name := "core"
		if b.ID.Type == types.BlockTypePodAggregation {
			name = "pod " + strconv.Itoa(b.ID.ID)
		}
		table.Append([]string{name, strconv.Itoa(b.DownSwitches), strconv.Itoa(b.AllSwitches)})
	}
	table.Render()

	fmt.Printf("Drained switches: %v\n", status.Drained)
	fmt.Printf("Least dominative subplan: %d %s\n", status.SubplanID, status.SubplanText)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListOperations()
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No operations journaled")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "TIME", "ACTION", "SUBPLAN", "SWITCHES", "STATUS"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range records {
		status := "ok"
		if r.Error != "" {
			status = "failed: " + r.Error
		}
		table.Append([]string{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			string(r.Action),
			fmt.Sprintf("%d %s", r.SubplanID, r.Subplan),
			strconv.Itoa(len(r.Switches)),
			status,
		})
	}
	table.Render()
	return nil
}
