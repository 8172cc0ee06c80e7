package main

import (
	"fmt"

	"github.com/VJota108/janus/pkg/campaign"
	"github.com/spf13/cobra"
)

var mopCmd = &cobra.Command{
	Use:   "mop",
	Short: "Show the maintenance operation of a subplan",
	Long: `Materialize a subplan into the concrete switches it drains.

Examples:
  janus mop -f fabric.yaml --id 4`,
	RunE: runMop,
}

func init() {
	mopCmd.Flags().Int("id", 0, "Subplan id")
	_ = mopCmd.MarkFlagRequired("id")
}

func runMop(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")

	_, net, planner, err := loadPlanner(cmd, nil)
	if err != nil {
		return err
	}

	it := planner.Iterator()
	if err := campaign.CheckID(it, id); err != nil {
		return err
	}

	op := it.Materialize(id)
	defer op.Release()

	fmt.Printf("Subplan %d %s (score %.3f)\n", id, it.Explain(id), it.PrefScore(id))
	fmt.Printf("Switches (%d):\n", op.Size())
	for _, sw := range op.Switches() {
		fmt.Printf("  %s\n", sw)
	}
	fmt.Printf("Blocks: %s\n", op.Explain(net))
	return nil
}
