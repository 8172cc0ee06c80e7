package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/VJota108/janus/pkg/campaign"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List candidate subplans ranked by progress",
	Long: `List the subplans of the configured fabric, most aggressive first.

Examples:
  # Show the ten most aggressive subplans
  janus plan -f fabric.yaml --top 10

  # Show the group layout as well
  janus plan -f fabric.yaml --groups`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Int("top", 0, "Only show the first N subplans (0 shows all)")
	planCmd.Flags().Bool("groups", false, "Print the redundancy groups and classes")
}

func runPlan(cmd *cobra.Command, args []string) error {
	top, _ := cmd.Flags().GetInt("top")
	showGroups, _ := cmd.Flags().GetBool("groups")

	_, _, planner, err := loadPlanner(cmd, nil)
	if err != nil {
		return err
	}

	if showGroups {
		for _, g := range planner.Groups() {
			fmt.Printf("Group %d: batch size %d (requested %d)\n", g.Index, g.BatchSize, g.Requested)
			for _, c := range g.Classes {
				fmt.Printf("  %-11s pod %-3d color %-3d switches %v\n", c.Role, c.Pod, c.Color, c.Switches)
			}
		}
		fmt.Println()
	}

	ranked := campaign.Rank(planner.Iterator())
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "SCORE", "PLAN", "COUNTS"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, c := range ranked {
		counts := make([]string, len(c.Plan))
		for i, n := range c.Plan {
			counts[i] = strconv.Itoa(n)
		}
		table.Append([]string{
			strconv.Itoa(c.ID),
			fmt.Sprintf("%.3f", c.Score),
			c.Text,
			strings.Join(counts, ","),
		})
	}
	table.Render()
	return nil
}
