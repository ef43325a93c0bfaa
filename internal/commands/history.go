package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show seed history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := getStore(cfg, false)
			if err != nil {
				return err
			}

			runs, err := s.History()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No datasets have been seeded yet.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-8s  %-24s  %-6s  %-8s  %-9s  %-24s\n", "Run", "Seed", "Source", "Beds", "Tenants", "Occupancy", "Applied At")
			for _, run := range runs {
				fmt.Fprintf(out, "%-6d  %-8d  %-24s  %-6d  %-8d  %-9.1f  %-24s\n",
					run.ID, run.Seed, run.Source, run.Beds, run.Tenants, run.OccupancyRate, run.AppliedAt.Format(time.RFC3339))
			}

			return nil
		},
	}
}
