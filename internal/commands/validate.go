package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/housing-data/internal/dataset"
	"github.com/beesaferoot/housing-data/internal/export"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a generated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fromDB, _ := cmd.Flags().GetBool("db")

			var d *dataset.Dataset
			if fromDB {
				s, err := getStore(cfg, false)
				if err != nil {
					return err
				}
				d, err = s.Load()
				if err != nil {
					return fmt.Errorf("failed to load dataset from database: %v", err)
				}
			} else {
				d, err = export.ReadSnapshot(stringFromFlags(cmd, "output", cfg.OutputDir))
				if err != nil {
					return err
				}
			}

			if err := dataset.CheckIntegrity(d); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Dataset is valid")
			return nil
		},
	}

	cmd.Flags().String("output", "", "Snapshot directory (defaults to OUTPUT_DIR env var)")
	cmd.Flags().Bool("db", false, "Validate the dataset stored in the database instead")

	return cmd
}
