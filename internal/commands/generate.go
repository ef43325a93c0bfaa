package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beesaferoot/housing-data/internal/dataset"
	"github.com/beesaferoot/housing-data/internal/export"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic housing dataset",
		Long:  `Generates houses, beds and tenants with derived occupancy metrics and writes all_data.json, houses.json, beds.json, tenants.json and metrics.json to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			defer log.Sync()

			seed := seedFromFlags(cmd, cfg)
			outputDir, err := validateOutputPath(stringFromFlags(cmd, "output", cfg.OutputDir))
			if err != nil {
				return fmt.Errorf("failed to validate output directory: %v", err)
			}

			log.Info("generating dataset", zap.Int64("seed", seed))
			d, err := dataset.Generate(dataset.NewRand(seed), dataset.DefaultAddresses)
			if err != nil {
				return fmt.Errorf("failed to generate dataset: %w", err)
			}
			log.Info("dataset generated",
				zap.Int("houses", len(d.Houses)),
				zap.Int("beds", len(d.Beds)),
				zap.Int("tenants", len(d.Tenants)),
			)

			files, err := export.WriteSnapshot(outputDir, d)
			if err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			for _, f := range files {
				log.Debug("wrote file", zap.String("path", f))
			}

			printSummary(cmd, d)
			fmt.Fprintf(cmd.OutOrStdout(), "Files saved to: %s\n", outputDir)
			return nil
		},
	}

	cmd.Flags().Int64("seed", dataset.DefaultSeed, "Random seed (defaults to DATA_SEED env var)")
	cmd.Flags().String("output", "", "Output directory (defaults to OUTPUT_DIR env var)")

	return cmd
}

func printSummary(cmd *cobra.Command, d *dataset.Dataset) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Houses: %d\n", len(d.Houses))
	fmt.Fprintf(out, "Beds: %d\n", len(d.Beds))
	fmt.Fprintf(out, "Tenants: %d (%d current, %d exited)\n",
		d.Metrics.TotalTenants, d.Metrics.CurrentTenants, d.Metrics.ExitedTenants)
	fmt.Fprintf(out, "Occupancy Rate: %.1f%%\n", d.Metrics.OccupancyRate)
}
