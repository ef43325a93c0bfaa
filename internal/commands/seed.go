package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beesaferoot/housing-data/internal/dataset"
	"github.com/beesaferoot/housing-data/internal/export"
	"github.com/beesaferoot/housing-data/internal/store"
)

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with a dataset",
		Long:  `Generates a dataset (or loads one written by generate, with --from) and writes it to the database in a single transaction. Uses DATABASE_URL when set, otherwise the SQLite file at SQLITE_PATH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			from, _ := cmd.Flags().GetString("from")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			defer log.Sync()

			seed := seedFromFlags(cmd, cfg)
			source := store.SourceGenerated

			var d *dataset.Dataset
			if from != "" {
				d, err = export.ReadSnapshot(from)
				if err != nil {
					return err
				}
				// a snapshot was not drawn here, so no seed applies to it
				seed = 0
				source = from
			} else {
				d, err = dataset.Generate(dataset.NewRand(seed), dataset.DefaultAddresses)
				if err != nil {
					return fmt.Errorf("failed to generate dataset: %w", err)
				}
			}

			if err := dataset.CheckIntegrity(d); err != nil {
				return fmt.Errorf("refusing to seed invalid dataset: %w", err)
			}

			s, err := getStore(cfg, debug)
			if err != nil {
				return err
			}

			run, err := s.Seed(d, seed, source)
			if err != nil {
				log.Error("seed failed", err, zap.String("source", source))
				return fmt.Errorf("failed to seed database: %w", err)
			}
			log.Info("database seeded",
				zap.Uint("run", run.ID),
				zap.String("source", source),
				zap.Int("beds", run.Beds),
				zap.Int("tenants", run.Tenants),
			)

			printSummary(cmd, d)
			return nil
		},
	}

	cmd.Flags().Int64("seed", dataset.DefaultSeed, "Random seed (defaults to DATA_SEED env var)")
	cmd.Flags().String("from", "", "Seed from a snapshot directory instead of generating")
	cmd.Flags().Bool("debug", false, "Enable SQL debug output")

	return cmd
}
