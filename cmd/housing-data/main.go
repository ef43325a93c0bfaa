package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/housing-data/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "housing-data",
		Short:        "Housing dataset generator and spreadsheet analyzer",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		commands.GenerateCmd(),
		commands.ValidateCmd(),
		commands.SeedCmd(),
		commands.HistoryCmd(),
		commands.AnalyzeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
