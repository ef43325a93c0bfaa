package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/housing-data/internal/config"
	"github.com/beesaferoot/housing-data/internal/store"
	"github.com/beesaferoot/housing-data/pkg/logger"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.NewLogger(cfg.Env)
}

func getStore(cfg *config.Config, debug bool) (*store.Store, error) {
	db, err := store.Open(cfg.DatabaseURL, cfg.SQLitePath, debug)
	if err != nil {
		return nil, err
	}
	return store.New(db), nil
}

// validateOutputPath cleans path, makes it absolute and ensures it exists
func validateOutputPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid output path: %v", err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", fmt.Errorf("output path is not writable: %v", err)
	}

	return absPath, nil
}

// seedFromFlags prefers an explicit --seed over the configured one
func seedFromFlags(cmd *cobra.Command, cfg *config.Config) int64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return seed
	}
	return cfg.Seed
}

// stringFromFlags prefers an explicit string flag over fallback
func stringFromFlags(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}
