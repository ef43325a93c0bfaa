package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beesaferoot/housing-data/internal/dataset"
)

const (
	AllDataFile = "all_data.json"
	HousesFile  = "houses.json"
	BedsFile    = "beds.json"
	TenantsFile = "tenants.json"
	MetricsFile = "metrics.json"
)

// WriteSnapshot writes the combined dataset plus one file per collection
// into dir, creating it if needed. Files are written independently; a
// failure part-way leaves the earlier files in place.
func WriteSnapshot(dir string, d *dataset.Dataset) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name  string
		value any
	}{
		{AllDataFile, d},
		{HousesFile, d.Houses},
		{BedsFile, d.Beds},
		{TenantsFile, d.Tenants},
		{MetricsFile, d.Metrics},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := WriteJSON(path, f.value); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// ReadSnapshot loads the combined dataset file from dir
func ReadSnapshot(dir string) (*dataset.Dataset, error) {
	path := filepath.Join(dir, AllDataFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var d dataset.Dataset
	if err := json.Unmarshal(content, &d); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &d, nil
}

// WriteJSON serializes v to path with two-space indentation
func WriteJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
