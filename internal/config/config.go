package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/beesaferoot/housing-data/internal/dataset"
)

type Config struct {
	Env         string
	OutputDir   string
	Seed        int64
	DatabaseURL string
	SQLitePath  string
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a .env file. A value that cannot be parsed is an error, never
// silently replaced by its default.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	rawSeed := strings.TrimSpace(v.GetString("data_seed"))
	seed, err := strconv.ParseInt(rawSeed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DATA_SEED %q: must be an integer", rawSeed)
	}

	return &Config{
		Env:         v.GetString("app_env"),
		OutputDir:   v.GetString("output_dir"),
		Seed:        seed,
		DatabaseURL: v.GetString("database_url"),
		SQLitePath:  v.GetString("sqlite_path"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("output_dir", "prototype_data")
	v.SetDefault("data_seed", strconv.FormatInt(dataset.DefaultSeed, 10))
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "housing.db")
}
