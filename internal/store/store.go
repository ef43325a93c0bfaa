package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/housing-data/internal/dataset"
)

// Open connects to Postgres when dsn is set and to the SQLite file at
// sqlitePath otherwise.
func Open(dsn, sqlitePath string, debug bool) (*gorm.DB, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(level)}

	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// SourceGenerated marks a seed run whose dataset was generated in-process
const SourceGenerated = "generated"

// Store persists generated datasets and keeps a history of seed runs
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the dataset and seed run tables
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

// Seed replaces the stored dataset with d and records the run, all in one
// transaction. source is SourceGenerated or the snapshot directory d was
// read from. Beds are inserted without tenant links first, then linked once
// their tenants exist.
func (s *Store) Seed(d *dataset.Dataset, seed int64, source string) (*SeedRun, error) {
	if err := s.Migrate(); err != nil {
		return nil, err
	}

	run := &SeedRun{
		Seed:          seed,
		Source:        source,
		Houses:        len(d.Houses),
		Beds:          len(d.Beds),
		Tenants:       len(d.Tenants),
		OccupancyRate: d.Metrics.OccupancyRate,
		AppliedAt:     time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&TenantRecord{}, &BedRecord{}, &HouseRecord{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear previous data: %w", err)
			}
		}

		houses := make([]HouseRecord, 0, len(d.Houses))
		for _, h := range d.Houses {
			houses = append(houses, houseRecord(h))
		}
		if len(houses) > 0 {
			if err := tx.Create(&houses).Error; err != nil {
				return fmt.Errorf("failed to insert houses: %w", err)
			}
		}

		beds := make([]BedRecord, 0, len(d.Beds))
		for _, b := range d.Beds {
			record := bedRecord(b)
			record.TenantID = nil
			beds = append(beds, record)
		}
		if len(beds) > 0 {
			if err := tx.Create(&beds).Error; err != nil {
				return fmt.Errorf("failed to insert beds: %w", err)
			}
		}

		tenants := make([]TenantRecord, 0, len(d.Tenants))
		for _, t := range d.Tenants {
			tenants = append(tenants, tenantRecord(t))
		}
		if len(tenants) > 0 {
			if err := tx.Create(&tenants).Error; err != nil {
				return fmt.Errorf("failed to insert tenants: %w", err)
			}
		}

		for _, b := range d.Beds {
			if b.TenantID == nil {
				continue
			}
			if err := tx.Model(&BedRecord{}).Where("bed_id = ?", b.BedID).Update("tenant_id", *b.TenantID).Error; err != nil {
				return fmt.Errorf("failed to link bed %s: %w", b.BedID, err)
			}
		}

		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to record seed run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Load reads the stored dataset back, recomputing metrics from the rows
func (s *Store) Load() (*dataset.Dataset, error) {
	var houses []HouseRecord
	if err := s.db.Order("house_id").Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("failed to load houses: %w", err)
	}
	var beds []BedRecord
	if err := s.db.Order("bed_id").Find(&beds).Error; err != nil {
		return nil, fmt.Errorf("failed to load beds: %w", err)
	}
	var tenants []TenantRecord
	if err := s.db.Order("tenant_id").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}

	d := &dataset.Dataset{
		Houses:  make([]dataset.House, 0, len(houses)),
		Beds:    make([]dataset.Bed, 0, len(beds)),
		Tenants: make([]dataset.Tenant, 0, len(tenants)),
	}
	for _, r := range houses {
		d.Houses = append(d.Houses, r.toHouse())
	}
	for _, r := range beds {
		d.Beds = append(d.Beds, r.toBed())
	}
	for _, r := range tenants {
		d.Tenants = append(d.Tenants, r.toTenant())
	}

	if len(d.Beds) > 0 {
		metrics, err := dataset.ComputeMetrics(d.Beds, d.Tenants)
		if err != nil {
			return nil, err
		}
		d.Metrics = metrics
	}
	return d, nil
}

// History returns recorded seed runs, newest first
func (s *Store) History() ([]SeedRun, error) {
	if err := s.db.AutoMigrate(&SeedRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate seed runs: %w", err)
	}
	var runs []SeedRun
	if err := s.db.Order("applied_at DESC").Order("id DESC").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to get seed history: %w", err)
	}
	return runs, nil
}
