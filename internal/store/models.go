package store

import (
	"time"

	"github.com/beesaferoot/housing-data/internal/dataset"
)

// HouseRecord is the persisted form of a dataset.House
type HouseRecord struct {
	HouseID   string `gorm:"primaryKey"`
	Address   string `gorm:"not null"`
	TotalBeds int    `gorm:"not null"`
	Notes     string
}

func (HouseRecord) TableName() string { return "houses" }

// BedRecord is the persisted form of a dataset.Bed
type BedRecord struct {
	BedID      string `gorm:"primaryKey"`
	HouseID    string `gorm:"index;not null"`
	RoomNumber string `gorm:"not null"`
	Status     string `gorm:"index;not null"`
	TenantID   *string
	Notes      string
}

func (BedRecord) TableName() string { return "beds" }

// TenantRecord is the persisted form of a dataset.Tenant
type TenantRecord struct {
	TenantID     string    `gorm:"primaryKey"`
	FullName     string    `gorm:"uniqueIndex;not null"`
	DOB          time.Time `gorm:"column:dob"`
	Phone        string
	EntryDate    time.Time `gorm:"not null"`
	ExitDate     *time.Time
	DocNumber    string
	PaymentType  string `gorm:"index;not null"`
	VoucherStart *time.Time
	VoucherEnd   *time.Time
	RentDue      int
	RentPaid     int
	Notes        string
	BedID        *string `gorm:"index"`
}

func (TenantRecord) TableName() string { return "tenants" }

// SeedRun records one dataset written into the database
type SeedRun struct {
	ID            uint      `gorm:"primarykey"`
	Seed          int64     `gorm:"not null"`
	Source        string    `gorm:"not null"`
	Houses        int       `gorm:"not null"`
	Beds          int       `gorm:"not null"`
	Tenants       int       `gorm:"not null"`
	OccupancyRate float64   `gorm:"not null"`
	AppliedAt     time.Time `gorm:"index"`
}

func allModels() []any {
	return []any{&HouseRecord{}, &BedRecord{}, &TenantRecord{}, &SeedRun{}}
}

func houseRecord(h dataset.House) HouseRecord {
	return HouseRecord{HouseID: h.HouseID, Address: h.Address, TotalBeds: h.TotalBeds, Notes: h.Notes}
}

func (r HouseRecord) toHouse() dataset.House {
	return dataset.House{HouseID: r.HouseID, Address: r.Address, TotalBeds: r.TotalBeds, Notes: r.Notes}
}

func bedRecord(b dataset.Bed) BedRecord {
	return BedRecord{
		BedID:      b.BedID,
		HouseID:    b.HouseID,
		RoomNumber: b.RoomNumber,
		Status:     string(b.Status),
		TenantID:   b.TenantID,
		Notes:      b.Notes,
	}
}

func (r BedRecord) toBed() dataset.Bed {
	return dataset.Bed{
		BedID:      r.BedID,
		HouseID:    r.HouseID,
		RoomNumber: r.RoomNumber,
		Status:     dataset.BedStatus(r.Status),
		TenantID:   r.TenantID,
		Notes:      r.Notes,
	}
}

func tenantRecord(t dataset.Tenant) TenantRecord {
	return TenantRecord{
		TenantID:     t.TenantID,
		FullName:     t.FullName,
		DOB:          t.DOB.Time,
		Phone:        t.Phone,
		EntryDate:    t.EntryDate.Time,
		ExitDate:     toTime(t.ExitDate),
		DocNumber:    t.DocNumber,
		PaymentType:  string(t.PaymentType),
		VoucherStart: toTime(t.VoucherStart),
		VoucherEnd:   toTime(t.VoucherEnd),
		RentDue:      t.RentDue,
		RentPaid:     t.RentPaid,
		Notes:        t.Notes,
		BedID:        t.BedID,
	}
}

func (r TenantRecord) toTenant() dataset.Tenant {
	return dataset.Tenant{
		TenantID:     r.TenantID,
		FullName:     r.FullName,
		DOB:          toDate(r.DOB),
		Phone:        r.Phone,
		EntryDate:    toDate(r.EntryDate),
		ExitDate:     toDatePtr(r.ExitDate),
		DocNumber:    r.DocNumber,
		PaymentType:  dataset.PaymentType(r.PaymentType),
		VoucherStart: toDatePtr(r.VoucherStart),
		VoucherEnd:   toDatePtr(r.VoucherEnd),
		RentDue:      r.RentDue,
		RentPaid:     r.RentPaid,
		Notes:        r.Notes,
		BedID:        r.BedID,
	}
}

func toTime(d *dataset.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// toDate drops any time-of-day or zone the driver attached on read
func toDate(t time.Time) dataset.Date {
	return dataset.NewDate(t.Year(), t.Month(), t.Day())
}

func toDatePtr(t *time.Time) *dataset.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}
