package dataset

import (
	"fmt"
	"strings"
	"time"
)

// BedStatus is the occupancy state of a single bed
type BedStatus string

const (
	StatusAvailable BedStatus = "Available"
	StatusOccupied  BedStatus = "Occupied"
	StatusPending   BedStatus = "Pending"
	StatusHold      BedStatus = "Hold"
)

// Valid reports whether s is one of the four known statuses
func (s BedStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusPending, StatusHold:
		return true
	}
	return false
}

// Eligible reports whether a bed in this status receives a generated tenant
func (s BedStatus) Eligible() bool {
	return s == StatusOccupied || s == StatusPending
}

// PaymentType describes how a tenant's rent is covered
type PaymentType string

const (
	PaymentPrivatePay    PaymentType = "Private Pay"
	PaymentVoucher       PaymentType = "Voucher"
	PaymentERD           PaymentType = "ERD"
	PaymentFamilySupport PaymentType = "Family Support"
)

// PaysRent reports whether rent_due/rent_paid carry amounts for this payment type
// Valid reports whether p is one of the four known payment types
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentPrivatePay, PaymentVoucher, PaymentERD, PaymentFamilySupport:
		return true
	}
	return false
}

func (p PaymentType) PaysRent() bool {
	return p == PaymentPrivatePay || p == PaymentFamilySupport
}

// House is a property holding a fixed number of beds
type House struct {
	HouseID   string `json:"house_id"`
	Address   string `json:"address"`
	TotalBeds int    `json:"total_beds"`
	Notes     string `json:"notes"`
}

// Bed is a single bed within a house. Status and TenantID are only changed
// by tenant generation.
type Bed struct {
	BedID      string    `json:"bed_id"`
	HouseID    string    `json:"house_id"`
	RoomNumber string    `json:"room_number"`
	Status     BedStatus `json:"status"`
	TenantID   *string   `json:"tenant_id"`
	Notes      string    `json:"notes"`
}

// Tenant is a resident generated for an Occupied or Pending bed
type Tenant struct {
	TenantID     string      `json:"tenant_id"`
	FullName     string      `json:"full_name"`
	DOB          Date        `json:"dob"`
	Phone        string      `json:"phone"`
	EntryDate    Date        `json:"entry_date"`
	ExitDate     *Date       `json:"exit_date"`
	DocNumber    string      `json:"doc_number"`
	PaymentType  PaymentType `json:"payment_type"`
	VoucherStart *Date       `json:"voucher_start"`
	VoucherEnd   *Date       `json:"voucher_end"`
	RentDue      int         `json:"rent_due"`
	RentPaid     int         `json:"rent_paid"`
	Notes        string      `json:"notes"`
	BedID        *string     `json:"bed_id"`
}

// Current reports whether the tenant is still resident
func (t Tenant) Current() bool {
	return t.ExitDate == nil
}

// Metrics summarizes the final bed and tenant collections
type Metrics struct {
	TotalBeds      int     `json:"total_beds"`
	OccupiedBeds   int     `json:"occupied_beds"`
	AvailableBeds  int     `json:"available_beds"`
	PendingBeds    int     `json:"pending_beds"`
	HoldBeds       int     `json:"hold_beds"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	CurrentTenants int     `json:"current_tenants"`
	ExitedTenants  int     `json:"exited_tenants"`
	TotalTenants   int     `json:"total_tenants"`
}

// Dataset is the combined output of one generation run
type Dataset struct {
	Houses  []House  `json:"houses"`
	Beds    []Bed    `json:"beds"`
	Tenants []Tenant `json:"tenants"`
	Metrics Metrics  `json:"metrics"`
}

// DateLayout is the wire format of every date in the dataset
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func datePtr(d Date) *Date {
	return &d
}

func stringPtr(s string) *string {
	return &s
}
