package dataset

import (
	"fmt"
	"time"
)

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "Michael", "Jennifer", "William", "Linda",
		"David", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson",
	}

	paymentTypes = []string{
		string(PaymentPrivatePay),
		string(PaymentVoucher),
		string(PaymentERD),
		string(PaymentFamilySupport),
	}

	rentTiers  = []int{650, 700, 750, 800}
	shortfalls = []int{0, 0, 0, 50, 100, 150}

	tenantNotes = []string{
		"Requires medication management",
		"Weekly check-ins with CCO",
		"Good standing, no issues",
		"Behind on rent - follow up needed",
	}

	entryWindowStart = NewDate(2023, time.January, 1)
	entryWindowEnd   = NewDate(2024, time.December, 31)
	exitWindowStart  = NewDate(2024, time.January, 1)
	exitWindowEnd    = NewDate(2025, time.December, 31)
	dobWindowStart   = NewDate(1960, time.January, 1)
	dobWindowEnd     = NewDate(2000, time.December, 31)
)

const (
	exitChance       = 0.2
	tenantNoteChance = 0.2

	voucherMinDays = 180
	voucherMaxDays = 365

	maxNameAttempts = 1000
)

// NamePoolSize is the number of distinct full names available to one run
func NamePoolSize() int {
	return len(firstNames) * len(lastNames)
}

// GenerateTenants creates one tenant per Occupied or Pending bed, in bed
// order, and returns them together with the bed collection as it stands
// after linkage. The input slice is not modified.
//
// A current tenant is linked both ways with its bed. An exited tenant keeps
// no bed link and its originating bed is released: status Available, no
// tenant.
func GenerateTenants(rng Rand, beds []Bed) ([]Bed, []Tenant, error) {
	updated := make([]Bed, len(beds))
	copy(updated, beds)

	var tenants []Tenant
	usedNames := make(map[string]struct{})
	counter := 1

	for i := range updated {
		bed := &updated[i]
		if !bed.Status.Eligible() {
			continue
		}

		name, err := drawUniqueName(rng, usedNames)
		if err != nil {
			return nil, nil, fmt.Errorf("tenant for %s: %w", bed.BedID, err)
		}

		tenant := Tenant{
			TenantID:  fmt.Sprintf("tenant_%03d", counter),
			FullName:  name,
			EntryDate: randomDate(rng, entryWindowStart, entryWindowEnd),
		}

		if rng.Float64() < exitChance {
			exit := drawExitDate(rng, tenant.EntryDate)
			tenant.ExitDate = &exit
			bed.Status = StatusAvailable
			bed.TenantID = nil
		} else {
			bed.TenantID = stringPtr(tenant.TenantID)
			tenant.BedID = stringPtr(bed.BedID)
		}

		tenant.PaymentType = PaymentType(rng.RandomString(paymentTypes))
		if tenant.PaymentType == PaymentVoucher {
			tenant.VoucherStart = datePtr(tenant.EntryDate)
			tenant.VoucherEnd = datePtr(tenant.EntryDate.AddDays(rng.Number(voucherMinDays, voucherMaxDays)))
		}

		if tenant.PaymentType.PaysRent() {
			tenant.RentDue = rng.RandomInt(rentTiers)
			tenant.RentPaid = max(tenant.RentDue-rng.RandomInt(shortfalls), 0)
		}

		tenant.DOB = randomDate(rng, dobWindowStart, dobWindowEnd)
		tenant.Phone = fmt.Sprintf("(%d) %d-%d", rng.Number(200, 999), rng.Number(200, 999), rng.Number(1000, 9999))
		tenant.DocNumber = fmt.Sprintf("DOC%d", rng.Number(100000, 999999))

		if rng.Float64() < tenantNoteChance {
			tenant.Notes = rng.RandomString(tenantNotes)
		}

		tenants = append(tenants, tenant)
		counter++
	}

	return updated, tenants, nil
}

func drawUniqueName(rng Rand, used map[string]struct{}) (string, error) {
	if len(used) >= NamePoolSize() {
		return "", ErrNamePoolExhausted
	}
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := rng.RandomString(firstNames) + " " + rng.RandomString(lastNames)
		if _, taken := used[name]; !taken {
			used[name] = struct{}{}
			return name, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrNamePoolExhausted, maxNameAttempts)
}

// drawExitDate picks a day in the exit window that falls strictly after entry
func drawExitDate(rng Rand, entry Date) Date {
	start := exitWindowStart
	if !entry.Before(start.Time) {
		start = entry.AddDays(1)
	}
	return randomDate(rng, start, exitWindowEnd)
}
